package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/grubdash/config"
	"github.com/yeremiapane/grubdash/controllers"
	"github.com/yeremiapane/grubdash/kds"
	"github.com/yeremiapane/grubdash/middlewares"
	"github.com/yeremiapane/grubdash/models"
	"github.com/yeremiapane/grubdash/repository"
	"github.com/yeremiapane/grubdash/utils"
	"github.com/yeremiapane/grubdash/validators"
)

// Dependencies are the collaborators the HTTP layer is built on.
type Dependencies struct {
	Dishes repository.Store[models.Dish]
	Orders repository.Store[models.Order]
	NextID utils.IDGenerator
	Hub    *kds.Hub
}

func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		utils.ErrorLogger.Printf("Invalid trusted proxies %v: %v", cfg.TrustedProxies, err)
	}

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigins))
	if cfg.RateLimitRPS > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).RateLimit())
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.JSONResponse{
			Error: fmt.Sprintf("Path not found: %s", c.Request.URL.Path),
		})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, utils.JSONResponse{
			Error: fmt.Sprintf("%s not allowed for %s", c.Request.Method, c.Request.URL.Path),
		})
	})

	hub := deps.Hub
	if hub == nil {
		hub = kds.NewHub()
	}
	dishCtrl := controllers.NewDishController(deps.Dishes, deps.NextID)
	orderCtrl := controllers.NewOrderController(deps.Orders, deps.NextID, hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Kitchen display stream of order changes
	r.GET("/kds/ws", controllers.KDSHandler(hub))

	dishes := r.Group("/dishes")
	{
		dishes.GET("", dishCtrl.GetAllDishes)
		dishes.POST("", dishCtrl.CreateDish)
		dishes.GET("/:"+validators.DishIDParam, dishCtrl.GetDishByID)
		dishes.PUT("/:"+validators.DishIDParam, dishCtrl.UpdateDish)
	}

	orders := r.Group("/orders")
	{
		orders.GET("", orderCtrl.GetAllOrders)
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("/:"+validators.OrderIDParam, orderCtrl.GetOrderByID)
		orders.PUT("/:"+validators.OrderIDParam, orderCtrl.UpdateOrder)
		orders.DELETE("/:"+validators.OrderIDParam, orderCtrl.DeleteOrder)
	}

	return r
}
