package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/grubdash/models"
	"github.com/yeremiapane/grubdash/pipeline"
	"github.com/yeremiapane/grubdash/repository"
	"github.com/yeremiapane/grubdash/utils"
	"github.com/yeremiapane/grubdash/validators"
)

// DishController manages the dish collection. Dishes cannot be deleted.
type DishController struct {
	Dishes repository.Store[models.Dish]
	NextID utils.IDGenerator

	create pipeline.Pipeline
	read   pipeline.Pipeline
	update pipeline.Pipeline
}

func NewDishController(dishes repository.Store[models.Dish], nextID utils.IDGenerator) *DishController {
	if nextID == nil {
		nextID = utils.NextID
	}
	return &DishController{
		Dishes: dishes,
		NextID: nextID,
		create: pipeline.New(validators.BodyDataHasAll("Dish", validators.DishFields...)...).
			Then(validators.BodyDataAreText("Dish", validators.DishTextFields...)...).
			Then(validators.PriceGreaterThanZero()),
		read: pipeline.New(validators.DishExists(dishes)),
		update: pipeline.New(
			validators.DishExists(dishes),
			validators.PriceGreaterThanZero(),
		).
			Then(validators.BodyDataHasAll("Dish", validators.DishFields...)...).
			Then(validators.BodyDataAreText("Dish", validators.DishTextFields...)...).
			Then(validators.IDMatchesParam("Dish", validators.DishIDParam)),
	}
}

// GetAllDishes -> GET /dishes
func (dc *DishController) GetAllDishes(c *gin.Context) {
	run(c, pipeline.New(), dc.list)
}

// CreateDish -> POST /dishes
func (dc *DishController) CreateDish(c *gin.Context) {
	run(c, dc.create, dc.insert)
}

// GetDishByID -> GET /dishes/:dishId
func (dc *DishController) GetDishByID(c *gin.Context) {
	run(c, dc.read, dc.found)
}

// UpdateDish -> PUT /dishes/:dishId
func (dc *DishController) UpdateDish(c *gin.Context) {
	run(c, dc.update, dc.replace)
}

func (dc *DishController) list(r *pipeline.Request) (pipeline.Result, error) {
	dishes, err := dc.Dishes.List(r.Context())
	if err != nil {
		return pipeline.Result{}, err
	}
	return pipeline.OK(dishes), nil
}

func (dc *DishController) insert(r *pipeline.Request) (pipeline.Result, error) {
	dish := dishFromPayload(dc.NextID(), r.Data)
	if err := dc.Dishes.Insert(r.Context(), dish); err != nil {
		return pipeline.Result{}, err
	}
	return pipeline.Created(dish), nil
}

func (dc *DishController) found(r *pipeline.Request) (pipeline.Result, error) {
	dish, _ := validators.FoundDish(r)
	return pipeline.OK(dish), nil
}

func (dc *DishController) replace(r *pipeline.Request) (pipeline.Result, error) {
	id := r.Param(validators.DishIDParam)
	dish := dishFromPayload(id, r.Data)

	err := dc.Dishes.Replace(r.Context(), id, dish)
	if errors.Is(err, repository.ErrNotFound) {
		return pipeline.Result{}, utils.NotFoundf("Dish does not exist: %s", id)
	}
	if err != nil {
		return pipeline.Result{}, err
	}
	return pipeline.OK(dish), nil
}

func dishFromPayload(id string, data pipeline.Payload) models.Dish {
	price, _ := data.Number("price")
	return models.Dish{
		ID:          id,
		Name:        data.String("name"),
		Description: data.String("description"),
		Price:       price,
		ImageURL:    data.String("image_url"),
	}
}
