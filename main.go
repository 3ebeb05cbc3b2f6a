package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/grubdash/config"
	"github.com/yeremiapane/grubdash/database"
	"github.com/yeremiapane/grubdash/kds"
	"github.com/yeremiapane/grubdash/router"
	"github.com/yeremiapane/grubdash/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	stores, err := database.NewStores(cfg.StoreDriver, cfg.DatabaseDSN)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer stores.Close()

	if err := database.SeedFromFile(context.Background(), cfg.SeedFile, stores, utils.NextID); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed stores: %v", err)
	}

	r := router.SetupRouter(cfg, router.Dependencies{
		Dishes: stores.Dishes,
		Orders: stores.Orders,
		NextID: utils.NextID,
		Hub:    kds.NewHub(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on %s (store: %s)", srv.Addr, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.InfoLogger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Graceful shutdown failed: %v", err)
	}
	utils.InfoLogger.Println("Server stopped")
}
