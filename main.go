package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/felalfaro/sellers-meli/database"
	"github.com/felalfaro/sellers-meli/internal/api"
	"github.com/felalfaro/sellers-meli/internal/config"
	"github.com/felalfaro/sellers-meli/internal/handlers"
	"github.com/felalfaro/sellers-meli/internal/repository"
	"github.com/felalfaro/sellers-meli/internal/service"
)

func main() {
	// Load configuration (reads .env if present)
	cfg := config.MustLoad()

	// Initialize database connection
	database.Connect(cfg.Database.DSN())

	// Run repository migrations
	if err := repository.AutoMigrate(); err != nil {
		log.Fatalf("failed to run repository migrations: %v", err)
	}

	// Wire dependencies
	meliClient := api.NewMeliClient(cfg.Meli.BaseURL)
	itemRepo := repository.NewItemRepository()
	datasetService := service.NewDatasetService(meliClient, itemRepo)
	datasetHandler := handlers.NewDatasetHandler(datasetService)

	// Setup Gin router
	router := gin.Default()

	// Simple health check route
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	datasetHandler.RegisterRoutes(router)

	log.Println("server listening on", cfg.Server.Address())

	if err := router.Run(cfg.Server.Address()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
