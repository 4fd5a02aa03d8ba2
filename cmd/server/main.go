package main

import (
	"log"
	"os"

	"reloading-bench-backend/internal/api/routes"
	"reloading-bench-backend/internal/config"
	"reloading-bench-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "reloading-bench-backend/docs" // This is needed for swag
)

//	@title			Reloading Bench API
//	@version		1.0
//	@description	Backend API for a personal ammunition reloading inventory: ammo boxes, firearm actions and barrels, load recipes, components and DOPE data.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:3001
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Open the data store. The snapshot is loaded and, if it is in the
	// legacy rifle shape, migrated and written back before any request
	// is served.
	store, err := storage.Open(cfg.DataPath)
	if err != nil {
		logrus.Fatal("Failed to open data store:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(store, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "3001"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
