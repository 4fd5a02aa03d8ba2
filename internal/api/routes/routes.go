package routes

import (
	"reloading-bench-backend/internal/api/handlers"
	"reloading-bench-backend/internal/api/middleware"
	"reloading-bench-backend/internal/config"
	"reloading-bench-backend/internal/service"
	"reloading-bench-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(store *storage.Store, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize services
	boxService := service.NewBoxService(store, validator)
	actionService := service.NewActionService(store, validator)
	barrelService := service.NewBarrelService(store, validator)
	componentService := service.NewComponentService(store)
	savedLoadService := service.NewSavedLoadService(store, validator)
	cartridgeService := service.NewCartridgeService(store, validator)
	elevationService := service.NewElevationService(store, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store)
	boxHandler := handlers.NewBoxHandler(boxService)
	actionHandler := handlers.NewActionHandler(actionService)
	barrelHandler := handlers.NewBarrelHandler(barrelService)
	componentHandler := handlers.NewComponentHandler(componentService)
	savedLoadHandler := handlers.NewSavedLoadHandler(savedLoadService)
	cartridgeHandler := handlers.NewCartridgeHandler(cartridgeService)
	elevationHandler := handlers.NewElevationHandler(elevationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		boxes := v1.Group("/boxes")
		{
			boxes.GET("", boxHandler.ListBoxes)
			boxes.GET("/:id", boxHandler.GetBox)
			boxes.POST("", boxHandler.CreateBox)
			boxes.PUT("/:id", boxHandler.UpdateBox)
			boxes.DELETE("/:id", boxHandler.DeleteBox)
			boxes.POST("/:id/reload", boxHandler.ReloadBox)
			boxes.POST("/:id/assign-barrel", boxHandler.AssignBarrel)
			boxes.PATCH("/:id/status", boxHandler.SetBoxStatus)
		}

		actions := v1.Group("/actions")
		{
			actions.GET("", actionHandler.ListActions)
			actions.GET("/:id", actionHandler.GetAction)
			actions.POST("", actionHandler.CreateAction)
			actions.PUT("/:id", actionHandler.UpdateAction)
			actions.DELETE("/:id", actionHandler.DeleteAction)
		}

		barrels := v1.Group("/barrels")
		{
			barrels.GET("", barrelHandler.ListBarrels)
			barrels.GET("/:id", barrelHandler.GetBarrel)
			barrels.POST("", barrelHandler.CreateBarrel)
			barrels.PUT("/:id", barrelHandler.UpdateBarrel)
			barrels.DELETE("/:id", barrelHandler.DeleteBarrel)
		}

		components := v1.Group("/components")
		{
			components.GET("", componentHandler.GetComponents)
			components.POST("/:type", componentHandler.AddComponent)
			components.PUT("/:type/:index", componentHandler.RenameComponent)
			components.DELETE("/:type/:index", componentHandler.RemoveComponent)
		}

		loads := v1.Group("/loads")
		{
			loads.GET("", savedLoadHandler.ListSavedLoads)
			loads.GET("/:id", savedLoadHandler.GetSavedLoad)
			loads.POST("", savedLoadHandler.CreateSavedLoad)
			loads.PUT("/:id", savedLoadHandler.UpdateSavedLoad)
			loads.DELETE("/:id", savedLoadHandler.DeleteSavedLoad)
		}

		cartridges := v1.Group("/cartridges")
		{
			cartridges.GET("", cartridgeHandler.ListCartridges)
			cartridges.GET("/:id", cartridgeHandler.GetCartridge)
			cartridges.POST("", cartridgeHandler.CreateCartridge)
			cartridges.PUT("/:id", cartridgeHandler.UpdateCartridge)
			cartridges.DELETE("/:id", cartridgeHandler.DeleteCartridge)
		}

		elevations := v1.Group("/elevations")
		{
			elevations.GET("", elevationHandler.ListElevations)
			elevations.GET("/:id", elevationHandler.GetElevation)
			elevations.POST("", elevationHandler.CreateElevation)
			elevations.PUT("/:id", elevationHandler.UpdateElevation)
			elevations.DELETE("/:id", elevationHandler.DeleteElevation)
		}
	}

	return router
}
