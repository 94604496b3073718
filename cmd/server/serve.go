package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harvestshare/harvestshare/internal/config"
	"github.com/harvestshare/harvestshare/internal/database"
	"github.com/harvestshare/harvestshare/internal/handlers"
	"github.com/harvestshare/harvestshare/internal/middleware"
	"github.com/harvestshare/harvestshare/internal/repository"
	"github.com/harvestshare/harvestshare/internal/services"
	"github.com/spf13/cobra"

	_ "github.com/harvestshare/harvestshare/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HarvestShare API server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServer(); err != nil {
			log.Fatal(err)
		}
	},
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	dealRepo := repository.NewDealRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	if err := tokenRepo.DeleteExpired(); err != nil {
		log.Printf("Failed to clean up expired tokens: %v", err)
	}

	tokenTTL := time.Duration(cfg.JWT.TTLHours) * time.Hour
	authService := services.NewAuthService(userRepo, tokenRepo, cfg.JWT.Secret, tokenTTL, cfg.BcryptCost)
	userService := services.NewUserService(userRepo, cfg.BcryptCost)
	propertyService := services.NewPropertyService(propertyRepo, userRepo)
	applicationService := services.NewApplicationService(applicationRepo, propertyRepo, userRepo)
	dealService := services.NewDealService(dealRepo, applicationRepo, propertyRepo, userRepo, db)
	messageService := services.NewMessageService(messageRepo, dealRepo)
	exportService := services.NewExportService(dealRepo, propertyRepo, userRepo, cfg.ExportSigningKey)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	adminMiddleware := middleware.NewAdminMiddleware(cfg.AdminUsers)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	dealHandler := handlers.NewDealHandler(dealService)
	messageHandler := handlers.NewMessageHandler(messageService)
	exportHandler := handlers.NewExportHandler(exportService)
	adminHandler := handlers.NewAdminHandler(userService, dealService)

	router := gin.Default()

	router.GET("/docs", handlers.SwaggerUIWithBearerFix())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/users/:id", userHandler.GetUser)
		api.GET("/users/:id/properties", propertyHandler.GetUserProperties)
		api.GET("/properties", propertyHandler.ListProperties)
		api.GET("/properties/:id", propertyHandler.GetProperty)
		api.POST("/exports/verify", exportHandler.VerifyReceipt)

		authenticated := api.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			authenticated.POST("/auth/logout", authHandler.Logout)

			authenticated.PATCH("/users/me", userHandler.UpdateMe)

			authenticated.POST("/properties", propertyHandler.CreateProperty)
			authenticated.PATCH("/properties/:id", propertyHandler.UpdateProperty)
			authenticated.GET("/properties/:id/applications", applicationHandler.GetPropertyApplications)

			authenticated.POST("/applications", applicationHandler.CreateApplication)
			authenticated.GET("/users/:id/applications", applicationHandler.GetUserApplications)
			authenticated.PATCH("/applications/:id", applicationHandler.UpdateApplication)

			authenticated.POST("/deals", dealHandler.CreateDeal)
			authenticated.GET("/users/:id/deals", dealHandler.GetUserDeals)
			authenticated.GET("/deals/:id", dealHandler.GetDeal)
			authenticated.PATCH("/deals/:id", dealHandler.UpdateDeal)
			authenticated.POST("/deals/:id/rating", dealHandler.SubmitRating)
			authenticated.GET("/deals/:id/export", exportHandler.ExportDeal)

			authenticated.GET("/deals/:id/messages", messageHandler.GetDealMessages)
			authenticated.POST("/messages", messageHandler.SendMessage)
		}

		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(adminMiddleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/deals", adminHandler.ListDeals)
		}
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting HarvestShare server on %s", addr)
	return router.Run(addr)
}
