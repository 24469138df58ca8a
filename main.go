package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kalikian/shopping-list-api/db"
	"github.com/kalikian/shopping-list-api/logger"
	"github.com/kalikian/shopping-list-api/middleware"
	"github.com/kalikian/shopping-list-api/repository"
	"github.com/kalikian/shopping-list-api/routes"
	"github.com/kalikian/shopping-list-api/service"
)

func main() {
	// Load environment variables; a missing .env is fine in deployed setups
	// where the environment is injected directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	appLog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	// Initialize database
	gdb, err := db.Connect()
	if err != nil {
		appLog.Fatal("database connection failed", "error", err)
	}
	if err := db.MakeMigration(gdb); err != nil {
		appLog.Fatal("database migration failed", "error", err)
	}
	appLog.Info("connected to the database")

	// Set Gin to release mode in production
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(appLog))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Register routes
	itemRepo := repository.NewItemRepository(gdb, appLog)
	itemService := service.NewItemService(itemRepo, appLog)
	routes.ItemRoutes(router, itemService, appLog)

	// Get the port from environment variables or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	appLog.Info("server starting", "port", port)
	if err := router.Run(":" + port); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}
