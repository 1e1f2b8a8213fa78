package main

import (
	"log"
	"net/http"
	"os"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/pkg/logger"
	"food-ordering-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zapLogger.Sync()

	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()
	zapLogger.Info("database connected and migrated")

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zapLogger))

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Ordering API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.Setup(r, config.DB, zapLogger)

	port := config.Port()
	zapLogger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
