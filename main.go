package main

import (
	"log"

	"ciphertool-backend/config"
	"ciphertool-backend/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	cipherHandler := handlers.NewCipherHandler()

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)
		api.GET("/cipher", cipherHandler.ListCiphers)

		ops := api.Group("/cipher")
		{
			ops.POST("/encrypt", cipherHandler.Encrypt)
			ops.POST("/decrypt", cipherHandler.Decrypt)
		}
	}

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("API endpoints:")
	log.Printf("  GET  /api/v1/health         - Health check")
	log.Printf("  GET  /api/v1/cipher         - List supported ciphers")
	log.Printf("  POST /api/v1/cipher/encrypt - Encrypt text with a selected cipher")
	log.Printf("  POST /api/v1/cipher/decrypt - Decrypt text with a selected cipher")

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
