package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/shottrack/api/v1"
	"github.com/shottrack/config"
	"github.com/shottrack/database"
	"github.com/shottrack/models"
	"github.com/shottrack/services"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load configuration from environment
	config.LoadEnv()
	cfg := config.Load()

	// Connect to database and bootstrap the schema
	if err := database.Initialize(cfg.DSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Bootstrap the single configured account. Hashing happens at startup so
	// the plaintext never lives beyond process initialization.
	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AuthPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash bootstrap password: %v", err)
	}
	userStore := services.NewStaticUserStore(models.User{
		Username:       cfg.AuthUsername,
		HashedPassword: string(hashed),
		Disabled:       false,
	})

	authService := services.NewAuthService(userStore, cfg.JWTSecret, cfg.TokenTTL)
	projectService := services.NewProjectService()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration: a single allowed origin, all methods and headers
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	v1.RegisterRoutes(router, authService, projectService)

	// Start server
	log.Printf("🚀 Shottrack starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
