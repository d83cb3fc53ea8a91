package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shottrack/middleware"
	"github.com/shottrack/services"
)

// RegisterRoutes wires up the HTTP surface: the login endpoint, the health
// check and the project CRUD group behind the bearer guard.
func RegisterRoutes(router *gin.Engine, authService *services.AuthService, projectService ProjectService) {
	authController := NewAuthController(authService)
	projectController := NewProjectController(projectService)

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Login endpoint
	router.POST("/token", authController.Login)

	// Project endpoints - protected by AuthMiddleware
	api := router.Group("/api")
	projectGroup := api.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware(authService))
	{
		projectGroup.GET("/", projectController.ListProjects)
		projectGroup.POST("/", projectController.CreateProject)
		projectGroup.PUT("/:id", projectController.UpdateProject)
		projectGroup.DELETE("/:id", projectController.DeleteProject)
	}
}
