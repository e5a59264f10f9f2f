package routes

import (
	"settermind/internal/config"
	"settermind/internal/controllers"
	"settermind/internal/middleware"
	"settermind/internal/pipeline"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter initializes all controllers and API routes
func SetupRouter(db *gorm.DB, cfg *config.Config, pl *pipeline.Pipeline) *gin.Engine {
	jwtSecret := []byte(cfg.JWTSecret)

	authController := controllers.AuthController{DB: db, JWTSecret: jwtSecret}
	prospectController := controllers.ProspectController{Pipeline: pl}
	analysisController := controllers.AnalysisController{DB: db, Pipeline: pl}
	strategyController := controllers.StrategyController{DB: db, Pipeline: pl}

	// Set up Gin router
	router := gin.Default()

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	api := router.Group("/api")
	{
		api.POST("/register", authController.Register)
		api.POST("/login", authController.Login)
		api.POST("/prospect", prospectController.Prospect)

		// Everything below requires a validated bearer token.
		authorized := api.Group("/", middleware.RequireUser(db, jwtSecret))
		{
			authorized.POST("/analyze", analysisController.Analyze)
			authorized.GET("/history", analysisController.History)
			authorized.POST("/get-post-details", analysisController.PostDetails)
			authorized.POST("/generate-strategy", strategyController.Generate)
			authorized.GET("/strategies", strategyController.List)
		}
	}

	return router
}
