package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuehq/kue-brain/internal/config"
	"github.com/kuehq/kue-brain/internal/controllers"
	"github.com/kuehq/kue-brain/internal/engine"
)

// SetupHealthRoutes configures health check endpoints
func SetupHealthRoutes(router *gin.Engine, eng *engine.Engine, cfg *config.Config) {
	healthController := controllers.NewHealthController(eng)
	systemController := controllers.NewSystemController(cfg)

	// Root endpoint doubles as the readiness probe for the demo frontend
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "Kue Brain v2 Ready",
			"mode":   eng.Mode(),
		})
	})

	router.GET("/health", healthController.HealthCheck)
	router.GET("/status", systemController.Status)
}
