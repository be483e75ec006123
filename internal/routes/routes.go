package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kuehq/kue-brain/internal/api/mastermind"
	"github.com/kuehq/kue-brain/internal/config"
	"github.com/kuehq/kue-brain/internal/engine"
	"github.com/kuehq/kue-brain/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, eng *engine.Engine, svc *mastermind.Service, cfg *config.Config) {
	// Apply global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestID())

	// Setup route groups
	SetupHealthRoutes(router, eng, cfg)
	mastermind.RegisterRoutes(router, svc)
	Setup404Handler(router)
}
