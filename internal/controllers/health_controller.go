package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kuehq/kue-brain/internal/engine"
)

type HealthController struct {
	engine *engine.Engine
}

func NewHealthController(eng *engine.Engine) *HealthController {
	return &HealthController{engine: eng}
}

// HealthCheck reports service status and the fixed operating mode.
func (h *HealthController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"mode":      h.engine.Mode(),
		"timestamp": time.Now().UTC(),
	})
}
