package mastermind

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the /mastermind endpoint at the root level
func RegisterRoutes(router *gin.Engine, svc *Service) {
	ctrl := NewController(svc)
	router.POST("/mastermind", ctrl.Respond)
}
