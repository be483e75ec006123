package mastermind

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kuehq/kue-brain/internal/types"
	"github.com/kuehq/kue-brain/internal/utils"
)

type Controller struct {
	service *Service
}

func NewController(svc *Service) *Controller {
	return &Controller{service: svc}
}

func (c *Controller) Respond(ctx *gin.Context) {
	var req types.ReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Warn("invalid /mastermind payload", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":     "bad_request",
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	result, err := c.service.Handle(ctx.Request.Context(), &req)
	if err != nil {
		utils.Zlog.Error("mastermind request failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal_error",
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
