package handlers

import (
	"context"
	"net/http"
	"time"

	"assessment_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const healthCheckTimeout = 3 * time.Second

type HealthHandler struct {
	api interfaces.IPaymentAPI
}

func NewHealthHandler(api interfaces.IPaymentAPI) *HealthHandler {
	return &HealthHandler{api: api}
}

func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health reports degraded when the payment backend does not answer.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.api.HealthCheck(ctx); err != nil {
		log.WithError(err).Warn("[health][handler] payment backend unreachable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "paymentApi": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "paymentApi": "ok"})
}
