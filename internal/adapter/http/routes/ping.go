package routes

import (
	"assessment_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup, h *handlers.HealthHandler) {
	rg.GET("/ping", h.Ping)
	rg.GET("/health", h.Health)
}
