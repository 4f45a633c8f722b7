package handlers

import (
	"net/http"

	"assessment_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GatewayHandler struct {
	payment usecase.IPaymentUseCase
}

func NewGatewayHandler(payment usecase.IPaymentUseCase) *GatewayHandler {
	return &GatewayHandler{payment: payment}
}

func (h *GatewayHandler) Recommended(c *gin.Context) {
	c.JSON(http.StatusOK, h.payment.GetRecommendedGateway(c.Request.Context()))
}

func (h *GatewayHandler) Availability(c *gin.Context) {
	c.JSON(http.StatusOK, h.payment.CheckGatewayAvailability(c.Request.Context()))
}

func (h *GatewayHandler) DisplayInfo(c *gin.Context) {
	gateway, ok := gatewayParam(c)
	if !ok {
		return
	}
	info, err := h.payment.GetGatewayDisplayInfo(c.Request.Context(), gateway)
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *GatewayHandler) Summary(c *gin.Context) {
	gateway, ok := gatewayParam(c)
	if !ok {
		return
	}
	summary, err := h.payment.GetPaymentSummary(c.Request.Context(), gateway)
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, summary)
}
