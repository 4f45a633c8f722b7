package handlers

import (
	"net/http"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	session usecase.ISessionUseCase
	pricing usecase.IPricingUseCase
	payment usecase.IPaymentUseCase
	catalog entities.PricingCatalog
}

func NewPricingHandler(session usecase.ISessionUseCase, pricing usecase.IPricingUseCase, payment usecase.IPaymentUseCase, catalog entities.PricingCatalog) *PricingHandler {
	return &PricingHandler{session: session, pricing: pricing, payment: payment, catalog: catalog}
}

// GetPricing returns the current tier summary for ?gateway= (razorpay by
// default) priced from the scope's session clock.
func (h *PricingHandler) GetPricing(c *gin.Context) {
	gateway := entities.GatewayRazorpay
	if raw := c.Query("gateway"); raw != "" {
		g, ok := entities.ParseGateway(raw)
		if !ok {
			writeError(c, errUnsupportedGateway)
			return
		}
		gateway = g
	}

	ctx := c.Request.Context()
	start, err := h.session.GetOrCreateSessionStartTime(ctx)
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	table, _ := h.catalog.TableFor(gateway, entities.ClientInfoFromContext(ctx).Locale)
	summary, err := h.pricing.Summary(start, table)
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *PricingHandler) GetGatewayPricing(c *gin.Context) {
	c.JSON(http.StatusOK, h.payment.GetBothGatewayPricing(c.Request.Context()))
}
