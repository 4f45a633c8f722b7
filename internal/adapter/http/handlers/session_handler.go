package handlers

import (
	"net/http"

	response "assessment_checkout/internal/adapter/http/dto/response"
	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// SessionHandler exposes the checkout scope's pricing clock and state.
type SessionHandler struct {
	session usecase.ISessionUseCase
	pricing usecase.IPricingUseCase
	catalog entities.PricingCatalog
}

func NewSessionHandler(session usecase.ISessionUseCase, pricing usecase.IPricingUseCase, catalog entities.PricingCatalog) *SessionHandler {
	return &SessionHandler{session: session, pricing: pricing, catalog: catalog}
}

// Touch starts the pricing clock on first call and reports it afterwards.
func (h *SessionHandler) Touch(c *gin.Context) {
	ctx := c.Request.Context()
	start, err := h.session.GetOrCreateSessionStartTime(ctx)
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	minutes, err := h.session.SessionDuration(ctx)
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	table, _ := h.catalog.TableFor(entities.GatewayRazorpay, entities.ClientInfoFromContext(ctx).Locale)
	tier, err := h.pricing.CalculatePricing(start, table)
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.SessionResponse{
		SessionStartTime:       start,
		SessionDurationMinutes: minutes,
		Pricing:                tier,
	})
}

func (h *SessionHandler) State(c *gin.Context) {
	state, err := h.session.PaymentFlowState(c.Request.Context())
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *SessionHandler) Clear(c *gin.Context) {
	if err := h.session.ClearAllData(c.Request.Context()); err != nil {
		log.WithError(err).Error("[session][handler] clear failed")
		writeError(c, mapCheckoutError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
