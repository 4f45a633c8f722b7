package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"assessment_checkout/internal/adapter/http/handlers/mocks"
	"assessment_checkout/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var testCatalog = entities.PricingCatalog{
	Razorpay:            entities.PriceTable{Currency: "INR", EarlyAmount: 99900, RegularAmount: 149900},
	PayPalIndia:         entities.PriceTable{Currency: "USD", EarlyAmount: 1200, RegularAmount: 1500},
	PayPalInternational: entities.PriceTable{Currency: "USD", EarlyAmount: 2000, RegularAmount: 2500},
}

func TestSessionHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockISessionUseCase, *mocks.MockIPricingUseCase) {
		ctrl := gomock.NewController(t)
		session := mocks.NewMockISessionUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewSessionHandler(session, pricing, testCatalog)

		r := gin.New()
		r.POST("/v1/sessions/touch", h.Touch)
		r.GET("/v1/sessions/state", h.State)
		r.DELETE("/v1/sessions", h.Clear)
		return r, session, pricing
	}

	t.Run("touch", func(t *testing.T) {
		r, session, pricing := setup(t)
		remaining := 20
		session.EXPECT().GetOrCreateSessionStartTime(gomock.Any()).Return(start, nil)
		session.EXPECT().SessionDuration(gomock.Any()).Return(10, nil)
		pricing.EXPECT().CalculatePricing(start, testCatalog.Razorpay).Return(entities.PricingTier{
			Name: entities.PricingTierEarly, Amount: 99900, Currency: "INR", TimeRemainingMinutes: &remaining,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/sessions/touch", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		tier, _ := body["pricing"].(map[string]any)
		if body["sessionDurationMinutes"] != float64(10) || tier["name"] != "early" || tier["timeRemainingMinutes"] != float64(20) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("touch store failure", func(t *testing.T) {
		r, session, _ := setup(t)
		session.EXPECT().GetOrCreateSessionStartTime(gomock.Any()).Return(time.Time{}, errors.New("redis down"))

		if w := doJSON(r, http.MethodPost, "/v1/sessions/touch", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("state", func(t *testing.T) {
		r, session, _ := setup(t)
		session.EXPECT().PaymentFlowState(gomock.Any()).Return(entities.PaymentFlowState{HasSessionData: true, AuthenticationRequired: true}, nil)

		w := doJSON(r, http.MethodGet, "/v1/sessions/state", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["authenticationRequired"] != true {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("clear", func(t *testing.T) {
		r, session, _ := setup(t)
		session.EXPECT().ClearAllData(gomock.Any()).Return(nil)

		if w := doJSON(r, http.MethodDelete, "/v1/sessions", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestPricingHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockISessionUseCase, *mocks.MockIPricingUseCase, *mocks.MockIPaymentUseCase) {
		ctrl := gomock.NewController(t)
		session := mocks.NewMockISessionUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		payment := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPricingHandler(session, pricing, payment, testCatalog)

		r := gin.New()
		r.GET("/v1/pricing", h.GetPricing)
		r.GET("/v1/pricing/gateways", h.GetGatewayPricing)
		return r, session, pricing, payment
	}

	t.Run("default gateway", func(t *testing.T) {
		r, session, pricing, _ := setup(t)
		session.EXPECT().GetOrCreateSessionStartTime(gomock.Any()).Return(start, nil)
		pricing.EXPECT().Summary(start, testCatalog.Razorpay).Return(entities.PricingSummary{
			Tier: entities.PricingTier{Name: entities.PricingTierRegular, Amount: 149900}, Urgency: entities.UrgencyExpired,
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/pricing", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["urgency"] != "expired" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("paypal outside india", func(t *testing.T) {
		r, session, pricing, _ := setup(t)
		session.EXPECT().GetOrCreateSessionStartTime(gomock.Any()).Return(start, nil)
		pricing.EXPECT().Summary(start, testCatalog.PayPalInternational).Return(entities.PricingSummary{}, nil)

		if w := doJSON(r, http.MethodGet, "/v1/pricing?gateway=paypal", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown gateway", func(t *testing.T) {
		r, _, _, _ := setup(t)
		if w := doJSON(r, http.MethodGet, "/v1/pricing?gateway=stripe", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid session clock", func(t *testing.T) {
		r, session, pricing, _ := setup(t)
		session.EXPECT().GetOrCreateSessionStartTime(gomock.Any()).Return(start, nil)
		pricing.EXPECT().Summary(start, testCatalog.Razorpay).Return(entities.PricingSummary{}, entities.ErrInvalidData)

		if w := doJSON(r, http.MethodGet, "/v1/pricing", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("both gateways", func(t *testing.T) {
		r, _, _, payment := setup(t)
		payment.EXPECT().GetBothGatewayPricing(gomock.Any()).Return(entities.UnifiedPricing{
			Razorpay: entities.GatewayPricing{Gateway: entities.GatewayRazorpay, Amount: 99900},
			PayPal:   entities.GatewayPricing{Gateway: entities.GatewayPayPal, Amount: 2000},
		})

		w := doJSON(r, http.MethodGet, "/v1/pricing/gateways", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		pp, _ := body["paypal"].(map[string]any)
		if pp["amount"] != float64(2000) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}
