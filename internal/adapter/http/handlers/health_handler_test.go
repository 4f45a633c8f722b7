package handlers

import (
	"errors"
	"net/http"
	"testing"

	mock_interfaces "assessment_checkout/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mock_interfaces.MockIPaymentAPI) {
		ctrl := gomock.NewController(t)
		api := mock_interfaces.NewMockIPaymentAPI(ctrl)
		h := NewHealthHandler(api)

		r := gin.New()
		r.GET("/v1/ping", h.Ping)
		r.GET("/v1/health", h.Health)
		return r, api
	}

	t.Run("ping", func(t *testing.T) {
		r, _ := setup(t)
		w := doJSON(r, http.MethodGet, "/v1/ping", "")
		if body := decodeBody(t, w); w.Code != http.StatusOK || body["message"] != "pong" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("healthy", func(t *testing.T) {
		r, api := setup(t)
		api.EXPECT().HealthCheck(gomock.Any()).Return(nil)

		if w := doJSON(r, http.MethodGet, "/v1/health", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("backend down", func(t *testing.T) {
		r, api := setup(t)
		api.EXPECT().HealthCheck(gomock.Any()).Return(errors.New("connection refused"))

		w := doJSON(r, http.MethodGet, "/v1/health", "")
		if body := decodeBody(t, w); w.Code != http.StatusServiceUnavailable || body["status"] != "degraded" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
