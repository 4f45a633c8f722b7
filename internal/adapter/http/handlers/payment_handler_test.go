package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assessment_checkout/internal/adapter/http/handlers/mocks"
	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/infrastructure/checkout"
	"assessment_checkout/internal/usecase/interfaces"
	"assessment_checkout/internal/usecase/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T, wait time.Duration) (*gin.Engine, *mocks.MockIPaymentUseCase, *checkout.Broker) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	broker := checkout.NewBroker()
	h := NewPaymentHandler(uc, checkout.NewAttempts(broker, time.Minute), broker, wait)

	r := gin.New()
	r.POST("/v1/payments/:gateway", h.ProcessPayment)
	r.GET("/v1/payments/attempts/:attempt_id", h.GetAttempt)
	r.POST("/v1/checkouts/:attempt_id/orders", h.CreateOrder)
	r.POST("/v1/checkouts/:attempt_id/events", h.CheckoutEvent)
	return r, uc, broker
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

// waitForPresentation polls the attempt until its checkout is open.
func waitForPresentation(t *testing.T, r http.Handler, attemptID string) map[string]any {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w := doJSON(r, http.MethodGet, "/v1/payments/attempts/"+attemptID, "")
		body := decodeBody(t, w)
		if p, ok := body["presentation"].(map[string]any); ok {
			return p
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("checkout never presented for %s", attemptID)
	return nil
}

func TestPaymentHandler_ProcessPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unsupported gateway", func(t *testing.T) {
		r, _, _ := newPaymentRouter(t, time.Second)
		w := doJSON(r, http.MethodPost, "/v1/payments/stripe", `{"sessionId":"s1","testId":"t1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := newPaymentRouter(t, time.Second)
		w := doJSON(r, http.MethodPost, "/v1/payments/razorpay", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid parameters", func(t *testing.T) {
		r, uc, _ := newPaymentRouter(t, time.Second)
		uc.EXPECT().ValidatePaymentParameters(entities.GatewayRazorpay, "s1", "t1").Return(validation.ValidateSessionID(""))

		w := doJSON(r, http.MethodPost, "/v1/payments/razorpay", `{"sessionId":"s1","testId":"t1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != string(entities.ErrorKindInvalidData) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("attempt finished before the wait", func(t *testing.T) {
		r, uc, _ := newPaymentRouter(t, time.Second)
		uc.EXPECT().ValidatePaymentParameters(entities.GatewayRazorpay, "s1", "t1").Return(validation.Result{Valid: true})
		uc.EXPECT().ProcessPayment(gomock.Any(), entities.GatewayRazorpay, "s1", "t1").
			Return(entities.FailureResult(entities.ErrAuthenticationRequired))

		w := doJSON(r, http.MethodPost, "/v1/payments/razorpay", `{"sessionId":"s1","testId":"t1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		result, _ := body["result"].(map[string]any)
		if body["status"] != "finished" || result["success"] != false || result["error"] != entities.ErrorKindAuthenticationRequired.UserMessage() {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("attempt survives the request", func(t *testing.T) {
		r, uc, _ := newPaymentRouter(t, 20*time.Millisecond)
		release := make(chan struct{})
		uc.EXPECT().ValidatePaymentParameters(entities.GatewayPayPal, "s1", "t1").Return(validation.Result{Valid: true})
		uc.EXPECT().ProcessPayment(gomock.Any(), entities.GatewayPayPal, "s1", "t1").DoAndReturn(
			func(ctx context.Context, _ entities.Gateway, _, _ string) entities.PaymentResult {
				<-release
				if ctx.Err() != nil {
					t.Errorf("attempt context must not end with the request")
				}
				return entities.CancelledResult()
			})

		w := doJSON(r, http.MethodPost, "/v1/payments/paypal", `{"sessionId":"s1","testId":"t1"}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		id, _ := decodeBody(t, w)["attemptId"].(string)
		close(release)

		deadline := time.Now().Add(2 * time.Second)
		for {
			body := decodeBody(t, doJSON(r, http.MethodGet, "/v1/payments/attempts/"+id, ""))
			if body["status"] == "finished" {
				result, _ := body["result"].(map[string]any)
				if result["cancelled"] != true {
					t.Fatalf("unexpected result %v", body)
				}
				break
			}
			if time.Now().After(deadline) {
				t.Fatalf("attempt never finished")
			}
			time.Sleep(5 * time.Millisecond)
		}
	})

	t.Run("repeat start returns the open checkout", func(t *testing.T) {
		r, uc, broker := newPaymentRouter(t, 20*time.Millisecond)
		uc.EXPECT().ValidatePaymentParameters(entities.GatewayRazorpay, "s1", "t1").Return(validation.Result{Valid: true}).Times(2)
		uc.EXPECT().ProcessPayment(gomock.Any(), entities.GatewayRazorpay, "s1", "t1").DoAndReturn(
			func(ctx context.Context, _ entities.Gateway, _, _ string) entities.PaymentResult {
				ev, err := broker.Present(ctx, entities.CheckoutPresentation{
					Gateway:  entities.GatewayRazorpay,
					Razorpay: &entities.RazorpayCheckoutOptions{OrderID: "order_1"},
				}, nil)
				if err != nil || ev.Outcome != entities.OutcomeDismissed {
					return entities.FailureResult(err)
				}
				return entities.CancelledResult()
			}).Times(1)

		first := decodeBody(t, doJSON(r, http.MethodPost, "/v1/payments/razorpay", `{"sessionId":"s1","testId":"t1"}`))
		firstID, _ := first["attemptId"].(string)
		waitForPresentation(t, r, firstID)

		w := doJSON(r, http.MethodPost, "/v1/payments/razorpay", `{"sessionId":"s1","testId":"t1"}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		second := decodeBody(t, w)
		if second["attemptId"] != firstID {
			t.Fatalf("expected attempt %s, got %v", firstID, second["attemptId"])
		}
		p, ok := second["presentation"].(map[string]any)
		if !ok || p["attemptId"] != firstID {
			t.Fatalf("expected the open checkout, got %s", w.Body.String())
		}

		w = doJSON(r, http.MethodPost, "/v1/checkouts/"+firstID+"/events", `{"outcome":"dismissed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentHandler_CheckoutFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("razorpay success event completes the attempt", func(t *testing.T) {
		r, uc, broker := newPaymentRouter(t, 20*time.Millisecond)
		uc.EXPECT().ValidatePaymentParameters(entities.GatewayRazorpay, "s1", "t1").Return(validation.Result{Valid: true})
		uc.EXPECT().ProcessPayment(gomock.Any(), entities.GatewayRazorpay, "s1", "t1").DoAndReturn(
			func(ctx context.Context, _ entities.Gateway, _, _ string) entities.PaymentResult {
				ev, err := broker.Present(ctx, entities.CheckoutPresentation{
					Gateway:  entities.GatewayRazorpay,
					Razorpay: &entities.RazorpayCheckoutOptions{OrderID: "order_1", Amount: 99900},
				}, nil)
				if err != nil || ev.Razorpay == nil {
					return entities.FailureResult(entities.ErrPaymentFailed)
				}
				return entities.SuccessResult(entities.RazorpayPaymentData{OrderID: ev.Razorpay.OrderID, PaymentID: ev.Razorpay.PaymentID})
			})

		w := doJSON(r, http.MethodPost, "/v1/payments/razorpay", `{"sessionId":"s1","testId":"t1"}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		id, _ := decodeBody(t, w)["attemptId"].(string)

		p := waitForPresentation(t, r, id)
		if rz, _ := p["razorpay"].(map[string]any); rz["order_id"] != "order_1" {
			t.Fatalf("unexpected presentation %v", p)
		}

		ev := `{"outcome":"success","razorpay":{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}}`
		w = doJSON(r, http.MethodPost, "/v1/checkouts/"+id+"/events", ev)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		w = doJSON(r, http.MethodPost, "/v1/checkouts/"+id+"/events", `{"outcome":"dismissed"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409 for a second event, got %d", w.Code)
		}
	})

	t.Run("paypal lazy order", func(t *testing.T) {
		r, uc, broker := newPaymentRouter(t, 20*time.Millisecond)
		calls := 0
		uc.EXPECT().ValidatePaymentParameters(entities.GatewayPayPal, "s1", "t1").Return(validation.Result{Valid: true})
		uc.EXPECT().ProcessPayment(gomock.Any(), entities.GatewayPayPal, "s1", "t1").DoAndReturn(
			func(ctx context.Context, _ entities.Gateway, _, _ string) entities.PaymentResult {
				var createOrder interfaces.CreateOrderFunc = func(context.Context) (string, error) {
					calls++
					return "PP-1", nil
				}
				ev, err := broker.Present(ctx, entities.CheckoutPresentation{
					Gateway: entities.GatewayPayPal,
					PayPal:  &entities.PayPalButtonsConfig{Currency: "USD", Amount: 2000},
				}, createOrder)
				if err != nil || ev.Outcome != entities.OutcomeCancelled {
					return entities.FailureResult(entities.ErrPaymentFailed)
				}
				return entities.CancelledResult()
			})

		w := doJSON(r, http.MethodPost, "/v1/payments/paypal", `{"sessionId":"s1","testId":"t1"}`)
		id, _ := decodeBody(t, w)["attemptId"].(string)
		waitForPresentation(t, r, id)

		w = doJSON(r, http.MethodPost, "/v1/checkouts/"+id+"/orders", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["orderID"] != "PP-1" || calls != 1 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}

		w = doJSON(r, http.MethodPost, "/v1/checkouts/"+id+"/events", `{"outcome":"cancelled"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown attempt", func(t *testing.T) {
		r, _, _ := newPaymentRouter(t, time.Second)
		if w := doJSON(r, http.MethodGet, "/v1/payments/attempts/missing", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/v1/checkouts/missing/events", `{"outcome":"success"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/v1/checkouts/missing/orders", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid event", func(t *testing.T) {
		r, _, _ := newPaymentRouter(t, time.Second)
		if w := doJSON(r, http.MethodPost, "/v1/checkouts/a1/events", `{"outcome":"refunded"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
