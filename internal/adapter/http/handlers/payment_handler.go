package handlers

import (
	"context"
	"net/http"
	"time"

	request "assessment_checkout/internal/adapter/http/dto/request"
	response "assessment_checkout/internal/adapter/http/dto/response"
	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/infrastructure/checkout"
	"assessment_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// DefaultStartWait is how long ProcessPayment waits for an attempt that ends
// without user interaction (auth required, validation, load failures).
const DefaultStartWait = 1500 * time.Millisecond

// PaymentHandler exposes processPayment as a background attempt plus the
// callbacks the gateway UI in the browser fires while the attempt waits.
type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	attempts *checkout.Attempts
	broker   *checkout.Broker
	wait     time.Duration
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, attempts *checkout.Attempts, broker *checkout.Broker, wait time.Duration) *PaymentHandler {
	if wait <= 0 {
		wait = DefaultStartWait
	}
	return &PaymentHandler{usecase: uc, attempts: attempts, broker: broker, wait: wait}
}

// ProcessPayment starts a payment attempt. It answers 200 with the result when
// the attempt is already over, else 202 with the attempt to poll.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	gateway, ok := gatewayParam(c)
	if !ok {
		return
	}
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPaymentPayload)
		return
	}
	sessionID, testID, err := payload.Resolve()
	if err != nil {
		writeError(c, errInvalidPaymentPayload)
		return
	}
	if err := h.usecase.ValidatePaymentParameters(gateway, sessionID, testID).Err(); err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}

	key := checkout.AttemptKey(gateway, sessionID, testID)
	id, joined := h.attempts.Start(c.Request.Context(), key, gateway, func(ctx context.Context) entities.PaymentResult {
		return h.usecase.ProcessPayment(ctx, gateway, sessionID, testID)
	})
	log.WithFields(log.Fields{"attempt_id": id, "gateway": gateway, "session_id": sessionID, "test_id": testID, "joined": joined}).Info("[payment][handler] attempt accepted")

	attempt, err := h.attempts.Wait(c.Request.Context(), id, h.wait)
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	status := http.StatusAccepted
	if attempt.Status == entities.AttemptFinished {
		status = http.StatusOK
	}
	c.JSON(status, response.FromAttempt(attempt))
}

func (h *PaymentHandler) GetAttempt(c *gin.Context) {
	attempt, err := h.attempts.Get(c.Request.Context(), c.Param("attempt_id"))
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAttempt(attempt))
}

// CreateOrder serves the PayPal buttons' createOrder callback.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	attemptID := c.Param("attempt_id")
	orderID, err := h.broker.CreateOrder(c.Request.Context(), attemptID)
	if err != nil {
		log.WithField("attempt_id", attemptID).WithError(err).Warn("[payment][handler] create order failed")
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.OrderResponse{OrderID: orderID})
}

// CheckoutEvent hands a gateway callback (success, failure, dismissal,
// approval, cancel, error) to the waiting attempt.
func (h *PaymentHandler) CheckoutEvent(c *gin.Context) {
	attemptID := c.Param("attempt_id")
	var payload request.CheckoutEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEventPayload)
		return
	}
	ev, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidEventPayload)
		return
	}
	if err := h.broker.Deliver(c.Request.Context(), attemptID, ev); err != nil {
		log.WithFields(log.Fields{"attempt_id": attemptID, "outcome": ev.Outcome}).WithError(err).Warn("[payment][handler] checkout event rejected")
		writeError(c, mapCheckoutError(err))
		return
	}

	attempt, err := h.attempts.Wait(c.Request.Context(), attemptID, h.wait)
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAttempt(attempt))
}
