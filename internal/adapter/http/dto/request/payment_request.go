package request

import (
	"errors"
	"strings"

	"assessment_checkout/internal/domain/entities"
)

var (
	ErrMissingIdentifiers = errors.New("sessionId and testId are required")
	ErrInvalidOutcome     = errors.New("invalid checkout outcome")
)

// PaymentRequest starts a payment for a finished assessment.
type PaymentRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	TestID    string `json:"testId" binding:"required"`
}

func (r PaymentRequest) Resolve() (sessionID, testID string, err error) {
	sessionID = strings.TrimSpace(r.SessionID)
	testID = strings.TrimSpace(r.TestID)
	if sessionID == "" || testID == "" {
		return "", "", ErrMissingIdentifiers
	}
	return sessionID, testID, nil
}

// AuthCheckRequest asks whether payment may proceed. CurrentPath is where the
// UI wants to come back to after sign-in.
type AuthCheckRequest struct {
	SessionID   string `json:"sessionId" binding:"required"`
	TestID      string `json:"testId" binding:"required"`
	CurrentPath string `json:"currentPath"`
}

func (r AuthCheckRequest) Resolve() (sessionID, testID string, err error) {
	return PaymentRequest{SessionID: r.SessionID, TestID: r.TestID}.Resolve()
}

type RazorpayCallback struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type GatewayFailure struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// CheckoutEventRequest is a callback fired by the gateway UI in the browser.
type CheckoutEventRequest struct {
	Outcome  string            `json:"outcome" binding:"required"`
	Razorpay *RazorpayCallback `json:"razorpay"`
	OrderID  string            `json:"orderID"`
	PayerID  string            `json:"payerID"`
	Failure  *GatewayFailure   `json:"failure"`
}

func (r CheckoutEventRequest) ToEntity() (entities.CheckoutEvent, error) {
	ev := entities.CheckoutEvent{
		Outcome: entities.CheckoutOutcome(strings.ToLower(strings.TrimSpace(r.Outcome))),
		OrderID: strings.TrimSpace(r.OrderID),
		PayerID: strings.TrimSpace(r.PayerID),
	}
	if !ev.Outcome.Valid() {
		return entities.CheckoutEvent{}, ErrInvalidOutcome
	}
	if r.Razorpay != nil {
		ev.Razorpay = &entities.RazorpayResponse{
			OrderID:   strings.TrimSpace(r.Razorpay.OrderID),
			PaymentID: strings.TrimSpace(r.Razorpay.PaymentID),
			Signature: strings.TrimSpace(r.Razorpay.Signature),
		}
	}
	if r.Failure != nil {
		ev.Failure = &entities.GatewayFailure{
			Code:        r.Failure.Code,
			Description: r.Failure.Description,
			Reason:      r.Failure.Reason,
		}
	}
	return ev, nil
}
