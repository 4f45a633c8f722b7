package entities

import (
	"errors"
	"fmt"
)

// ErrorKind is the gateway-agnostic failure taxonomy surfaced to the UI.
type ErrorKind string

const (
	ErrorKindAuthenticationRequired ErrorKind = "AUTHENTICATION_REQUIRED"
	ErrorKindNetwork                ErrorKind = "NETWORK_ERROR"
	ErrorKindOrderCreationFailed    ErrorKind = "ORDER_CREATION_FAILED"
	ErrorKindPaymentFailed          ErrorKind = "PAYMENT_FAILED"
	ErrorKindSessionExpired         ErrorKind = "SESSION_EXPIRED"
	ErrorKindInvalidAmount          ErrorKind = "INVALID_AMOUNT"
	ErrorKindInvalidData            ErrorKind = "INVALID_DATA"
	ErrorKindScriptLoadFailed       ErrorKind = "SCRIPT_LOAD_FAILED"
)

var errorMessages = map[ErrorKind]string{
	ErrorKindAuthenticationRequired: "Please sign in to continue with payment",
	ErrorKindNetwork:                "Network error. Please check your connection and try again.",
	ErrorKindOrderCreationFailed:    "Failed to create payment order. Please try again.",
	ErrorKindPaymentFailed:          "Payment failed. Please try again.",
	ErrorKindSessionExpired:         "Your session has expired. Please start again.",
	ErrorKindInvalidAmount:          "Invalid payment amount",
	ErrorKindInvalidData:            "Invalid payment data",
	ErrorKindScriptLoadFailed:       "Failed to load payment gateway. Please refresh and try again.",
}

// CancelledMessage is the result error for a checkout the user closed.
const CancelledMessage = "cancelled"

// UserMessage is the single human-readable string shown for a kind.
func (k ErrorKind) UserMessage() string {
	if msg, ok := errorMessages[k]; ok {
		return msg
	}
	return errorMessages[ErrorKindPaymentFailed]
}

// Retryable reports whether order creation may be attempted again.
func (k ErrorKind) Retryable() bool {
	return k == ErrorKindNetwork
}

// PaymentError carries a taxonomy kind plus the underlying cause.
type PaymentError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func NewPaymentError(kind ErrorKind, message string, err error) *PaymentError {
	return &PaymentError{Kind: kind, Message: message, Err: err}
}

func (e *PaymentError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.UserMessage()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *PaymentError) Unwrap() error { return e.Err }

// Is matches any PaymentError of the same kind, so the sentinels below work
// with errors.Is.
func (e *PaymentError) Is(target error) bool {
	t, ok := target.(*PaymentError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrAuthenticationRequired = &PaymentError{Kind: ErrorKindAuthenticationRequired}
	ErrNetwork                = &PaymentError{Kind: ErrorKindNetwork}
	ErrOrderCreationFailed    = &PaymentError{Kind: ErrorKindOrderCreationFailed}
	ErrPaymentFailed          = &PaymentError{Kind: ErrorKindPaymentFailed}
	ErrSessionExpired         = &PaymentError{Kind: ErrorKindSessionExpired}
	ErrInvalidAmount          = &PaymentError{Kind: ErrorKindInvalidAmount}
	ErrInvalidData            = &PaymentError{Kind: ErrorKindInvalidData}
	ErrScriptLoadFailed       = &PaymentError{Kind: ErrorKindScriptLoadFailed}
)

// KindOf extracts the taxonomy kind, defaulting to PAYMENT_FAILED for foreign errors.
func KindOf(err error) ErrorKind {
	var pe *PaymentError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ErrorKindPaymentFailed
}
