package payments

import (
	"context"
	"errors"
	"net"
	"strings"

	"assessment_checkout/internal/domain/entities"
)

var (
	ErrOrderMismatch        = errors.New("gateway reported an order that was not created for this attempt")
	ErrSignatureInvalid     = errors.New("razorpay signature verification failed")
	ErrApprovalWithoutOrder = errors.New("paypal approval arrived before any order was created")
	ErrCaptureNotCompleted  = errors.New("paypal capture did not complete")
)

// razorpayErrorKinds maps checkout.js error codes onto the taxonomy.
var razorpayErrorKinds = map[string]entities.ErrorKind{
	"BAD_REQUEST_ERROR": entities.ErrorKindPaymentFailed,
	"GATEWAY_ERROR":     entities.ErrorKindPaymentFailed,
	"SERVER_ERROR":      entities.ErrorKindNetwork,
	"NETWORK_ERROR":     entities.ErrorKindNetwork,
	"INVALID_AMOUNT":    entities.ErrorKindInvalidAmount,
}

// paypalErrorKinds maps PayPal issue codes (REST details[].issue, error name
// or buttons onError code) onto the taxonomy.
var paypalErrorKinds = map[string]entities.ErrorKind{
	"INSTRUMENT_DECLINED":     entities.ErrorKindPaymentFailed,
	"PAYER_ACTION_REQUIRED":   entities.ErrorKindPaymentFailed,
	"ORDER_NOT_APPROVED":      entities.ErrorKindPaymentFailed,
	"ORDER_ALREADY_CAPTURED":  entities.ErrorKindPaymentFailed,
	"PAYER_CANNOT_PAY":        entities.ErrorKindPaymentFailed,
	"TRANSACTION_REFUSED":     entities.ErrorKindPaymentFailed,
	"UNPROCESSABLE_ENTITY":    entities.ErrorKindInvalidData,
	"INVALID_REQUEST":         entities.ErrorKindInvalidData,
	"INVALID_PARAMETER_VALUE": entities.ErrorKindInvalidData,
	"AMOUNT_MISMATCH":         entities.ErrorKindInvalidAmount,
	"DUPLICATE_INVOICE_ID":    entities.ErrorKindOrderCreationFailed,
	"RESOURCE_NOT_FOUND":      entities.ErrorKindOrderCreationFailed,
	"AUTHENTICATION_FAILURE":  entities.ErrorKindScriptLoadFailed,
	"INTERNAL_SERVER_ERROR":   entities.ErrorKindNetwork,
	"SERVICE_UNAVAILABLE":     entities.ErrorKindNetwork,
}

func razorpayFailure(f *entities.GatewayFailure) error {
	if f == nil {
		return entities.NewPaymentError(entities.ErrorKindPaymentFailed, "", nil)
	}
	kind, ok := razorpayErrorKinds[strings.ToUpper(f.Code)]
	if !ok {
		kind = entities.ErrorKindPaymentFailed
	}
	return entities.NewPaymentError(kind, f.Description, errors.New(f.Code))
}

func paypalFailure(f *entities.GatewayFailure) error {
	if f == nil {
		return entities.NewPaymentError(entities.ErrorKindPaymentFailed, "", nil)
	}
	kind, ok := paypalErrorKinds[strings.ToUpper(f.Code)]
	if !ok {
		kind = entities.ErrorKindPaymentFailed
	}
	return entities.NewPaymentError(kind, f.Description, errors.New(f.Code))
}

// translatePayPal classifies errors coming out of the PayPal SDK.
func translatePayPal(err error, fallback entities.ErrorKind) error {
	var pe *entities.PaymentError
	if errors.As(err, &pe) {
		return err
	}
	var apiErr *PayPalAPIError
	if errors.As(err, &apiErr) {
		if kind, ok := paypalErrorKinds[apiErr.Issue()]; ok {
			return entities.NewPaymentError(kind, apiErr.Message, err)
		}
		if apiErr.Status >= 500 {
			return entities.NewPaymentError(entities.ErrorKindNetwork, "", err)
		}
		return entities.NewPaymentError(fallback, apiErr.Message, err)
	}
	if isTransportError(err) {
		return entities.NewPaymentError(entities.ErrorKindNetwork, "", err)
	}
	return entities.NewPaymentError(fallback, "", err)
}

func isTransportError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
