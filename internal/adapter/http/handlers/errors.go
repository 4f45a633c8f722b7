package handlers

import (
	"errors"
	"net/http"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/infrastructure/checkout"
	"assessment_checkout/internal/usecase"
	"assessment_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
	errInvalidEventPayload   = pkg.NewDomainErrorSimple("INVALID_EVENT_INPUT", "Invalid checkout event payload", http.StatusBadRequest)
	errUnsupportedGateway    = pkg.NewDomainErrorSimple("UNSUPPORTED_GATEWAY", "Unsupported payment gateway", http.StatusBadRequest)
)

// mapCheckoutError turns usecase and broker errors into the HTTP error shape.
// Payment taxonomy kinds keep their code and user message.
func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, checkout.ErrAttemptNotFound):
		return pkg.NewDomainErrorSimple("ATTEMPT_NOT_FOUND", "Payment attempt not found", http.StatusNotFound)
	case errors.Is(err, checkout.ErrNoCheckout):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_OPEN", "No checkout is open for this attempt", http.StatusConflict)
	case errors.Is(err, checkout.ErrEventAlreadyHandled):
		return pkg.NewDomainErrorSimple("CHECKOUT_ALREADY_HANDLED", "Checkout already received a result", http.StatusConflict)
	case errors.Is(err, checkout.ErrNoLazyOrder):
		return pkg.NewDomainErrorSimple("ORDER_NOT_LAZY", "This checkout does not create orders on demand", http.StatusConflict)
	case errors.Is(err, checkout.ErrInvalidEvent):
		return errInvalidEventPayload
	case errors.Is(err, usecase.ErrIdentityNotConfigured):
		return pkg.NewDomainError("IDENTITY_UNAVAILABLE", "Sign-in is not available", err, http.StatusServiceUnavailable)
	}

	var pe *entities.PaymentError
	if !errors.As(err, &pe) {
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	msg := pe.Kind.UserMessage()
	switch pe.Kind {
	case entities.ErrorKindAuthenticationRequired:
		return pkg.NewDomainError(string(pe.Kind), msg, err, http.StatusUnauthorized)
	case entities.ErrorKindInvalidData, entities.ErrorKindInvalidAmount:
		return pkg.NewDomainError(string(pe.Kind), msg, err, http.StatusBadRequest)
	case entities.ErrorKindSessionExpired:
		return pkg.NewDomainError(string(pe.Kind), msg, err, http.StatusGone)
	case entities.ErrorKindNetwork, entities.ErrorKindScriptLoadFailed:
		return pkg.NewDomainError(string(pe.Kind), msg, err, http.StatusServiceUnavailable)
	case entities.ErrorKindOrderCreationFailed:
		return pkg.NewDomainError(string(pe.Kind), msg, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError(string(pe.Kind), msg, err, http.StatusPaymentRequired)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func gatewayParam(c *gin.Context) (entities.Gateway, bool) {
	g, ok := entities.ParseGateway(c.Param("gateway"))
	if !ok {
		writeError(c, errUnsupportedGateway)
	}
	return g, ok
}
