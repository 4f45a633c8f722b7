package interfaces

import (
	"context"

	"assessment_checkout/internal/domain/entities"
)

// IPaymentAPI is the contract expected from the backend order service.
//
// Errors are *entities.PaymentError values already classified into the
// taxonomy (NETWORK_ERROR, AUTHENTICATION_REQUIRED, INVALID_DATA, ...).
type IPaymentAPI interface {
	CreateOrder(ctx context.Context, req entities.CreateOrderRequest) (entities.CreateOrderResponse, error)
	CompletePayment(ctx context.Context, req entities.PaymentCompletionRequest) error
	VerifyPayment(ctx context.Context, req entities.VerifyPaymentRequest) (entities.VerifyPaymentResponse, error)
	GetPricing(ctx context.Context) (entities.PricingCatalog, error)
	HealthCheck(ctx context.Context) error
}
