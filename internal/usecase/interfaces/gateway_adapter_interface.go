package interfaces

import (
	"context"

	"assessment_checkout/internal/domain/entities"
)

// IGatewayAdapter drives one gateway end to end and always ends with exactly
// one PaymentResult.
type IGatewayAdapter interface {
	Gateway() entities.Gateway
	InitiatePayment(ctx context.Context, sessionID, testID string) entities.PaymentResult
	Pricing(ctx context.Context, locale entities.Locale) (entities.GatewayPricing, error)
	Available(ctx context.Context) bool
	DisplayInfo() entities.GatewayDisplayInfo
}
