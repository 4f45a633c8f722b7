package interfaces

import (
	"context"

	"assessment_checkout/internal/domain/entities"
)

// ICheckoutPresenter shows a checkout to the browser and waits for the
// terminal event. There is no timeout; only ctx cancellation stops the wait.
// createOrder may be nil when the gateway does not create orders lazily.
type ICheckoutPresenter interface {
	Present(ctx context.Context, p entities.CheckoutPresentation, createOrder CreateOrderFunc) (entities.CheckoutEvent, error)
}
