package interfaces

import (
	"context"

	"assessment_checkout/internal/domain/entities"
)

// IRazorpayLoader loads the Razorpay checkout SDK. Load is idempotent: the
// SDK is loaded once and concurrent callers share the same load.
type IRazorpayLoader interface {
	Load(ctx context.Context) (IRazorpaySDK, error)
}

// IRazorpaySDK opens the Razorpay checkout for a pre-created order and blocks
// until the user pays, the payment fails or the checkout is dismissed.
type IRazorpaySDK interface {
	Open(ctx context.Context, opts entities.RazorpayCheckoutOptions) (entities.RazorpayCheckoutResult, error)
	// VerifySignature checks a handler response locally. checked is false when
	// the SDK has no key secret to check with.
	VerifySignature(resp entities.RazorpayResponse) (checked bool, valid bool)
}

// IPayPalLoader loads the PayPal JS SDK equivalent (client credentials).
type IPayPalLoader interface {
	Load(ctx context.Context) (IPayPalSDK, error)
}

// CreateOrderFunc is invoked by the buttons when the payer starts checkout.
type CreateOrderFunc func(ctx context.Context) (string, error)

// IPayPalSDK mirrors paypal.Buttons plus actions.order.create/capture.
type IPayPalSDK interface {
	RenderButtons(ctx context.Context, cfg entities.PayPalButtonsConfig, createOrder CreateOrderFunc) (entities.PayPalButtonsResult, error)
	CreateOrder(ctx context.Context, req entities.PayPalOrderRequest) (entities.PayPalOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (entities.PayPalCapture, error)
}
