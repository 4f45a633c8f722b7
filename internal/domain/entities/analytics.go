package entities

type AnalyticsEventName string

const (
	EventPaymentInitiated AnalyticsEventName = "payment_initiated"
	EventCheckoutOpened   AnalyticsEventName = "checkout_opened"
	EventPaymentSucceeded AnalyticsEventName = "payment_success"
	EventPaymentFailed    AnalyticsEventName = "payment_failed"
	EventPaymentCancelled AnalyticsEventName = "payment_cancelled"
	EventAuthRequired     AnalyticsEventName = "auth_required"
	EventAuthResumed      AnalyticsEventName = "auth_resumed"
)

// AnalyticsEvent is fire-and-forget; nothing depends on its delivery.
type AnalyticsEvent struct {
	Name     AnalyticsEventName
	Gateway  Gateway
	Tier     PricingTierName
	Amount   int64
	Currency string
	Reason   string
}

// PaymentSummary is shown on the confirmation screen before checkout opens.
type PaymentSummary struct {
	Gateway       Gateway            `json:"gateway"`
	Info          GatewayDisplayInfo `json:"gatewayInfo"`
	Pricing       GatewayPricing     `json:"pricing"`
	Features      []string           `json:"features"`
	TimeRemaining *int               `json:"timeRemainingMinutes,omitempty"`
	RequiresAuth  bool               `json:"requiresAuth"`
}
