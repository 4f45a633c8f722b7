package entities

import "time"

type PricingTierName string

const (
	PricingTierEarly   PricingTierName = "early"
	PricingTierRegular PricingTierName = "regular"
)

func (n PricingTierName) Valid() bool {
	return n == PricingTierEarly || n == PricingTierRegular
}

// PricingTier is computed from the session clock on every read. It is never the
// source of truth for a price once an order exists.
type PricingTier struct {
	Name                 PricingTierName `json:"name"`
	Amount               int64           `json:"amount"`
	Currency             string          `json:"currency"`
	Description          string          `json:"description"`
	ValidUntil           *time.Time      `json:"validUntil,omitempty"`
	TimeRemainingMinutes *int            `json:"timeRemainingMinutes,omitempty"`
}

// PriceTable holds both tier amounts for one gateway and region, in minor units.
type PriceTable struct {
	Currency      string `json:"currency"`
	EarlyAmount   int64  `json:"earlyAmount"`
	RegularAmount int64  `json:"regularAmount"`
}

func (t PriceTable) AmountFor(name PricingTierName) int64 {
	if name == PricingTierEarly {
		return t.EarlyAmount
	}
	return t.RegularAmount
}

// PricingSnapshot freezes the tier observed right before an order is created.
type PricingSnapshot struct {
	Tier       PricingTierName `json:"tier"`
	Amount     int64           `json:"amount"`
	Currency   string          `json:"currency"`
	CapturedAt time.Time       `json:"capturedAt"`
}

type UrgencyLevel string

const (
	UrgencyLow     UrgencyLevel = "low"
	UrgencyMedium  UrgencyLevel = "medium"
	UrgencyHigh    UrgencyLevel = "high"
	UrgencyExpired UrgencyLevel = "expired"
)

// PricingSummary is the display-oriented view of the current tier.
type PricingSummary struct {
	Tier              PricingTier  `json:"tier"`
	SessionStartTime  time.Time    `json:"sessionStartTime"`
	EarlyBirdEligible bool         `json:"earlyBirdEligible"`
	Urgency           UrgencyLevel `json:"urgency"`
	DisplayAmount     string       `json:"displayAmount"`
	DisplayOriginal   string       `json:"displayOriginal"`
	DiscountPercent   int          `json:"discountPercent"`
	Savings           int64        `json:"savings"`
}

// PricingTransition reports how a tier moved between order creation and now.
type PricingTransition struct {
	Valid        bool            `json:"valid"`
	Original     PricingTierName `json:"original"`
	Current      PricingTierName `json:"current"`
	Transitioned bool            `json:"transitioned"`
	Reason       string          `json:"reason,omitempty"`
}

// GatewayPricing is the price a gateway would charge right now.
type GatewayPricing struct {
	Gateway         Gateway         `json:"gateway"`
	Region          string          `json:"region"`
	Tier            PricingTierName `json:"tier"`
	Amount          int64           `json:"amount"`
	OriginalAmount  int64           `json:"originalAmount"`
	Currency        string          `json:"currency"`
	DisplayAmount   string          `json:"displayAmount"`
	DisplayOriginal string          `json:"displayOriginal"`
	Fallback        bool            `json:"fallback"`
}

type UnifiedPricing struct {
	Razorpay GatewayPricing `json:"razorpay"`
	PayPal   GatewayPricing `json:"paypal"`
	IsIndia  bool           `json:"isIndia"`
}

// PricingCatalog is the remote price list for both gateways.
type PricingCatalog struct {
	Razorpay            PriceTable `json:"razorpay"`
	PayPalIndia         PriceTable `json:"paypalIndia"`
	PayPalInternational PriceTable `json:"paypalInternational"`
}

const (
	RegionIndia         = "india"
	RegionInternational = "international"
)

// TableFor picks the price table a gateway charges for a locale. Razorpay has a
// single INR table; PayPal prices by region.
func (c PricingCatalog) TableFor(g Gateway, locale Locale) (PriceTable, string) {
	if g == GatewayRazorpay {
		return c.Razorpay, RegionIndia
	}
	if locale.IsIndia() {
		return c.PayPalIndia, RegionIndia
	}
	return c.PayPalInternational, RegionInternational
}

// Complete reports whether every table has a currency and positive amounts.
func (c PricingCatalog) Complete() bool {
	for _, t := range []PriceTable{c.Razorpay, c.PayPalIndia, c.PayPalInternational} {
		if t.Currency == "" || t.EarlyAmount <= 0 || t.RegularAmount <= 0 {
			return false
		}
	}
	return true
}
