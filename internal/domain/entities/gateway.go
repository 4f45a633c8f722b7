package entities

import "strings"

// Gateway identifies the third-party checkout provider used for an attempt.
type Gateway string

const (
	GatewayRazorpay Gateway = "razorpay"
	GatewayPayPal   Gateway = "paypal"
)

// ParseGateway normalizes a gateway name coming from the outside world.
func ParseGateway(raw string) (Gateway, bool) {
	switch Gateway(strings.ToLower(strings.TrimSpace(raw))) {
	case GatewayRazorpay:
		return GatewayRazorpay, true
	case GatewayPayPal:
		return GatewayPayPal, true
	}
	return "", false
}

func (g Gateway) Valid() bool {
	return g == GatewayRazorpay || g == GatewayPayPal
}

// GatewayDisplayInfo is what the UI needs to render a gateway choice.
type GatewayDisplayInfo struct {
	Gateway     Gateway  `json:"gateway"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Currency    string   `json:"currency"`
	Methods     []string `json:"methods"`
	Available   bool     `json:"available"`
}

// GatewayRecommendation is the result of the locale heuristic.
type GatewayRecommendation struct {
	Primary   Gateway `json:"primary"`
	Secondary Gateway `json:"secondary"`
	Reason    string  `json:"reason"`
	Fallback  bool    `json:"fallback"`
}

type GatewayAvailability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
