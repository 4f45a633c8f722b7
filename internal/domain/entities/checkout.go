package entities

// RazorpayPrefill is forwarded to the checkout form.
type RazorpayPrefill struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// RazorpayCheckoutOptions mirrors the options object of checkout.js.
type RazorpayCheckoutOptions struct {
	Key         string            `json:"key"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	OrderID     string            `json:"order_id"`
	Prefill     RazorpayPrefill   `json:"prefill"`
	Notes       map[string]string `json:"notes,omitempty"`
	ThemeColor  string            `json:"theme_color,omitempty"`
	ScriptURL   string            `json:"script_url"`
}

// RazorpayResponse is what the checkout handler callback receives.
type RazorpayResponse struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type CheckoutOutcome string

const (
	OutcomeSuccess   CheckoutOutcome = "success"
	OutcomeFailed    CheckoutOutcome = "failed"
	OutcomeDismissed CheckoutOutcome = "dismissed"
	OutcomeApproved  CheckoutOutcome = "approved"
	OutcomeCancelled CheckoutOutcome = "cancelled"
	OutcomeError     CheckoutOutcome = "error"
)

func (o CheckoutOutcome) Valid() bool {
	switch o {
	case OutcomeSuccess, OutcomeFailed, OutcomeDismissed, OutcomeApproved, OutcomeCancelled, OutcomeError:
		return true
	}
	return false
}

// GatewayFailure describes a decline or SDK error reported by a checkout UI.
type GatewayFailure struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Reason      string `json:"reason,omitempty"`
}

type RazorpayCheckoutResult struct {
	Outcome  CheckoutOutcome   `json:"outcome"`
	Response *RazorpayResponse `json:"response,omitempty"`
	Failure  *GatewayFailure   `json:"failure,omitempty"`
}

// PayPalButtonsConfig is what the buttons component needs to render.
type PayPalButtonsConfig struct {
	ClientID    string `json:"clientId"`
	ScriptURL   string `json:"scriptUrl"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type PayPalButtonsResult struct {
	Outcome CheckoutOutcome `json:"outcome"`
	OrderID string          `json:"orderID,omitempty"`
	PayerID string          `json:"payerID,omitempty"`
	Failure *GatewayFailure `json:"failure,omitempty"`
}

type PayPalOrderRequest struct {
	ReferenceID string
	CustomID    string
	Description string
	Amount      int64
	Currency    string
}

type PayPalOrder struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type PayPalCapture struct {
	OrderID    string `json:"orderId"`
	CaptureID  string `json:"captureId"`
	Status     string `json:"status"`
	PayerID    string `json:"payerId"`
	PayerEmail string `json:"payerEmail"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
}

// CheckoutPresentation is what the browser polls for while an attempt waits
// on user interaction.
type CheckoutPresentation struct {
	AttemptID string                   `json:"attemptId"`
	Gateway   Gateway                  `json:"gateway"`
	Razorpay  *RazorpayCheckoutOptions `json:"razorpay,omitempty"`
	PayPal    *PayPalButtonsConfig     `json:"paypal,omitempty"`
}

// CheckoutEvent is a callback fired by the browser-side checkout.
type CheckoutEvent struct {
	Outcome  CheckoutOutcome   `json:"outcome"`
	Razorpay *RazorpayResponse `json:"razorpay,omitempty"`
	OrderID  string            `json:"orderID,omitempty"`
	PayerID  string            `json:"payerID,omitempty"`
	Failure  *GatewayFailure   `json:"failure,omitempty"`
}

type AttemptStatus string

const (
	AttemptPending  AttemptStatus = "pending"
	AttemptFinished AttemptStatus = "finished"
)

// PaymentAttempt is the HTTP-visible state of one processPayment call.
type PaymentAttempt struct {
	ID           string                `json:"attemptId"`
	Gateway      Gateway               `json:"gateway"`
	Status       AttemptStatus         `json:"status"`
	Presentation *CheckoutPresentation `json:"presentation,omitempty"`
	Result       *PaymentResult        `json:"result,omitempty"`
}
