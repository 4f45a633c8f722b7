package entities

import "encoding/json"

// PaymentData is the gateway-tagged receipt of a successful payment.
type PaymentData interface {
	Gateway() Gateway
	paymentData()
}

type RazorpayPaymentData struct {
	OrderID          string `json:"razorpay_order_id"`
	PaymentID        string `json:"razorpay_payment_id"`
	Signature        string `json:"razorpay_signature"`
	PaymentSessionID string `json:"paymentSessionId"`
}

func (RazorpayPaymentData) Gateway() Gateway { return GatewayRazorpay }
func (RazorpayPaymentData) paymentData()     {}

type PayPalPaymentData struct {
	OrderID          string `json:"orderID"`
	CaptureID        string `json:"captureID"`
	PayerID          string `json:"payerID,omitempty"`
	PayerEmail       string `json:"payerEmail,omitempty"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	Status           string `json:"status"`
	PaymentSessionID string `json:"paymentSessionId"`
}

func (PayPalPaymentData) Gateway() Gateway { return GatewayPayPal }
func (PayPalPaymentData) paymentData()     {}

// PaymentResult is the single terminal outcome of a payment attempt.
type PaymentResult struct {
	Success bool
	Data    PaymentData
	Error   string
	Kind    ErrorKind
	// Cancelled marks a checkout the user closed.
	Cancelled bool
	// CompletionError is set when the gateway took the money but the backend
	// did not acknowledge the completion call.
	CompletionError string
}

func SuccessResult(data PaymentData) PaymentResult {
	return PaymentResult{Success: true, Data: data}
}

func FailureResult(err error) PaymentResult {
	kind := KindOf(err)
	return PaymentResult{Success: false, Error: kind.UserMessage(), Kind: kind}
}

func CancelledResult() PaymentResult {
	return PaymentResult{Success: false, Error: CancelledMessage, Kind: ErrorKindPaymentFailed, Cancelled: true}
}

func (r PaymentResult) MarshalJSON() ([]byte, error) {
	out := map[string]any{"success": r.Success}
	if r.Success {
		if r.Data != nil {
			raw, err := json.Marshal(r.Data)
			if err != nil {
				return nil, err
			}
			var fields map[string]any
			if err := json.Unmarshal(raw, &fields); err != nil {
				return nil, err
			}
			fields["gateway"] = r.Data.Gateway()
			out["paymentData"] = fields
		}
		if r.CompletionError != "" {
			out["completionError"] = r.CompletionError
		}
		return json.Marshal(out)
	}
	out["error"] = r.Error
	out["errorCode"] = r.Kind
	if r.Cancelled {
		out["cancelled"] = true
	}
	return json.Marshal(out)
}
