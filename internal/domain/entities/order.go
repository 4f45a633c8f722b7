package entities

import (
	"encoding/json"
	"time"
)

// OrderMetadata travels with a create-order request.
type OrderMetadata struct {
	UserAgent              string    `json:"userAgent"`
	Timestamp              time.Time `json:"timestamp"`
	AuthenticationRequired bool      `json:"authenticationRequired"`
	IsIndia                bool      `json:"isIndia"`
	Location               string    `json:"location,omitempty"`
	SessionDurationMinutes int       `json:"sessionDuration"`
}

type CreateOrderRequest struct {
	SessionID        string          `json:"sessionId" validate:"required"`
	TestID           string          `json:"testId" validate:"required"`
	UserID           string          `json:"userId" validate:"required"`
	Email            string          `json:"email" validate:"required"`
	PricingTier      PricingTierName `json:"pricingTier" validate:"required"`
	Amount           int64           `json:"amount" validate:"min=100,max=10000000"`
	Currency         string          `json:"currency" validate:"required,len=3"`
	Gateway          Gateway         `json:"gateway" validate:"required"`
	SessionStartTime time.Time       `json:"sessionStartTime"`
	Metadata         OrderMetadata   `json:"metadata"`
}

// CreateOrderResponse ids are owned by the backend and the gateway.
type CreateOrderResponse struct {
	GatewayOrderID   string `json:"razorpayOrderId,omitempty"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	PaymentSessionID string `json:"paymentSessionId"`
	TransactionID    string `json:"transaction_id,omitempty"`
}

// OrderTicket binds a backend order to the request that produced it. Completion
// must only use the ids found here.
type OrderTicket struct {
	Request  CreateOrderRequest
	Response CreateOrderResponse
	User     User
}

// CompletionProof is the gateway-specific evidence of payment.
type CompletionProof interface {
	Gateway() Gateway
	proof()
}

type RazorpayProof struct {
	OrderID   string
	PaymentID string
	Signature string
}

func (RazorpayProof) Gateway() Gateway { return GatewayRazorpay }
func (RazorpayProof) proof()           {}

type PayPalProof struct {
	OrderID   string
	CaptureID string
	PayerID   string
}

func (PayPalProof) Gateway() Gateway { return GatewayPayPal }
func (PayPalProof) proof()           {}

// PayPalNoSignature is sent in place of a signature for PayPal completions.
const PayPalNoSignature = "paypal_no_signature"

type CompletionStatus string

const (
	CompletionStatusSuccess CompletionStatus = "success"
	CompletionStatusFailed  CompletionStatus = "failed"
)

type TimingData struct {
	SessionToPaymentDuration int64 `json:"sessionToPaymentDuration"`
	AuthenticationDuration   int64 `json:"authenticationDuration"`
}

type CompletionMetadata struct {
	PricingTier          PricingTierName `json:"pricingTier"`
	SessionStartTime     time.Time       `json:"sessionStartTime"`
	PaymentStartTime     time.Time       `json:"paymentStartTime"`
	PaymentCompletedTime time.Time       `json:"paymentCompletedTime"`
	AuthenticationFlow   bool            `json:"authenticationFlow"`
	UserAgent            string          `json:"userAgent"`
	PaymentGateway       Gateway         `json:"paymentGateway"`
	TimingData           TimingData      `json:"timingData"`
}

type PaymentCompletionRequest struct {
	UserID            string
	OriginalSessionID string
	TestID            string
	PaymentSessionID  string
	Gateway           Gateway
	OrderID           string
	TransactionID     string
	Proof             CompletionProof
	Amount            int64
	Currency          string
	Status            CompletionStatus
	Metadata          CompletionMetadata
}

type completionPaymentDataWire struct {
	OrderID           string           `json:"order_id"`
	PaymentID         string           `json:"payment_id"`
	RazorpaySignature string           `json:"razorpay_signature"`
	Amount            int64            `json:"amount"`
	Currency          string           `json:"currency"`
	Status            CompletionStatus `json:"status"`
	PayerID           string           `json:"payer_id,omitempty"`
}

type completionWire struct {
	UserID            string                    `json:"userId"`
	OriginalSessionID string                    `json:"originalSessionId"`
	TestID            string                    `json:"testId"`
	PaymentSessionID  string                    `json:"paymentSessionId"`
	Gateway           Gateway                   `json:"gateway"`
	OrderID           string                    `json:"orderid"`
	TransactionID     string                    `json:"transaction_id"`
	PaymentData       completionPaymentDataWire `json:"paymentData"`
	Metadata          CompletionMetadata        `json:"metadata"`
}

// MarshalJSON renders the backend wire shape; the proof decides which fields
// are filled.
func (r PaymentCompletionRequest) MarshalJSON() ([]byte, error) {
	pd := completionPaymentDataWire{
		Amount:   r.Amount,
		Currency: r.Currency,
		Status:   r.Status,
	}
	switch p := r.Proof.(type) {
	case RazorpayProof:
		pd.OrderID = p.OrderID
		pd.PaymentID = p.PaymentID
		pd.RazorpaySignature = p.Signature
	case PayPalProof:
		pd.OrderID = p.OrderID
		pd.PaymentID = p.CaptureID
		pd.RazorpaySignature = PayPalNoSignature
		pd.PayerID = p.PayerID
	}
	return json.Marshal(completionWire{
		UserID:            r.UserID,
		OriginalSessionID: r.OriginalSessionID,
		TestID:            r.TestID,
		PaymentSessionID:  r.PaymentSessionID,
		Gateway:           r.Gateway,
		OrderID:           r.OrderID,
		TransactionID:     r.TransactionID,
		PaymentData:       pd,
		Metadata:          r.Metadata,
	})
}

// VerifyPaymentRequest asks the backend to check a Razorpay signature triple.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type VerifyPaymentResponse struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message,omitempty"`
}
