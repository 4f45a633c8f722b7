package entities

import "time"

// Storage keys inside a checkout scope.
const (
	KeyPaymentContext   = "payment_context"
	KeySessionData      = "session_data"
	KeyPricingSnapshot  = "pricing_snapshot"
	KeySessionStartTime = "session_start_time"
)

// PaymentContextTTL bounds how long a flow interrupted by sign-in can be resumed.
const PaymentContextTTL = time.Hour

// StoredSessionData lives for one checkout attempt, possibly across a sign-in
// redirect. SessionStartTime is the pricing clock and never changes once set.
type StoredSessionData struct {
	SessionStartTime       time.Time        `json:"sessionStartTime"`
	OriginalSessionID      string           `json:"originalSessionId"`
	TestID                 string           `json:"testId"`
	AuthenticationRequired bool             `json:"authenticationRequired"`
	PricingSnapshot        *PricingSnapshot `json:"pricingSnapshot,omitempty"`
	AuthStartedAt          *time.Time       `json:"authStartedAt,omitempty"`
	AuthCompletedAt        *time.Time       `json:"authCompletedAt,omitempty"`
}

// PaymentContext is written only when sign-in interrupts a payment and is removed
// as soon as it is consumed or expires.
type PaymentContext struct {
	OriginalSessionID string    `json:"originalSessionId"`
	TestID            string    `json:"testId"`
	SessionStartTime  time.Time `json:"sessionStartTime"`
	ReturnURL         string    `json:"returnUrl"`
	Timestamp         time.Time `json:"timestamp"`
}

func (c PaymentContext) ExpiredAt(now time.Time) bool {
	return now.Sub(c.Timestamp) > PaymentContextTTL
}

// ResumeResult is the outcome of resuming a flow after sign-in.
type ResumeResult struct {
	CanResume   bool               `json:"canResume"`
	Reason      string             `json:"reason,omitempty"`
	Context     *PaymentContext    `json:"context,omitempty"`
	SessionData *StoredSessionData `json:"sessionData,omitempty"`
}

// SessionMetadata is attached to order requests and analytics.
type SessionMetadata struct {
	SessionID              string    `json:"sessionId"`
	TestID                 string    `json:"testId"`
	SessionStartTime       time.Time `json:"sessionStartTime"`
	SessionDurationMinutes int       `json:"sessionDurationMinutes"`
	AuthenticationRequired bool      `json:"authenticationRequired"`
	PricingTier            string    `json:"pricingTier,omitempty"`
	UserAgent              string    `json:"userAgent"`
	Timestamp              time.Time `json:"timestamp"`
}

// PaymentFlowState is a read-only view of everything persisted for a scope.
type PaymentFlowState struct {
	HasPaymentContext      bool               `json:"hasPaymentContext"`
	HasSessionData         bool               `json:"hasSessionData"`
	AuthenticationRequired bool               `json:"authenticationRequired"`
	SessionStartTime       *time.Time         `json:"sessionStartTime,omitempty"`
	Context                *PaymentContext    `json:"context,omitempty"`
	SessionData            *StoredSessionData `json:"sessionData,omitempty"`
}
