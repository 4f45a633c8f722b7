package response

import (
	"time"

	"assessment_checkout/internal/domain/entities"
)

type AttemptResponse struct {
	AttemptID    string                         `json:"attemptId"`
	Gateway      string                         `json:"gateway"`
	Status       string                         `json:"status"`
	Presentation *entities.CheckoutPresentation `json:"presentation,omitempty"`
	Result       *entities.PaymentResult        `json:"result,omitempty"`
}

func FromAttempt(a entities.PaymentAttempt) AttemptResponse {
	return AttemptResponse{
		AttemptID:    a.ID,
		Gateway:      string(a.Gateway),
		Status:       string(a.Status),
		Presentation: a.Presentation,
		Result:       a.Result,
	}
}

type SessionResponse struct {
	SessionStartTime       time.Time            `json:"sessionStartTime"`
	SessionDurationMinutes int                  `json:"sessionDurationMinutes"`
	Pricing                entities.PricingTier `json:"pricing"`
}

type OrderResponse struct {
	OrderID string `json:"orderID"`
}

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

func fromUser(u *entities.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
}

type AuthCheckResponse struct {
	NeedsAuth bool          `json:"needsAuth"`
	ReturnURL string        `json:"returnUrl,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
}

func FromAuthCheck(r entities.AuthCheckResult) AuthCheckResponse {
	return AuthCheckResponse{NeedsAuth: r.NeedsAuth, ReturnURL: r.ReturnURL, User: fromUser(r.User)}
}

type PostAuthResponse struct {
	Resumed   bool          `json:"resumed"`
	Reason    string        `json:"reason,omitempty"`
	SessionID string        `json:"sessionId,omitempty"`
	TestID    string        `json:"testId,omitempty"`
	ReturnURL string        `json:"returnUrl,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
}

func FromPostAuth(r entities.PostAuthResult) PostAuthResponse {
	out := PostAuthResponse{Resumed: r.Resumed, Reason: r.Reason, User: fromUser(r.User)}
	if r.Context != nil {
		out.SessionID = r.Context.OriginalSessionID
		out.TestID = r.Context.TestID
		out.ReturnURL = r.Context.ReturnURL
	}
	return out
}
