package entities

// User is the authenticated identity as reported by the identity provider.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// PaymentUserInfo is the subset of User forwarded to gateways for prefill.
type PaymentUserInfo struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type AuthCheckResult struct {
	NeedsAuth  bool   `json:"needsAuth"`
	User       *User  `json:"user,omitempty"`
	Redirected bool   `json:"redirected"`
	ReturnURL  string `json:"returnUrl,omitempty"`
}

type PostAuthResult struct {
	Resumed     bool               `json:"resumed"`
	Reason      string             `json:"reason,omitempty"`
	User        *User              `json:"user,omitempty"`
	Context     *PaymentContext    `json:"context,omitempty"`
	SessionData *StoredSessionData `json:"sessionData,omitempty"`
}
