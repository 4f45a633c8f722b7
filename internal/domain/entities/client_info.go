package entities

import "context"

// Locale is the best-effort region of the caller.
type Locale struct {
	Country  string `json:"country"`
	Language string `json:"language"`
	Detected bool   `json:"detected"`
}

func (l Locale) IsIndia() bool {
	return l.Detected && l.Country == "IN"
}

// ClientInfo describes the browser behind a request.
type ClientInfo struct {
	UserAgent   string `json:"userAgent"`
	CurrentPath string `json:"currentPath"`
	Locale      Locale `json:"locale"`
	IDToken     string `json:"-"`
}

type ctxKey int

const (
	scopeKey ctxKey = iota
	clientInfoKey
	attemptKey
)

// WithScope binds the checkout scope that partitions persisted state.
func WithScope(ctx context.Context, scope string) context.Context {
	return context.WithValue(ctx, scopeKey, scope)
}

func ScopeFromContext(ctx context.Context) string {
	s, _ := ctx.Value(scopeKey).(string)
	return s
}

func WithClientInfo(ctx context.Context, info ClientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey, info)
}

func ClientInfoFromContext(ctx context.Context) ClientInfo {
	info, _ := ctx.Value(clientInfoKey).(ClientInfo)
	return info
}

func WithAttemptID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, attemptKey, id)
}

func AttemptIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(attemptKey).(string)
	return id
}
