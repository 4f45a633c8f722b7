package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrSessionDataMissing  = errors.New("session data not found")
	ErrInvalidSessionInput = entities.NewPaymentError(entities.ErrorKindInvalidData, "sessionId and testId are required", nil)
)

const (
	// sessionStateTTL bounds how long abandoned checkout state is kept.
	sessionStateTTL = 24 * time.Hour
	// paymentContextStoreTTL outlives PaymentContextTTL so an expired context is
	// still readable and triggers the hard clear.
	paymentContextStoreTTL = 2 * entities.PaymentContextTTL
	defaultSessionMaxAge   = 120 * time.Minute
)

// ISessionUseCase owns the lifecycle of StoredSessionData and PaymentContext
// inside one checkout scope.
type ISessionUseCase interface {
	GetOrCreateSessionStartTime(ctx context.Context) (time.Time, error)
	ResetSessionStartTime(ctx context.Context) (time.Time, error)
	CreatePaymentContext(ctx context.Context, sessionID, testID, returnURL string) (entities.PaymentContext, error)
	GetPaymentContext(ctx context.Context) (*entities.PaymentContext, error)
	ClearPaymentContext(ctx context.Context) error
	CreateSessionData(ctx context.Context, sessionID, testID string, authenticationRequired bool) (entities.StoredSessionData, error)
	GetSessionData(ctx context.Context) (*entities.StoredSessionData, error)
	UpdateSessionDataWithPricing(ctx context.Context, tier entities.PricingTier) error
	RequiresAuthentication(ctx context.Context) (bool, error)
	MarkAuthenticationCompleted(ctx context.Context) error
	ResumePaymentFlow(ctx context.Context) (entities.ResumeResult, error)
	ValidateSessionContinuity(ctx context.Context, sessionID, testID string) (bool, error)
	SessionDuration(ctx context.Context) (int, error)
	IsSessionExpired(ctx context.Context, maxAge time.Duration) (bool, error)
	PrepareSessionMetadata(ctx context.Context, sessionID, testID string) (entities.SessionMetadata, error)
	PaymentFlowState(ctx context.Context) (entities.PaymentFlowState, error)
	ClearAllData(ctx context.Context) error
}

type SessionUseCase struct {
	store interfaces.IKeyValueStore
	clock interfaces.IClock
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(store interfaces.IKeyValueStore, clock interfaces.IClock) *SessionUseCase {
	return &SessionUseCase{store: store, clock: clock}
}

func (u *SessionUseCase) GetOrCreateSessionStartTime(ctx context.Context) (time.Time, error) {
	var start time.Time
	found, err := u.getJSON(ctx, entities.KeySessionStartTime, &start)
	if err != nil {
		return time.Time{}, err
	}
	if found && !start.IsZero() {
		return start, nil
	}
	start = u.clock.Now()
	if err := u.setJSON(ctx, entities.KeySessionStartTime, start, sessionStateTTL); err != nil {
		return time.Time{}, err
	}
	log.WithField("session_start", start).Info("[session][usecase] session clock started")
	return start, nil
}

// ResetSessionStartTime restarts the pricing clock. Only an explicit reset may
// do this; nothing in the payment flow calls it.
func (u *SessionUseCase) ResetSessionStartTime(ctx context.Context) (time.Time, error) {
	start := u.clock.Now()
	if err := u.setJSON(ctx, entities.KeySessionStartTime, start, sessionStateTTL); err != nil {
		return time.Time{}, err
	}
	log.WithField("session_start", start).Warn("[session][usecase] session clock reset")
	return start, nil
}

func (u *SessionUseCase) CreatePaymentContext(ctx context.Context, sessionID, testID, returnURL string) (entities.PaymentContext, error) {
	sessionID, testID = strings.TrimSpace(sessionID), strings.TrimSpace(testID)
	if sessionID == "" || testID == "" {
		return entities.PaymentContext{}, ErrInvalidSessionInput
	}
	start, err := u.GetOrCreateSessionStartTime(ctx)
	if err != nil {
		return entities.PaymentContext{}, err
	}
	pc := entities.PaymentContext{
		OriginalSessionID: sessionID,
		TestID:            testID,
		SessionStartTime:  start,
		ReturnURL:         returnURL,
		Timestamp:         u.clock.Now(),
	}
	if err := u.setJSON(ctx, entities.KeyPaymentContext, pc, paymentContextStoreTTL); err != nil {
		return entities.PaymentContext{}, err
	}
	log.WithFields(log.Fields{"session_id": sessionID, "test_id": testID, "return_url": returnURL}).Info("[session][usecase] payment context stored")
	return pc, nil
}

// GetPaymentContext returns nil when there is no context. An expired context
// clears every piece of payment state before returning nil.
func (u *SessionUseCase) GetPaymentContext(ctx context.Context) (*entities.PaymentContext, error) {
	pc, err := u.readPaymentContext(ctx)
	if err != nil || pc == nil {
		return nil, err
	}
	if pc.ExpiredAt(u.clock.Now()) {
		log.WithFields(log.Fields{"session_id": pc.OriginalSessionID, "created": pc.Timestamp}).Warn("[session][usecase] payment context expired; clearing")
		if err := u.ClearAllData(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return pc, nil
}

func (u *SessionUseCase) ClearPaymentContext(ctx context.Context) error {
	return u.store.Delete(ctx, entities.KeyPaymentContext)
}

// CreateSessionData is idempotent for the same (sessionID, testID): the
// existing record keeps its snapshot and only the auth flag is refreshed.
func (u *SessionUseCase) CreateSessionData(ctx context.Context, sessionID, testID string, authenticationRequired bool) (entities.StoredSessionData, error) {
	sessionID, testID = strings.TrimSpace(sessionID), strings.TrimSpace(testID)
	if sessionID == "" || testID == "" {
		return entities.StoredSessionData{}, ErrInvalidSessionInput
	}
	start, err := u.GetOrCreateSessionStartTime(ctx)
	if err != nil {
		return entities.StoredSessionData{}, err
	}

	existing, err := u.GetSessionData(ctx)
	if err != nil {
		return entities.StoredSessionData{}, err
	}

	var sd entities.StoredSessionData
	if existing != nil && existing.OriginalSessionID == sessionID && existing.TestID == testID {
		sd = *existing
	} else {
		sd = entities.StoredSessionData{
			SessionStartTime:  start,
			OriginalSessionID: sessionID,
			TestID:            testID,
		}
	}
	sd.AuthenticationRequired = authenticationRequired
	if authenticationRequired && sd.AuthStartedAt == nil {
		now := u.clock.Now()
		sd.AuthStartedAt = &now
	}

	if err := u.setJSON(ctx, entities.KeySessionData, sd, sessionStateTTL); err != nil {
		return entities.StoredSessionData{}, err
	}
	log.WithFields(log.Fields{"session_id": sessionID, "test_id": testID, "auth_required": authenticationRequired}).Info("[session][usecase] session data stored")
	return sd, nil
}

func (u *SessionUseCase) GetSessionData(ctx context.Context) (*entities.StoredSessionData, error) {
	var sd entities.StoredSessionData
	found, err := u.getJSON(ctx, entities.KeySessionData, &sd)
	if err != nil || !found {
		return nil, err
	}
	return &sd, nil
}

func (u *SessionUseCase) UpdateSessionDataWithPricing(ctx context.Context, tier entities.PricingTier) error {
	sd, err := u.GetSessionData(ctx)
	if err != nil {
		return err
	}
	if sd == nil {
		return ErrSessionDataMissing
	}
	snap := entities.PricingSnapshot{
		Tier:       tier.Name,
		Amount:     tier.Amount,
		Currency:   tier.Currency,
		CapturedAt: u.clock.Now(),
	}
	sd.PricingSnapshot = &snap
	if err := u.setJSON(ctx, entities.KeySessionData, sd, sessionStateTTL); err != nil {
		return err
	}
	return u.setJSON(ctx, entities.KeyPricingSnapshot, snap, sessionStateTTL)
}

func (u *SessionUseCase) RequiresAuthentication(ctx context.Context) (bool, error) {
	sd, err := u.GetSessionData(ctx)
	if err != nil || sd == nil {
		return false, err
	}
	return sd.AuthenticationRequired, nil
}

// MarkAuthenticationCompleted clears the auth flag only; ids and the pricing
// clock stay in place for order creation.
func (u *SessionUseCase) MarkAuthenticationCompleted(ctx context.Context) error {
	sd, err := u.GetSessionData(ctx)
	if err != nil {
		return err
	}
	if sd == nil {
		return ErrSessionDataMissing
	}
	now := u.clock.Now()
	sd.AuthenticationRequired = false
	sd.AuthCompletedAt = &now
	return u.setJSON(ctx, entities.KeySessionData, sd, sessionStateTTL)
}

// ResumePaymentFlow fails closed: any missing or stale piece clears the scope.
func (u *SessionUseCase) ResumePaymentFlow(ctx context.Context) (entities.ResumeResult, error) {
	pc, err := u.readPaymentContext(ctx)
	if err != nil {
		return entities.ResumeResult{}, err
	}
	sd, err := u.GetSessionData(ctx)
	if err != nil {
		return entities.ResumeResult{}, err
	}

	reason := ""
	switch {
	case pc == nil:
		reason = "no payment context found"
	case sd == nil:
		reason = "no session data found"
	case pc.ExpiredAt(u.clock.Now()):
		reason = "payment context expired"
	}
	if reason != "" {
		log.WithField("reason", reason).Warn("[session][usecase] cannot resume payment flow")
		if err := u.ClearAllData(ctx); err != nil {
			return entities.ResumeResult{}, err
		}
		return entities.ResumeResult{CanResume: false, Reason: reason}, nil
	}

	log.WithFields(log.Fields{"session_id": pc.OriginalSessionID, "test_id": pc.TestID}).Info("[session][usecase] payment flow resumable")
	return entities.ResumeResult{CanResume: true, Context: pc, SessionData: sd}, nil
}

func (u *SessionUseCase) ValidateSessionContinuity(ctx context.Context, sessionID, testID string) (bool, error) {
	pc, err := u.GetPaymentContext(ctx)
	if err != nil || pc == nil {
		return false, err
	}
	if pc.OriginalSessionID != strings.TrimSpace(sessionID) || pc.TestID != strings.TrimSpace(testID) {
		log.WithFields(log.Fields{
			"stored_session_id": pc.OriginalSessionID, "session_id": sessionID,
			"stored_test_id": pc.TestID, "test_id": testID,
		}).Warn("[session][usecase] session continuity mismatch")
		return false, nil
	}
	return true, nil
}

// SessionDuration is the whole minutes since the session clock started.
func (u *SessionUseCase) SessionDuration(ctx context.Context) (int, error) {
	start, err := u.GetOrCreateSessionStartTime(ctx)
	if err != nil {
		return 0, err
	}
	return int(u.clock.Now().Sub(start) / time.Minute), nil
}

func (u *SessionUseCase) IsSessionExpired(ctx context.Context, maxAge time.Duration) (bool, error) {
	if maxAge <= 0 {
		maxAge = defaultSessionMaxAge
	}
	var start time.Time
	found, err := u.getJSON(ctx, entities.KeySessionStartTime, &start)
	if err != nil || !found {
		return false, err
	}
	return u.clock.Now().Sub(start) > maxAge, nil
}

func (u *SessionUseCase) PrepareSessionMetadata(ctx context.Context, sessionID, testID string) (entities.SessionMetadata, error) {
	start, err := u.GetOrCreateSessionStartTime(ctx)
	if err != nil {
		return entities.SessionMetadata{}, err
	}
	sd, err := u.GetSessionData(ctx)
	if err != nil {
		return entities.SessionMetadata{}, err
	}
	now := u.clock.Now()
	md := entities.SessionMetadata{
		SessionID:              sessionID,
		TestID:                 testID,
		SessionStartTime:       start,
		SessionDurationMinutes: int(now.Sub(start) / time.Minute),
		UserAgent:              entities.ClientInfoFromContext(ctx).UserAgent,
		Timestamp:              now,
	}
	if sd != nil {
		md.AuthenticationRequired = sd.AuthenticationRequired
		if sd.PricingSnapshot != nil {
			md.PricingTier = string(sd.PricingSnapshot.Tier)
		}
	}
	return md, nil
}

func (u *SessionUseCase) PaymentFlowState(ctx context.Context) (entities.PaymentFlowState, error) {
	pc, err := u.readPaymentContext(ctx)
	if err != nil {
		return entities.PaymentFlowState{}, err
	}
	sd, err := u.GetSessionData(ctx)
	if err != nil {
		return entities.PaymentFlowState{}, err
	}
	st := entities.PaymentFlowState{
		HasPaymentContext: pc != nil,
		HasSessionData:    sd != nil,
		Context:           pc,
		SessionData:       sd,
	}
	var start time.Time
	if found, err := u.getJSON(ctx, entities.KeySessionStartTime, &start); err != nil {
		return entities.PaymentFlowState{}, err
	} else if found {
		st.SessionStartTime = &start
	}
	if sd != nil {
		st.AuthenticationRequired = sd.AuthenticationRequired
	}
	return st, nil
}

// ClearAllData removes payment state but keeps the pricing clock.
func (u *SessionUseCase) ClearAllData(ctx context.Context) error {
	if err := u.store.Delete(ctx, entities.KeyPaymentContext, entities.KeySessionData, entities.KeyPricingSnapshot); err != nil {
		log.WithError(err).Error("[session][usecase] clear payment state failed")
		return err
	}
	log.Info("[session][usecase] payment state cleared")
	return nil
}

func (u *SessionUseCase) readPaymentContext(ctx context.Context) (*entities.PaymentContext, error) {
	var pc entities.PaymentContext
	found, err := u.getJSON(ctx, entities.KeyPaymentContext, &pc)
	if err != nil || !found {
		return nil, err
	}
	return &pc, nil
}

// getJSON treats an undecodable value as absent and drops it.
func (u *SessionUseCase) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, found, err := u.store.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.WithError(err).WithField("key", key).Warn("[session][usecase] corrupt value dropped")
		_ = u.store.Delete(ctx, key)
		return false, nil
	}
	return true, nil
}

func (u *SessionUseCase) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return u.store.Set(ctx, key, raw, ttl)
}
