package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrUserMissingEmail      = entities.NewPaymentError(entities.ErrorKindInvalidData, "user email is required for payment", nil)
	ErrUserMissingID         = entities.NewPaymentError(entities.ErrorKindInvalidData, "user id is required for payment", nil)
	ErrIdentityNotConfigured = errors.New("identity provider not configured")
)

// IAuthGateUseCase makes sure a signed-in user exists before an order is
// created. It captures state for the sign-in round-trip but never redirects
// by itself.
type IAuthGateUseCase interface {
	CurrentUser(ctx context.Context) (*entities.User, error)
	CheckAuthAndRedirect(ctx context.Context, sessionID, testID, currentPath string) (entities.AuthCheckResult, error)
	HandlePostAuthReturn(ctx context.Context) (entities.PostAuthResult, error)
	ValidateUserForPayment(user *entities.User) error
	UserInfoForPayment(user entities.User) entities.PaymentUserInfo
	AuthenticationDuration(ctx context.Context) (time.Duration, error)
	CleanupAuthFlow(ctx context.Context) error
}

type AuthGateUseCase struct {
	identity interfaces.IIdentityProvider
	session  ISessionUseCase
	clock    interfaces.IClock
}

var _ IAuthGateUseCase = (*AuthGateUseCase)(nil)

func NewAuthGateUseCase(identity interfaces.IIdentityProvider, session ISessionUseCase, clock interfaces.IClock) *AuthGateUseCase {
	return &AuthGateUseCase{identity: identity, session: session, clock: clock}
}

func (u *AuthGateUseCase) CurrentUser(ctx context.Context) (*entities.User, error) {
	if u.identity == nil {
		return nil, ErrIdentityNotConfigured
	}
	return u.identity.CurrentUser(ctx)
}

// CheckAuthAndRedirect returns the user when one is signed in. Otherwise it
// persists a PaymentContext and a session flagged authenticationRequired, and
// reports NeedsAuth so the caller can send the user to sign in.
func (u *AuthGateUseCase) CheckAuthAndRedirect(ctx context.Context, sessionID, testID, currentPath string) (entities.AuthCheckResult, error) {
	user, err := u.CurrentUser(ctx)
	if err != nil {
		log.WithError(err).Error("[auth][usecase] identity lookup failed")
		return entities.AuthCheckResult{}, err
	}
	if user != nil {
		return entities.AuthCheckResult{NeedsAuth: false, User: user}, nil
	}

	if strings.TrimSpace(currentPath) == "" {
		currentPath = entities.ClientInfoFromContext(ctx).CurrentPath
	}
	log.WithFields(log.Fields{"session_id": sessionID, "test_id": testID, "return_url": currentPath}).Info("[auth][usecase] sign-in required; capturing payment context")

	if _, err := u.session.CreatePaymentContext(ctx, sessionID, testID, currentPath); err != nil {
		return entities.AuthCheckResult{}, err
	}
	if _, err := u.session.CreateSessionData(ctx, sessionID, testID, true); err != nil {
		return entities.AuthCheckResult{}, err
	}
	return entities.AuthCheckResult{NeedsAuth: true, Redirected: false, ReturnURL: currentPath}, nil
}

// HandlePostAuthReturn resumes the flow captured before sign-in. The context
// and the pricing clock survive; only the auth flag is cleared.
func (u *AuthGateUseCase) HandlePostAuthReturn(ctx context.Context) (entities.PostAuthResult, error) {
	user, err := u.CurrentUser(ctx)
	if err != nil {
		return entities.PostAuthResult{}, err
	}
	if user == nil {
		return entities.PostAuthResult{Resumed: false, Reason: "user is not signed in"}, nil
	}
	if err := u.ValidateUserForPayment(user); err != nil {
		return entities.PostAuthResult{Resumed: false, Reason: err.Error(), User: user}, nil
	}

	res, err := u.session.ResumePaymentFlow(ctx)
	if err != nil {
		return entities.PostAuthResult{}, err
	}
	if !res.CanResume {
		log.WithFields(log.Fields{"user_id": user.ID, "reason": res.Reason}).Warn("[auth][usecase] post-auth resume refused")
		return entities.PostAuthResult{Resumed: false, Reason: res.Reason, User: user}, nil
	}

	if err := u.session.MarkAuthenticationCompleted(ctx); err != nil {
		return entities.PostAuthResult{}, err
	}
	sd, err := u.session.GetSessionData(ctx)
	if err != nil {
		return entities.PostAuthResult{}, err
	}
	log.WithFields(log.Fields{"user_id": user.ID, "session_id": res.Context.OriginalSessionID, "test_id": res.Context.TestID}).Info("[auth][usecase] payment flow resumed after sign-in")
	return entities.PostAuthResult{Resumed: true, User: user, Context: res.Context, SessionData: sd}, nil
}

func (u *AuthGateUseCase) ValidateUserForPayment(user *entities.User) error {
	if user == nil {
		return entities.ErrAuthenticationRequired
	}
	if strings.TrimSpace(user.ID) == "" {
		return ErrUserMissingID
	}
	if strings.TrimSpace(user.Email) == "" {
		return ErrUserMissingEmail
	}
	return nil
}

func (u *AuthGateUseCase) UserInfoForPayment(user entities.User) entities.PaymentUserInfo {
	name := strings.TrimSpace(user.DisplayName)
	if name == "" {
		if at := strings.Index(user.Email, "@"); at > 0 {
			name = user.Email[:at]
		}
	}
	return entities.PaymentUserInfo{UserID: user.ID, Email: user.Email, Name: name}
}

// AuthenticationDuration is the time spent between the sign-in prompt and its
// completion, or until now while still pending. Zero when no sign-in happened.
func (u *AuthGateUseCase) AuthenticationDuration(ctx context.Context) (time.Duration, error) {
	sd, err := u.session.GetSessionData(ctx)
	if err != nil || sd == nil || sd.AuthStartedAt == nil {
		return 0, err
	}
	end := u.clock.Now()
	if sd.AuthCompletedAt != nil {
		end = *sd.AuthCompletedAt
	}
	if end.Before(*sd.AuthStartedAt) {
		return 0, nil
	}
	return end.Sub(*sd.AuthStartedAt), nil
}

func (u *AuthGateUseCase) CleanupAuthFlow(ctx context.Context) error {
	return u.session.ClearPaymentContext(ctx)
}
