package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"
	"assessment_checkout/internal/usecase/validation"

	log "github.com/sirupsen/logrus"
)

const DefaultOrderRetries = 3

var ErrPaymentAPINotConfigured = errors.New("payment api not configured")

// IOrderUseCase turns (gateway, sessionID, testID) into a backend order.
//
// Steps, in order: auth check, session clock, tier, snapshot, local validation,
// backend call. Nothing invalid is ever sent to the backend.
type IOrderUseCase interface {
	CreatePaymentOrder(ctx context.Context, gateway entities.Gateway, sessionID, testID string) (entities.OrderTicket, error)
	RetryOrderCreation(ctx context.Context, gateway entities.Gateway, sessionID, testID string, maxRetries int) (entities.OrderTicket, error)
}

type OrderUseCase struct {
	auth    IAuthGateUseCase
	session ISessionUseCase
	pricing IPricingUseCase
	api     interfaces.IPaymentAPI
	prices  entities.PricingCatalog
	clock   interfaces.IClock
	sleep   func(ctx context.Context, d time.Duration) error
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(auth IAuthGateUseCase, session ISessionUseCase, pricing IPricingUseCase, api interfaces.IPaymentAPI, prices entities.PricingCatalog, clock interfaces.IClock) *OrderUseCase {
	return &OrderUseCase{
		auth:    auth,
		session: session,
		pricing: pricing,
		api:     api,
		prices:  prices,
		clock:   clock,
		sleep:   sleepContext,
	}
}

func (u *OrderUseCase) CreatePaymentOrder(ctx context.Context, gateway entities.Gateway, sessionID, testID string) (entities.OrderTicket, error) {
	sessionID = validation.SanitizeString(sessionID)
	testID = validation.SanitizeString(testID)
	fields := log.Fields{"gateway": gateway, "session_id": sessionID, "test_id": testID}
	log.WithFields(fields).Info("[order][usecase] create start")

	input := validation.Join(
		validation.ValidateSessionID(sessionID),
		validation.ValidateTestID(testID),
		validation.ValidateGateway(gateway),
	)
	if err := input.Err(); err != nil {
		log.WithFields(fields).WithError(err).Warn("[order][usecase] invalid input")
		return entities.OrderTicket{}, err
	}
	if u.api == nil {
		return entities.OrderTicket{}, entities.NewPaymentError(entities.ErrorKindOrderCreationFailed, "", ErrPaymentAPINotConfigured)
	}

	info := entities.ClientInfoFromContext(ctx)

	// 1. auth
	check, err := u.auth.CheckAuthAndRedirect(ctx, sessionID, testID, info.CurrentPath)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("[order][usecase] auth check failed")
		return entities.OrderTicket{}, entities.NewPaymentError(entities.ErrorKindAuthenticationRequired, "", err)
	}
	if check.NeedsAuth || check.User == nil {
		log.WithFields(fields).Info("[order][usecase] aborted: authentication required")
		return entities.OrderTicket{}, entities.NewPaymentError(entities.ErrorKindAuthenticationRequired, "", nil)
	}
	user := *check.User
	if err := u.auth.ValidateUserForPayment(&user); err != nil {
		log.WithFields(fields).WithError(err).Warn("[order][usecase] user rejected for payment")
		return entities.OrderTicket{}, err
	}

	// 2. clock
	start, err := u.session.GetOrCreateSessionStartTime(ctx)
	if err != nil {
		return entities.OrderTicket{}, err
	}

	// 3. tier
	table, region := u.prices.TableFor(gateway, info.Locale)
	tier, err := u.pricing.CalculatePricing(start, table)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("[order][usecase] pricing failed")
		return entities.OrderTicket{}, err
	}

	// 4. snapshot
	sd, err := u.session.GetSessionData(ctx)
	if err != nil {
		return entities.OrderTicket{}, err
	}
	if sd == nil || sd.OriginalSessionID != sessionID || sd.TestID != testID {
		created, err := u.session.CreateSessionData(ctx, sessionID, testID, false)
		if err != nil {
			return entities.OrderTicket{}, err
		}
		sd = &created
	}
	if err := u.session.UpdateSessionDataWithPricing(ctx, tier); err != nil {
		return entities.OrderTicket{}, err
	}

	// 5. build + validate
	now := u.clock.Now()
	userAgent := strings.TrimSpace(info.UserAgent)
	if userAgent == "" {
		userAgent = "unknown"
	}
	req := entities.CreateOrderRequest{
		SessionID:        sessionID,
		TestID:           testID,
		UserID:           user.ID,
		Email:            user.Email,
		PricingTier:      tier.Name,
		Amount:           tier.Amount,
		Currency:         tier.Currency,
		Gateway:          gateway,
		SessionStartTime: start,
		Metadata: entities.OrderMetadata{
			UserAgent:              userAgent,
			Timestamp:              now,
			AuthenticationRequired: sd.AuthStartedAt != nil,
			IsIndia:                info.Locale.IsIndia(),
			Location:               region,
			SessionDurationMinutes: int(now.Sub(start) / time.Minute),
		},
	}
	if err := validation.ValidateCreateOrderRequest(req, table).Err(); err != nil {
		log.WithFields(fields).WithError(err).Warn("[order][usecase] request failed local validation")
		return entities.OrderTicket{}, err
	}
	fields["tier"] = tier.Name
	fields["amount"] = tier.Amount
	fields["currency"] = tier.Currency

	// 6. backend
	log.WithFields(fields).Info("[order][usecase] calling backend create-order")
	resp, err := u.api.CreateOrder(ctx, req)
	if err != nil {
		var pe *entities.PaymentError
		if !errors.As(err, &pe) {
			err = entities.NewPaymentError(entities.ErrorKindOrderCreationFailed, "", err)
		}
		log.WithFields(fields).WithError(err).Error("[order][usecase] backend create-order failed")
		return entities.OrderTicket{}, err
	}
	if strings.TrimSpace(resp.PaymentSessionID) == "" || (gateway == entities.GatewayRazorpay && strings.TrimSpace(resp.GatewayOrderID) == "") {
		log.WithFields(fields).Error("[order][usecase] backend response missing order ids")
		return entities.OrderTicket{}, entities.NewPaymentError(entities.ErrorKindOrderCreationFailed, "backend response missing order ids", nil)
	}
	if resp.Amount == 0 {
		resp.Amount = req.Amount
	}
	if resp.Currency == "" {
		resp.Currency = req.Currency
	}

	// The context has served its purpose once an order exists.
	if err := u.auth.CleanupAuthFlow(ctx); err != nil {
		log.WithFields(fields).WithError(err).Warn("[order][usecase] payment context cleanup failed")
	}

	log.WithFields(fields).WithField("payment_session_id", resp.PaymentSessionID).Info("[order][usecase] create success")
	return entities.OrderTicket{Request: req, Response: resp, User: user}, nil
}

// RetryOrderCreation retries only NETWORK_ERROR failures, waiting 2^(n-1)
// seconds before attempt n.
func (u *OrderUseCase) RetryOrderCreation(ctx context.Context, gateway entities.Gateway, sessionID, testID string, maxRetries int) (entities.OrderTicket, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultOrderRetries
	}
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			delay := time.Duration(1<<(attempt-1)) * time.Second
			log.WithFields(log.Fields{"attempt": attempt, "max": maxRetries, "delay": delay}).Info("[order][usecase] retrying order creation")
			if err := u.sleep(ctx, delay); err != nil {
				return entities.OrderTicket{}, entities.NewPaymentError(entities.ErrorKindNetwork, "", err)
			}
		}

		ticket, err := u.CreatePaymentOrder(ctx, gateway, sessionID, testID)
		if err == nil {
			return ticket, nil
		}
		lastErr = err
		if !entities.KindOf(err).Retryable() {
			return entities.OrderTicket{}, err
		}
		log.WithFields(log.Fields{"attempt": attempt, "max": maxRetries}).WithError(err).Warn("[order][usecase] order creation attempt failed")
	}
	return entities.OrderTicket{}, lastErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
