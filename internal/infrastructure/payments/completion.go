package payments

import (
	"context"
	"time"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase"
	"assessment_checkout/internal/usecase/interfaces"
	"assessment_checkout/internal/usecase/validation"

	log "github.com/sirupsen/logrus"
)

// Deps are the collaborators both gateway adapters share.
type Deps struct {
	Orders        usecase.IOrderUseCase
	Auth          usecase.IAuthGateUseCase
	Session       usecase.ISessionUseCase
	PricingEngine usecase.IPricingUseCase
	API           interfaces.IPaymentAPI
	Catalog       entities.PricingCatalog
	Clock         interfaces.IClock
	Analytics     interfaces.IAnalyticsSink
	// MaxRetries bounds order creation attempts; zero means the default.
	MaxRetries int
}

type gatewayBase struct {
	Deps
	gateway entities.Gateway
}

func (b *gatewayBase) retries() int {
	if b.MaxRetries > 0 {
		return b.MaxRetries
	}
	return usecase.DefaultOrderRetries
}

func (b *gatewayBase) track(ctx context.Context, ev entities.AnalyticsEvent) {
	if b.Analytics == nil {
		return
	}
	ev.Gateway = b.gateway
	b.Analytics.Track(ctx, ev)
}

// Pricing quotes the gateway on the scope's session clock.
func (b *gatewayBase) Pricing(ctx context.Context, locale entities.Locale) (entities.GatewayPricing, error) {
	start, err := b.Session.GetOrCreateSessionStartTime(ctx)
	if err != nil {
		return entities.GatewayPricing{}, err
	}
	table, region := b.Catalog.TableFor(b.gateway, locale)
	return b.PricingEngine.Quote(start, b.gateway, table, region)
}

// completion describes a payment the gateway has accepted.
type completion struct {
	ticket        entities.OrderTicket
	orderID       string
	transactionID string
	proof         entities.CompletionProof
	paymentStart  time.Time
}

// finish reports the payment to the backend. On success the scope's state is
// cleared unless it now belongs to another session/test; on failure it is kept
// for reconciliation and the result carries the completion error.
func (b *gatewayBase) finish(ctx context.Context, c completion, result entities.PaymentResult) entities.PaymentResult {
	fields := log.Fields{
		"gateway":            b.gateway,
		"order_id":           c.orderID,
		"payment_session_id": c.ticket.Response.PaymentSessionID,
	}
	ownsState := b.ownsSessionData(ctx, c.ticket)
	req := b.completionRequest(ctx, c)
	if err := validation.ValidatePaymentCompletionRequest(req).Err(); err != nil {
		log.WithFields(fields).WithError(err).Error("[payments][completion] completion request rejected before sending")
		return entities.FailureResult(err)
	}
	if err := b.API.CompletePayment(ctx, req); err != nil {
		log.WithFields(fields).WithError(err).Error("[payments][completion] backend completion failed after gateway success")
		result.CompletionError = entities.KindOf(err).UserMessage()
		return result
	}
	if ownsState {
		if err := b.Session.ClearAllData(ctx); err != nil {
			log.WithFields(fields).WithError(err).Warn("[payments][completion] clearing session state failed")
		}
	}
	log.WithFields(fields).Info("[payments][completion] payment completed")
	return result
}

// ownsSessionData reports whether the stored session data is absent or still
// describes the ticket's session and test.
func (b *gatewayBase) ownsSessionData(ctx context.Context, ticket entities.OrderTicket) bool {
	sd, err := b.Session.GetSessionData(ctx)
	if err != nil {
		log.WithError(err).Warn("[payments][completion] session data unreadable")
		return true
	}
	if sd == nil || sd.OriginalSessionID == "" {
		return true
	}
	if sd.OriginalSessionID != ticket.Request.SessionID || sd.TestID != ticket.Request.TestID {
		log.WithFields(log.Fields{
			"order_session_id":  ticket.Request.SessionID,
			"order_test_id":     ticket.Request.TestID,
			"stored_session_id": sd.OriginalSessionID,
			"stored_test_id":    sd.TestID,
		}).Warn("[payments][completion] stored session changed during checkout, keeping it")
		return false
	}
	return true
}

// completionRequest builds the backend report from the order ticket alone.
func (b *gatewayBase) completionRequest(ctx context.Context, c completion) entities.PaymentCompletionRequest {
	ticket := c.ticket

	sessionMinutes, err := b.Session.SessionDuration(ctx)
	if err != nil {
		sessionMinutes = ticket.Request.Metadata.SessionDurationMinutes
	}
	authDuration, err := b.Auth.AuthenticationDuration(ctx)
	if err != nil {
		authDuration = 0
	}

	ua := entities.ClientInfoFromContext(ctx).UserAgent
	if ua == "" {
		ua = ticket.Request.Metadata.UserAgent
	}

	return entities.PaymentCompletionRequest{
		UserID:            ticket.User.ID,
		OriginalSessionID: ticket.Request.SessionID,
		TestID:            ticket.Request.TestID,
		PaymentSessionID:  ticket.Response.PaymentSessionID,
		Gateway:           b.gateway,
		OrderID:           c.orderID,
		TransactionID:     c.transactionID,
		Proof:             c.proof,
		Amount:            ticket.Response.Amount,
		Currency:          ticket.Response.Currency,
		Status:            entities.CompletionStatusSuccess,
		Metadata: entities.CompletionMetadata{
			PricingTier:          ticket.Request.PricingTier,
			SessionStartTime:     ticket.Request.SessionStartTime,
			PaymentStartTime:     c.paymentStart,
			PaymentCompletedTime: b.Clock.Now(),
			AuthenticationFlow:   ticket.Request.Metadata.AuthenticationRequired,
			UserAgent:            ua,
			PaymentGateway:       b.gateway,
			TimingData: entities.TimingData{
				SessionToPaymentDuration: int64(sessionMinutes),
				AuthenticationDuration:   int64(authDuration / time.Minute),
			},
		},
	}
}
