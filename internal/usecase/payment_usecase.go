package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"
	"assessment_checkout/internal/usecase/validation"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var ErrUnsupportedGateway = entities.NewPaymentError(entities.ErrorKindInvalidData, "unsupported payment gateway", nil)

// Prices shown when a gateway cannot be priced.
var (
	FallbackRazorpayPricing = entities.GatewayPricing{
		Gateway:         entities.GatewayRazorpay,
		Region:          entities.RegionIndia,
		Tier:            entities.PricingTierEarly,
		Amount:          95000,
		OriginalAmount:  120000,
		Currency:        "INR",
		DisplayAmount:   "₹950",
		DisplayOriginal: "₹1200",
		Fallback:        true,
	}
	FallbackPayPalPricing = entities.GatewayPricing{
		Gateway:         entities.GatewayPayPal,
		Region:          entities.RegionInternational,
		Tier:            entities.PricingTierEarly,
		Amount:          2000,
		OriginalAmount:  2500,
		Currency:        "USD",
		DisplayAmount:   "$20",
		DisplayOriginal: "$25",
		Fallback:        true,
	}
)

var gatewayFeatures = map[entities.Gateway][]string{
	entities.GatewayRazorpay: {"Instant refunds", "Multiple payment options", "Indian bank support", "UPI payments"},
	entities.GatewayPayPal:   {"Global acceptance", "Buyer protection", "No card details stored", "PayPal balance"},
}

// IPaymentUseCase is the single entry point the UI talks to.
type IPaymentUseCase interface {
	ProcessPayment(ctx context.Context, gateway entities.Gateway, sessionID, testID string) entities.PaymentResult
	GetBothGatewayPricing(ctx context.Context) entities.UnifiedPricing
	GetRecommendedGateway(ctx context.Context) entities.GatewayRecommendation
	GetGatewayDisplayInfo(ctx context.Context, gateway entities.Gateway) (entities.GatewayDisplayInfo, error)
	ValidatePaymentParameters(gateway entities.Gateway, sessionID, testID string) validation.Result
	CheckGatewayAvailability(ctx context.Context) map[entities.Gateway]entities.GatewayAvailability
	GetPaymentSummary(ctx context.Context, gateway entities.Gateway) (entities.PaymentSummary, error)
}

type PaymentUseCase struct {
	adapters  map[entities.Gateway]interfaces.IGatewayAdapter
	auth      IAuthGateUseCase
	session   ISessionUseCase
	pricing   IPricingUseCase
	analytics interfaces.IAnalyticsSink
	inflight  singleflight.Group
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(adapters []interfaces.IGatewayAdapter, auth IAuthGateUseCase, session ISessionUseCase, pricing IPricingUseCase, analytics interfaces.IAnalyticsSink) *PaymentUseCase {
	byGateway := make(map[entities.Gateway]interfaces.IGatewayAdapter, len(adapters))
	for _, a := range adapters {
		byGateway[a.Gateway()] = a
	}
	return &PaymentUseCase{
		adapters:  byGateway,
		auth:      auth,
		session:   session,
		pricing:   pricing,
		analytics: analytics,
	}
}

// ProcessPayment runs one attempt per (scope, session, test, gateway). A call
// that arrives while an identical attempt is running shares its result.
func (u *PaymentUseCase) ProcessPayment(ctx context.Context, gateway entities.Gateway, sessionID, testID string) entities.PaymentResult {
	sessionID = validation.SanitizeString(sessionID)
	testID = validation.SanitizeString(testID)
	fields := log.Fields{"gateway": gateway, "session_id": sessionID, "test_id": testID}

	if err := u.ValidatePaymentParameters(gateway, sessionID, testID).Err(); err != nil {
		log.WithFields(fields).WithError(err).Warn("[payment][usecase] invalid payment parameters")
		return entities.FailureResult(err)
	}
	adapter, ok := u.adapters[gateway]
	if !ok {
		log.WithFields(fields).Error("[payment][usecase] no adapter registered")
		return entities.FailureResult(ErrUnsupportedGateway)
	}

	key := fmt.Sprintf("%s|%s|%s|%s", entities.ScopeFromContext(ctx), sessionID, testID, gateway)
	v, _, shared := u.inflight.Do(key, func() (any, error) {
		log.WithFields(fields).Info("[payment][usecase] processing payment")
		u.track(ctx, entities.AnalyticsEvent{Name: entities.EventPaymentInitiated, Gateway: gateway})
		res := adapter.InitiatePayment(ctx, sessionID, testID)
		u.trackResult(ctx, gateway, res)
		return res, nil
	})
	if shared {
		log.WithFields(fields).Info("[payment][usecase] joined an in-flight attempt")
	}
	return v.(entities.PaymentResult)
}

// GetBothGatewayPricing prices both gateways in parallel. A gateway that
// cannot be priced gets its fallback price instead of failing the call.
func (u *PaymentUseCase) GetBothGatewayPricing(ctx context.Context) entities.UnifiedPricing {
	locale := entities.ClientInfoFromContext(ctx).Locale
	out := entities.UnifiedPricing{
		Razorpay: FallbackRazorpayPricing,
		PayPal:   FallbackPayPalPricing,
		IsIndia:  locale.IsIndia(),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for gateway, adapter := range u.adapters {
		gateway, adapter := gateway, adapter
		g.Go(func() error {
			p, err := adapter.Pricing(gctx, locale)
			if err != nil {
				log.WithField("gateway", gateway).WithError(err).Warn("[payment][usecase] pricing failed; using fallback")
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			switch gateway {
			case entities.GatewayRazorpay:
				out.Razorpay = p
			case entities.GatewayPayPal:
				out.PayPal = p
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (u *PaymentUseCase) GetRecommendedGateway(ctx context.Context) entities.GatewayRecommendation {
	locale := entities.ClientInfoFromContext(ctx).Locale
	switch {
	case !locale.Detected:
		return entities.GatewayRecommendation{
			Primary:   entities.GatewayRazorpay,
			Secondary: entities.GatewayPayPal,
			Reason:    "Razorpay supports multiple payment methods",
			Fallback:  true,
		}
	case locale.IsIndia():
		return entities.GatewayRecommendation{
			Primary:   entities.GatewayRazorpay,
			Secondary: entities.GatewayPayPal,
			Reason:    "Razorpay is optimized for Indian users with support for UPI, cards, and net banking",
		}
	default:
		return entities.GatewayRecommendation{
			Primary:   entities.GatewayPayPal,
			Secondary: entities.GatewayRazorpay,
			Reason:    "PayPal is widely accepted internationally with local currency support",
		}
	}
}

func (u *PaymentUseCase) GetGatewayDisplayInfo(ctx context.Context, gateway entities.Gateway) (entities.GatewayDisplayInfo, error) {
	adapter, ok := u.adapters[gateway]
	if !ok {
		return entities.GatewayDisplayInfo{}, ErrUnsupportedGateway
	}
	info := adapter.DisplayInfo()
	info.Available = adapter.Available(ctx)
	return info, nil
}

func (u *PaymentUseCase) ValidatePaymentParameters(gateway entities.Gateway, sessionID, testID string) validation.Result {
	return validation.Join(
		validation.ValidateSessionID(sessionID),
		validation.ValidateTestID(testID),
		validation.ValidateGateway(gateway),
	)
}

// CheckGatewayAvailability probes every registered gateway concurrently.
func (u *PaymentUseCase) CheckGatewayAvailability(ctx context.Context) map[entities.Gateway]entities.GatewayAvailability {
	out := make(map[entities.Gateway]entities.GatewayAvailability, len(u.adapters))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for gateway, adapter := range u.adapters {
		gateway, adapter := gateway, adapter
		wg.Add(1)
		go func() {
			defer wg.Done()
			a := entities.GatewayAvailability{Available: adapter.Available(ctx)}
			if !a.Available {
				a.Reason = entities.ErrorKindScriptLoadFailed.UserMessage()
			}
			mu.Lock()
			out[gateway] = a
			mu.Unlock()
		}()
	}
	wg.Wait()
	return out
}

func (u *PaymentUseCase) GetPaymentSummary(ctx context.Context, gateway entities.Gateway) (entities.PaymentSummary, error) {
	adapter, ok := u.adapters[gateway]
	if !ok {
		return entities.PaymentSummary{}, ErrUnsupportedGateway
	}
	pricing := u.GetBothGatewayPricing(ctx)
	summary := entities.PaymentSummary{
		Gateway:  gateway,
		Info:     adapter.DisplayInfo(),
		Pricing:  pricing.Razorpay,
		Features: gatewayFeatures[gateway],
	}
	if gateway == entities.GatewayPayPal {
		summary.Pricing = pricing.PayPal
	}

	if start, err := u.session.GetOrCreateSessionStartTime(ctx); err == nil && summary.Pricing.Tier == entities.PricingTierEarly && !summary.Pricing.Fallback {
		remaining := u.pricing.EarlyBirdTimeRemaining(start)
		summary.TimeRemaining = &remaining
	}

	user, err := u.auth.CurrentUser(ctx)
	if err != nil && !errors.Is(err, ErrIdentityNotConfigured) {
		log.WithError(err).Warn("[payment][usecase] identity lookup failed for summary")
	}
	summary.RequiresAuth = user == nil
	return summary, nil
}

func (u *PaymentUseCase) trackResult(ctx context.Context, gateway entities.Gateway, res entities.PaymentResult) {
	ev := entities.AnalyticsEvent{Gateway: gateway}
	switch {
	case res.Success:
		ev.Name = entities.EventPaymentSucceeded
		if res.CompletionError != "" {
			ev.Reason = "completion_failed"
		}
	case res.Cancelled:
		ev.Name = entities.EventPaymentCancelled
	case res.Kind == entities.ErrorKindAuthenticationRequired:
		ev.Name = entities.EventAuthRequired
	default:
		ev.Name = entities.EventPaymentFailed
		ev.Reason = string(res.Kind)
	}
	u.track(ctx, ev)
}

func (u *PaymentUseCase) track(ctx context.Context, ev entities.AnalyticsEvent) {
	if u.analytics == nil {
		return
	}
	u.analytics.Track(ctx, ev)
}
