package payments

import (
	"context"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultCompanyName         = "Assessment Reports"
	DefaultRazorpayDescription = "Payment for Test"
	DefaultRazorpayThemeColor  = "#3399cc"
)

type RazorpayAdapterOptions struct {
	CompanyName string
	Description string
	ThemeColor  string
	// VerifyWithBackend asks the backend to check the signature when no key
	// secret is available locally.
	VerifyWithBackend bool
}

type RazorpayAdapter struct {
	gatewayBase
	loader interfaces.IRazorpayLoader
	opts   RazorpayAdapterOptions
}

var _ interfaces.IGatewayAdapter = (*RazorpayAdapter)(nil)

func NewRazorpayAdapter(loader interfaces.IRazorpayLoader, deps Deps, opts RazorpayAdapterOptions) *RazorpayAdapter {
	if opts.CompanyName == "" {
		opts.CompanyName = DefaultCompanyName
	}
	if opts.Description == "" {
		opts.Description = DefaultRazorpayDescription
	}
	if opts.ThemeColor == "" {
		opts.ThemeColor = DefaultRazorpayThemeColor
	}
	return &RazorpayAdapter{
		gatewayBase: gatewayBase{Deps: deps, gateway: entities.GatewayRazorpay},
		loader:      loader,
		opts:        opts,
	}
}

func (a *RazorpayAdapter) Gateway() entities.Gateway { return entities.GatewayRazorpay }

func (a *RazorpayAdapter) DisplayInfo() entities.GatewayDisplayInfo {
	return entities.GatewayDisplayInfo{
		Gateway:     entities.GatewayRazorpay,
		Name:        "Razorpay",
		Description: "Pay with UPI, cards, net banking or wallets",
		Currency:    "INR",
		Methods:     []string{"upi", "card", "netbanking", "wallet"},
		Available:   true,
	}
}

func (a *RazorpayAdapter) Available(ctx context.Context) bool {
	_, err := a.loader.Load(ctx)
	return err == nil
}

// InitiatePayment loads checkout.js, creates the backend order, opens the
// checkout and completes the payment with the ids the order came back with.
func (a *RazorpayAdapter) InitiatePayment(ctx context.Context, sessionID, testID string) entities.PaymentResult {
	fields := log.Fields{"session_id": sessionID, "test_id": testID}

	sdk, err := a.loader.Load(ctx)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("[payments][razorpay] sdk unavailable")
		return entities.FailureResult(err)
	}

	ticket, err := a.Orders.RetryOrderCreation(ctx, entities.GatewayRazorpay, sessionID, testID, a.retries())
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("[payments][razorpay] order creation failed")
		return entities.FailureResult(err)
	}
	fields["order_id"] = ticket.Response.GatewayOrderID

	user := a.Auth.UserInfoForPayment(ticket.User)
	opts := entities.RazorpayCheckoutOptions{
		Amount:      ticket.Response.Amount,
		Currency:    ticket.Response.Currency,
		Name:        a.opts.CompanyName,
		Description: a.opts.Description,
		OrderID:     ticket.Response.GatewayOrderID,
		Prefill:     entities.RazorpayPrefill{Name: user.Name, Email: user.Email},
		Notes: map[string]string{
			"sessionId":   ticket.Request.SessionID,
			"testId":      ticket.Request.TestID,
			"pricingTier": string(ticket.Request.PricingTier),
		},
		ThemeColor: a.opts.ThemeColor,
	}

	paymentStart := a.Clock.Now()
	a.track(ctx, entities.AnalyticsEvent{
		Name:     entities.EventCheckoutOpened,
		Tier:     ticket.Request.PricingTier,
		Amount:   ticket.Response.Amount,
		Currency: ticket.Response.Currency,
	})
	res, err := sdk.Open(ctx, opts)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("[payments][razorpay] checkout failed")
		return entities.FailureResult(err)
	}

	switch res.Outcome {
	case entities.OutcomeDismissed:
		log.WithFields(fields).Info("[payments][razorpay] checkout dismissed")
		return entities.CancelledResult()
	case entities.OutcomeSuccess:
		if res.Response == nil {
			return entities.FailureResult(razorpayFailure(nil))
		}
	default:
		err := razorpayFailure(res.Failure)
		log.WithFields(fields).WithError(err).Warn("[payments][razorpay] payment failed")
		return entities.FailureResult(err)
	}

	resp := *res.Response
	if resp.OrderID != "" && resp.OrderID != ticket.Response.GatewayOrderID {
		log.WithFields(fields).WithField("reported_order_id", resp.OrderID).Error("[payments][razorpay] order id mismatch")
		return entities.FailureResult(entities.NewPaymentError(entities.ErrorKindPaymentFailed, "", ErrOrderMismatch))
	}
	resp.OrderID = ticket.Response.GatewayOrderID
	if err := a.verify(ctx, sdk, resp); err != nil {
		log.WithFields(fields).WithError(err).Error("[payments][razorpay] signature rejected")
		return entities.FailureResult(err)
	}

	result := entities.SuccessResult(entities.RazorpayPaymentData{
		OrderID:          resp.OrderID,
		PaymentID:        resp.PaymentID,
		Signature:        resp.Signature,
		PaymentSessionID: ticket.Response.PaymentSessionID,
	})
	return a.finish(ctx, completion{
		ticket:        ticket,
		orderID:       resp.OrderID,
		transactionID: ticket.Response.TransactionID,
		proof:         entities.RazorpayProof{OrderID: resp.OrderID, PaymentID: resp.PaymentID, Signature: resp.Signature},
		paymentStart:  paymentStart,
	}, result)
}

// verify checks the signature locally when the key secret is known, else
// through the backend when enabled. A backend that cannot be reached does not
// block completion; the completion report still carries the signature for the
// backend to check.
func (a *RazorpayAdapter) verify(ctx context.Context, sdk interfaces.IRazorpaySDK, resp entities.RazorpayResponse) error {
	if checked, valid := sdk.VerifySignature(resp); checked {
		if !valid {
			return entities.NewPaymentError(entities.ErrorKindPaymentFailed, "", ErrSignatureInvalid)
		}
		return nil
	}
	if !a.opts.VerifyWithBackend || a.API == nil {
		return nil
	}
	out, err := a.API.VerifyPayment(ctx, entities.VerifyPaymentRequest{
		OrderID:   resp.OrderID,
		PaymentID: resp.PaymentID,
		Signature: resp.Signature,
	})
	if err != nil {
		log.WithField("order_id", resp.OrderID).WithError(err).Warn("[payments][razorpay] backend verification unavailable")
		return nil
	}
	if !out.Verified {
		return entities.NewPaymentError(entities.ErrorKindPaymentFailed, out.Message, ErrSignatureInvalid)
	}
	return nil
}
