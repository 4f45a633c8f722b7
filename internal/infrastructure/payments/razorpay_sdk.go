package payments

import (
	"context"
	"errors"
	"fmt"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
	log "github.com/sirupsen/logrus"
)

const DefaultRazorpayScriptURL = "https://checkout.razorpay.com/v1/checkout.js"

var (
	ErrMissingRazorpayKey  = errors.New("missing RAZORPAY_KEY_ID")
	ErrRazorpayOrderAmount = errors.New("razorpay order amount does not match the checkout")
)

type RazorpayConfig struct {
	KeyID       string
	KeySecret   string
	ScriptURL   string
	CompanyName string
	ThemeColor  string
}

// RazorpayLoader makes sure checkout.js is reachable before any checkout is
// opened and hands out a single RazorpaySDK.
type RazorpayLoader struct {
	cfg       RazorpayConfig
	http      *resty.Client
	presenter interfaces.ICheckoutPresenter
	loader    *sdkLoader[interfaces.IRazorpaySDK]
}

var _ interfaces.IRazorpayLoader = (*RazorpayLoader)(nil)

func NewRazorpayLoader(cfg RazorpayConfig, presenter interfaces.ICheckoutPresenter) *RazorpayLoader {
	if cfg.ScriptURL == "" {
		cfg.ScriptURL = DefaultRazorpayScriptURL
	}
	l := &RazorpayLoader{cfg: cfg, http: resty.New(), presenter: presenter}
	l.loader = newSDKLoader(entities.GatewayRazorpay, RazorpayLoadTimeout, l.load)
	return l
}

func (l *RazorpayLoader) Load(ctx context.Context) (interfaces.IRazorpaySDK, error) {
	return l.loader.Get(ctx)
}

func (l *RazorpayLoader) load(ctx context.Context) (interfaces.IRazorpaySDK, error) {
	if l.cfg.KeyID == "" {
		return nil, ErrMissingRazorpayKey
	}
	if err := probeScript(ctx, l.http, l.cfg.ScriptURL); err != nil {
		return nil, err
	}
	sdk := &RazorpaySDK{cfg: l.cfg, presenter: l.presenter}
	if l.cfg.KeySecret != "" {
		sdk.client = razorpay.NewClient(l.cfg.KeyID, l.cfg.KeySecret)
	}
	return sdk, nil
}

// probeScript checks that a gateway script can be downloaded.
func probeScript(ctx context.Context, client *resty.Client, url string) error {
	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("script %s returned %d", url, resp.StatusCode())
	}
	return nil
}

// RazorpaySDK opens checkout.js through the checkout presenter.
type RazorpaySDK struct {
	cfg       RazorpayConfig
	client    *razorpay.Client
	presenter interfaces.ICheckoutPresenter
}

var _ interfaces.IRazorpaySDK = (*RazorpaySDK)(nil)

func (s *RazorpaySDK) Open(ctx context.Context, opts entities.RazorpayCheckoutOptions) (entities.RazorpayCheckoutResult, error) {
	if opts.Key == "" {
		opts.Key = s.cfg.KeyID
	}
	if opts.ScriptURL == "" {
		opts.ScriptURL = s.cfg.ScriptURL
	}
	if err := s.checkOrder(opts); err != nil {
		return entities.RazorpayCheckoutResult{}, err
	}

	ev, err := s.presenter.Present(ctx, entities.CheckoutPresentation{
		Gateway:  entities.GatewayRazorpay,
		Razorpay: &opts,
	}, nil)
	if err != nil {
		return entities.RazorpayCheckoutResult{}, err
	}

	switch ev.Outcome {
	case entities.OutcomeSuccess:
		if ev.Razorpay == nil || ev.Razorpay.PaymentID == "" || ev.Razorpay.Signature == "" {
			return entities.RazorpayCheckoutResult{
				Outcome: entities.OutcomeFailed,
				Failure: &entities.GatewayFailure{Code: "BAD_REQUEST_ERROR", Description: "missing payment response"},
			}, nil
		}
		return entities.RazorpayCheckoutResult{Outcome: entities.OutcomeSuccess, Response: ev.Razorpay}, nil
	case entities.OutcomeDismissed, entities.OutcomeCancelled:
		return entities.RazorpayCheckoutResult{Outcome: entities.OutcomeDismissed}, nil
	default:
		failure := ev.Failure
		if failure == nil {
			failure = &entities.GatewayFailure{Code: "UNKNOWN_ERROR"}
		}
		return entities.RazorpayCheckoutResult{Outcome: entities.OutcomeFailed, Failure: failure}, nil
	}
}

// checkOrder compares the gateway's view of the order with what is about to
// be charged. It is skipped without a key secret.
func (s *RazorpaySDK) checkOrder(opts entities.RazorpayCheckoutOptions) error {
	if s.client == nil {
		return nil
	}
	order, err := s.client.Order.Fetch(opts.OrderID, nil, nil)
	if err != nil {
		log.WithField("order_id", opts.OrderID).WithError(err).Warn("[payments][razorpay] order fetch failed")
		return entities.NewPaymentError(entities.ErrorKindNetwork, "", err)
	}
	amount, ok := order["amount"].(float64)
	if ok && int64(amount) != opts.Amount {
		log.WithFields(log.Fields{"order_id": opts.OrderID, "order_amount": int64(amount), "checkout_amount": opts.Amount}).
			Error("[payments][razorpay] order amount mismatch")
		return entities.NewPaymentError(entities.ErrorKindInvalidAmount, "", ErrRazorpayOrderAmount)
	}
	return nil
}

func (s *RazorpaySDK) VerifySignature(resp entities.RazorpayResponse) (bool, bool) {
	if s.cfg.KeySecret == "" {
		return false, false
	}
	valid := utils.VerifyPaymentSignature(map[string]interface{}{
		"razorpay_order_id":   resp.OrderID,
		"razorpay_payment_id": resp.PaymentID,
	}, resp.Signature, s.cfg.KeySecret)
	return true, valid
}
