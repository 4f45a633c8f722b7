package payments

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const (
	PayPalSandboxAPIBase = "https://api-m.sandbox.paypal.com"
	PayPalLiveAPIBase    = "https://api-m.paypal.com"
	PayPalSDKScriptURL   = "https://www.paypal.com/sdk/js"

	paypalTokenPath  = "/v1/oauth2/token"
	paypalOrdersPath = "/v2/checkout/orders"

	// tokens are renewed this long before PayPal expires them
	paypalTokenSkew = 60 * time.Second
)

var (
	ErrMissingPayPalCredentials = errors.New("missing PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET")
	ErrEmptyPayPalToken         = errors.New("access token not found in PayPal response")
)

type PayPalConfig struct {
	ClientID     string
	ClientSecret string
	// Env is "live" or anything else for sandbox.
	Env         string
	APIBase     string
	ScriptURL   string
	BrandName   string
	CompanyName string
	Currency    string
}

func (c PayPalConfig) apiBase() string {
	if c.APIBase != "" {
		return strings.TrimRight(c.APIBase, "/")
	}
	if strings.EqualFold(c.Env, "live") || strings.EqualFold(c.Env, "production") {
		return PayPalLiveAPIBase
	}
	return PayPalSandboxAPIBase
}

// SDKURL is the buttons script the browser loads.
func (c PayPalConfig) SDKURL(currency string) string {
	base := c.ScriptURL
	if base == "" {
		base = PayPalSDKScriptURL
	}
	q := url.Values{}
	q.Set("client-id", c.ClientID)
	q.Set("currency", currency)
	q.Set("intent", "capture")
	q.Set("components", "buttons")
	q.Set("enable-funding", "paypal,card")
	return base + "?" + q.Encode()
}

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// PayPalAPIError is an error body returned by the PayPal REST API.
type PayPalAPIError struct {
	Status  int    `json:"-"`
	Name    string `json:"name"`
	Message string `json:"message"`
	DebugID string `json:"debug_id"`
	Details []struct {
		Issue       string `json:"issue"`
		Description string `json:"description"`
	} `json:"details,omitempty"`
}

func (e *PayPalAPIError) Error() string {
	return fmt.Sprintf("paypal %d %s: %s (debug_id=%s)", e.Status, e.Issue(), e.Message, e.DebugID)
}

// Issue is the most specific error code PayPal reported.
func (e *PayPalAPIError) Issue() string {
	if len(e.Details) > 0 && e.Details[0].Issue != "" {
		return e.Details[0].Issue
	}
	return e.Name
}

// PayPalLoader verifies the client credentials once and hands out a single
// PayPalSDK.
type PayPalLoader struct {
	cfg       PayPalConfig
	presenter interfaces.ICheckoutPresenter
	loader    *sdkLoader[interfaces.IPayPalSDK]
}

var _ interfaces.IPayPalLoader = (*PayPalLoader)(nil)

func NewPayPalLoader(cfg PayPalConfig, presenter interfaces.ICheckoutPresenter) *PayPalLoader {
	l := &PayPalLoader{cfg: cfg, presenter: presenter}
	l.loader = newSDKLoader(entities.GatewayPayPal, PayPalLoadTimeout, l.load)
	return l
}

func (l *PayPalLoader) Load(ctx context.Context) (interfaces.IPayPalSDK, error) {
	return l.loader.Get(ctx)
}

func (l *PayPalLoader) load(ctx context.Context) (interfaces.IPayPalSDK, error) {
	if l.cfg.ClientID == "" || l.cfg.ClientSecret == "" {
		return nil, ErrMissingPayPalCredentials
	}
	sdk := NewPayPalSDK(l.cfg, l.presenter)
	if _, err := sdk.accessToken(ctx); err != nil {
		return nil, err
	}
	return sdk, nil
}

// PayPalSDK covers the parts of the PayPal JS SDK the checkout needs: the
// buttons (through the presenter) and orders create and capture (REST v2).
type PayPalSDK struct {
	cfg       PayPalConfig
	http      *resty.Client
	presenter interfaces.ICheckoutPresenter
	now       func() time.Time

	tokenMu   sync.Mutex
	token     string
	expiresAt time.Time
}

var _ interfaces.IPayPalSDK = (*PayPalSDK)(nil)

func NewPayPalSDK(cfg PayPalConfig, presenter interfaces.ICheckoutPresenter) *PayPalSDK {
	return &PayPalSDK{
		cfg:       cfg,
		http:      resty.New().SetBaseURL(cfg.apiBase()).SetTimeout(30 * time.Second),
		presenter: presenter,
		now:       time.Now,
	}
}

func (s *PayPalSDK) accessToken(ctx context.Context) (string, error) {
	s.tokenMu.Lock()
	defer s.tokenMu.Unlock()
	if s.token != "" && s.now().Before(s.expiresAt) {
		return s.token, nil
	}

	var out paypalTokenResponse
	apiErr := &PayPalAPIError{}
	resp, err := s.http.R().
		SetContext(ctx).
		SetBasicAuth(s.cfg.ClientID, s.cfg.ClientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&out).
		SetError(apiErr).
		Post(paypalTokenPath)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		log.WithField("status", resp.StatusCode()).Error("[payments][paypal] token request rejected")
		return "", apiErr
	}
	if out.AccessToken == "" {
		return "", ErrEmptyPayPalToken
	}
	s.token = out.AccessToken
	s.expiresAt = s.now().Add(time.Duration(out.ExpiresIn)*time.Second - paypalTokenSkew)
	log.WithField("expires_at", s.expiresAt).Info("[payments][paypal] access token cached")
	return s.token, nil
}

func (s *PayPalSDK) RenderButtons(ctx context.Context, cfg entities.PayPalButtonsConfig, createOrder interfaces.CreateOrderFunc) (entities.PayPalButtonsResult, error) {
	cfg.ClientID = s.cfg.ClientID
	cfg.ScriptURL = s.cfg.SDKURL(cfg.Currency)

	ev, err := s.presenter.Present(ctx, entities.CheckoutPresentation{
		Gateway: entities.GatewayPayPal,
		PayPal:  &cfg,
	}, createOrder)
	if err != nil {
		return entities.PayPalButtonsResult{}, err
	}

	switch ev.Outcome {
	case entities.OutcomeApproved, entities.OutcomeSuccess:
		if ev.OrderID == "" {
			return entities.PayPalButtonsResult{
				Outcome: entities.OutcomeError,
				Failure: &entities.GatewayFailure{Code: "ORDER_NOT_APPROVED", Description: "approval without an order id"},
			}, nil
		}
		return entities.PayPalButtonsResult{Outcome: entities.OutcomeApproved, OrderID: ev.OrderID, PayerID: ev.PayerID}, nil
	case entities.OutcomeCancelled, entities.OutcomeDismissed:
		return entities.PayPalButtonsResult{Outcome: entities.OutcomeCancelled, OrderID: ev.OrderID}, nil
	default:
		failure := ev.Failure
		if failure == nil {
			failure = &entities.GatewayFailure{Code: "PAYPAL_ERROR"}
		}
		return entities.PayPalButtonsResult{Outcome: entities.OutcomeError, OrderID: ev.OrderID, Failure: failure}, nil
	}
}

type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type paypalPurchaseUnit struct {
	ReferenceID    string       `json:"reference_id,omitempty"`
	CustomID       string       `json:"custom_id,omitempty"`
	Description    string       `json:"description,omitempty"`
	SoftDescriptor string       `json:"soft_descriptor,omitempty"`
	Amount         paypalAmount `json:"amount"`
}

type paypalApplicationContext struct {
	BrandName          string `json:"brand_name,omitempty"`
	ShippingPreference string `json:"shipping_preference"`
	UserAction         string `json:"user_action"`
}

type paypalCreateOrder struct {
	Intent             string                   `json:"intent"`
	PurchaseUnits      []paypalPurchaseUnit     `json:"purchase_units"`
	ApplicationContext paypalApplicationContext `json:"application_context"`
}

type paypalCaptureResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Payer  struct {
		EmailAddress string `json:"email_address"`
		PayerID      string `json:"payer_id"`
	} `json:"payer"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string       `json:"id"`
				Status string       `json:"status"`
				Amount paypalAmount `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

func (s *PayPalSDK) CreateOrder(ctx context.Context, req entities.PayPalOrderRequest) (entities.PayPalOrder, error) {
	body := paypalCreateOrder{
		Intent: "CAPTURE",
		PurchaseUnits: []paypalPurchaseUnit{{
			ReferenceID:    req.ReferenceID,
			CustomID:       req.CustomID,
			Description:    req.Description,
			SoftDescriptor: s.cfg.CompanyName,
			Amount:         paypalAmount{CurrencyCode: req.Currency, Value: MinorToDecimal(req.Amount)},
		}},
		ApplicationContext: paypalApplicationContext{
			BrandName:          s.cfg.BrandName,
			ShippingPreference: "NO_SHIPPING",
			UserAction:         "PAY_NOW",
		},
	}
	var out entities.PayPalOrder
	if err := s.do(ctx, paypalOrdersPath, body, &out); err != nil {
		return entities.PayPalOrder{}, err
	}
	log.WithFields(log.Fields{"paypal_order_id": out.ID, "status": out.Status}).Info("[payments][paypal] order created")
	return out, nil
}

func (s *PayPalSDK) CaptureOrder(ctx context.Context, orderID string) (entities.PayPalCapture, error) {
	var out paypalCaptureResponse
	if err := s.do(ctx, paypalOrdersPath+"/"+url.PathEscape(orderID)+"/capture", nil, &out); err != nil {
		return entities.PayPalCapture{}, err
	}
	capture := entities.PayPalCapture{
		OrderID:    out.ID,
		Status:     out.Status,
		PayerID:    out.Payer.PayerID,
		PayerEmail: out.Payer.EmailAddress,
	}
	if len(out.PurchaseUnits) > 0 && len(out.PurchaseUnits[0].Payments.Captures) > 0 {
		c := out.PurchaseUnits[0].Payments.Captures[0]
		capture.CaptureID = c.ID
		capture.Currency = c.Amount.CurrencyCode
		amount, err := DecimalToMinor(c.Amount.Value)
		if err != nil {
			log.WithField("value", c.Amount.Value).WithError(err).Warn("[payments][paypal] unparsable capture amount")
		}
		capture.Amount = amount
	}
	log.WithFields(log.Fields{"paypal_order_id": capture.OrderID, "capture_id": capture.CaptureID, "status": capture.Status}).
		Info("[payments][paypal] order captured")
	return capture, nil
}

func (s *PayPalSDK) do(ctx context.Context, path string, body, out any) error {
	token, err := s.accessToken(ctx)
	if err != nil {
		return err
	}
	apiErr := &PayPalAPIError{}
	r := s.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetResult(out).
		SetError(apiErr)
	if body != nil {
		r.SetBody(body)
	}
	resp, err := r.Post(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		log.WithFields(log.Fields{"path": path, "status": resp.StatusCode(), "issue": apiErr.Issue(), "debug_id": apiErr.DebugID}).
			Warn("[payments][paypal] request rejected")
		return apiErr
	}
	return nil
}

// MinorToDecimal renders cents as the decimal string PayPal expects.
func MinorToDecimal(minor int64) string {
	return decimal.NewFromInt(minor).Shift(-2).StringFixed(2)
}

func DecimalToMinor(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, err
	}
	return d.Shift(2).Round(0).IntPart(), nil
}
