package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"assessment_checkout/internal/adapter/persistence/store"
	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/infrastructure/clock"
	"assessment_checkout/internal/usecase"
	"assessment_checkout/internal/usecase/interfaces"
	mock_interfaces "assessment_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

var testCatalog = entities.PricingCatalog{
	Razorpay:            entities.PriceTable{Currency: "INR", EarlyAmount: 99900, RegularAmount: 149900},
	PayPalIndia:         entities.PriceTable{Currency: "USD", EarlyAmount: 1200, RegularAmount: 1500},
	PayPalInternational: entities.PriceTable{Currency: "USD", EarlyAmount: 2000, RegularAmount: 2500},
}

// stubOrders hands back a fixed ticket, standing in for the backend order flow.
type stubOrders struct {
	ticket entities.OrderTicket
	err    error
	calls  int
}

func (s *stubOrders) CreatePaymentOrder(ctx context.Context, gateway entities.Gateway, sessionID, testID string) (entities.OrderTicket, error) {
	s.calls++
	return s.ticket, s.err
}

func (s *stubOrders) RetryOrderCreation(ctx context.Context, gateway entities.Gateway, sessionID, testID string, maxRetries int) (entities.OrderTicket, error) {
	return s.CreatePaymentOrder(ctx, gateway, sessionID, testID)
}

var _ usecase.IOrderUseCase = (*stubOrders)(nil)

type adapterFixture struct {
	ctx       context.Context
	clock     *clock.Manual
	session   *usecase.SessionUseCase
	orders    *stubOrders
	api       *mock_interfaces.MockIPaymentAPI
	analytics *mock_interfaces.MockIAnalyticsSink
	deps      Deps
}

func newAdapterFixture(t *testing.T, ticket entities.OrderTicket) *adapterFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	c := clock.NewManual(t0)
	session := usecase.NewSessionUseCase(store.NewMemoryStore(c), c)
	identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
	api := mock_interfaces.NewMockIPaymentAPI(ctrl)
	analytics := mock_interfaces.NewMockIAnalyticsSink(ctrl)
	analytics.EXPECT().Track(gomock.Any(), gomock.Any()).AnyTimes()

	f := &adapterFixture{
		clock:     c,
		session:   session,
		orders:    &stubOrders{ticket: ticket},
		api:       api,
		analytics: analytics,
	}
	f.deps = Deps{
		Orders:        f.orders,
		Auth:          usecase.NewAuthGateUseCase(identity, session, c),
		Session:       session,
		PricingEngine: usecase.NewPricingUseCase(c, 30*time.Minute),
		API:           api,
		Catalog:       testCatalog,
		Clock:         c,
		Analytics:     analytics,
	}
	ctx := entities.WithScope(context.Background(), "scope-"+t.Name())
	f.ctx = entities.WithClientInfo(ctx, entities.ClientInfo{
		UserAgent: "Mozilla/5.0",
		Locale:    entities.Locale{Country: "IN", Detected: true},
	})

	if _, err := session.GetOrCreateSessionStartTime(f.ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := session.CreateSessionData(f.ctx, "s1", "t1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Advance(10 * time.Minute)
	return f
}

func (f *adapterFixture) sessionKept(t *testing.T) bool {
	t.Helper()
	sd, err := f.session.GetSessionData(f.ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sd != nil
}

func razorpayTicket() entities.OrderTicket {
	return entities.OrderTicket{
		Request: entities.CreateOrderRequest{
			SessionID:        "s1",
			TestID:           "t1",
			UserID:           "u1",
			Email:            "user@example.com",
			PricingTier:      entities.PricingTierEarly,
			Amount:           99900,
			Currency:         "INR",
			Gateway:          entities.GatewayRazorpay,
			SessionStartTime: t0,
		},
		Response: entities.CreateOrderResponse{
			GatewayOrderID:   "order_1",
			Amount:           99900,
			Currency:         "INR",
			PaymentSessionID: "ps_1",
			TransactionID:    "txn_1",
		},
		User: entities.User{ID: "u1", Email: "user@example.com"},
	}
}

func paypalTicket() entities.OrderTicket {
	t := razorpayTicket()
	t.Request.Gateway = entities.GatewayPayPal
	t.Request.Amount = 1200
	t.Request.Currency = "USD"
	t.Response = entities.CreateOrderResponse{Amount: 1200, Currency: "USD", PaymentSessionID: "ps_2", TransactionID: "txn_backend"}
	return t
}

func newRazorpay(t *testing.T, f *adapterFixture, opts RazorpayAdapterOptions) (*RazorpayAdapter, *mock_interfaces.MockIRazorpaySDK) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mock_interfaces.NewMockIRazorpayLoader(ctrl)
	sdk := mock_interfaces.NewMockIRazorpaySDK(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(sdk, nil).AnyTimes()
	return NewRazorpayAdapter(loader, f.deps, opts), sdk
}

func TestRazorpayAdapter_InitiatePayment(t *testing.T) {
	t.Run("completes with the ids from order creation", func(t *testing.T) {
		f := newAdapterFixture(t, razorpayTicket())
		adapter, sdk := newRazorpay(t, f, RazorpayAdapterOptions{})

		sdk.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, opts entities.RazorpayCheckoutOptions) (entities.RazorpayCheckoutResult, error) {
				if opts.OrderID != "order_1" || opts.Amount != 99900 || opts.Currency != "INR" {
					t.Errorf("unexpected options %+v", opts)
				}
				if opts.Prefill.Email != "user@example.com" || opts.Prefill.Name != "user" {
					t.Errorf("unexpected prefill %+v", opts.Prefill)
				}
				if opts.Description != DefaultRazorpayDescription || opts.Notes["pricingTier"] != "early" {
					t.Errorf("unexpected description or notes %+v", opts)
				}
				return entities.RazorpayCheckoutResult{
					Outcome:  entities.OutcomeSuccess,
					Response: &entities.RazorpayResponse{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig_1"},
				}, nil
			})
		sdk.EXPECT().VerifySignature(gomock.Any()).Return(true, true)

		var sent entities.PaymentCompletionRequest
		f.api.EXPECT().CompletePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.PaymentCompletionRequest) error {
				sent = req
				return nil
			}).Times(1)

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if !res.Success || res.CompletionError != "" {
			t.Fatalf("unexpected result %+v", res)
		}
		data, ok := res.Data.(entities.RazorpayPaymentData)
		if !ok || data.PaymentID != "pay_1" || data.PaymentSessionID != "ps_1" {
			t.Fatalf("unexpected payment data %+v", res.Data)
		}
		if sent.PaymentSessionID != "ps_1" || sent.OrderID != "order_1" || sent.TransactionID != "txn_1" {
			t.Fatalf("completion must use the created order ids, got %+v", sent)
		}
		proof, ok := sent.Proof.(entities.RazorpayProof)
		if !ok || proof.Signature != "sig_1" {
			t.Fatalf("unexpected proof %+v", sent.Proof)
		}
		if sent.OriginalSessionID != "s1" || sent.Metadata.TimingData.SessionToPaymentDuration != 10 {
			t.Fatalf("unexpected metadata %+v", sent.Metadata)
		}
		if f.sessionKept(t) {
			t.Fatalf("session data must be cleared after completion")
		}
	})

	t.Run("dismissed checkout is cancelled without completion", func(t *testing.T) {
		f := newAdapterFixture(t, razorpayTicket())
		adapter, sdk := newRazorpay(t, f, RazorpayAdapterOptions{})
		sdk.EXPECT().Open(gomock.Any(), gomock.Any()).Return(entities.RazorpayCheckoutResult{Outcome: entities.OutcomeDismissed}, nil)

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if res.Success || !res.Cancelled || res.Error != entities.CancelledMessage {
			t.Fatalf("unexpected result %+v", res)
		}
		if !f.sessionKept(t) {
			t.Fatalf("session data must survive a dismissed checkout")
		}
	})

	t.Run("completion failure keeps state and reports success", func(t *testing.T) {
		f := newAdapterFixture(t, razorpayTicket())
		adapter, sdk := newRazorpay(t, f, RazorpayAdapterOptions{})
		sdk.EXPECT().Open(gomock.Any(), gomock.Any()).Return(entities.RazorpayCheckoutResult{
			Outcome:  entities.OutcomeSuccess,
			Response: &entities.RazorpayResponse{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig_1"},
		}, nil)
		sdk.EXPECT().VerifySignature(gomock.Any()).Return(false, false)
		f.api.EXPECT().CompletePayment(gomock.Any(), gomock.Any()).
			Return(entities.NewPaymentError(entities.ErrorKindNetwork, "", errors.New("dial tcp: refused")))

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if !res.Success || res.CompletionError != entities.ErrorKindNetwork.UserMessage() {
			t.Fatalf("unexpected result %+v", res)
		}
		if !f.sessionKept(t) {
			t.Fatalf("session data must be kept for reconciliation")
		}
	})

	t.Run("completion uses the order ids when the stored session changes", func(t *testing.T) {
		f := newAdapterFixture(t, razorpayTicket())
		adapter, sdk := newRazorpay(t, f, RazorpayAdapterOptions{})
		sdk.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ entities.RazorpayCheckoutOptions) (entities.RazorpayCheckoutResult, error) {
				if _, err := f.session.CreateSessionData(ctx, "s2", "t2", false); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return entities.RazorpayCheckoutResult{
					Outcome:  entities.OutcomeSuccess,
					Response: &entities.RazorpayResponse{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig_1"},
				}, nil
			})
		sdk.EXPECT().VerifySignature(gomock.Any()).Return(true, true)

		var sent entities.PaymentCompletionRequest
		f.api.EXPECT().CompletePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.PaymentCompletionRequest) error {
				sent = req
				return nil
			}).Times(1)

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if !res.Success || res.CompletionError != "" {
			t.Fatalf("unexpected result %+v", res)
		}
		if sent.OriginalSessionID != "s1" || sent.TestID != "t1" || sent.PaymentSessionID != "ps_1" {
			t.Fatalf("completion must carry the order's session, got %+v", sent)
		}
		sd, err := f.session.GetSessionData(f.ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sd == nil || sd.OriginalSessionID != "s2" || sd.TestID != "t2" {
			t.Fatalf("the newer session state must be kept, got %+v", sd)
		}
	})

	t.Run("invalid completion request is not sent", func(t *testing.T) {
		ticket := razorpayTicket()
		ticket.Response.PaymentSessionID = ""
		f := newAdapterFixture(t, ticket)
		adapter, sdk := newRazorpay(t, f, RazorpayAdapterOptions{})
		sdk.EXPECT().Open(gomock.Any(), gomock.Any()).Return(entities.RazorpayCheckoutResult{
			Outcome:  entities.OutcomeSuccess,
			Response: &entities.RazorpayResponse{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig_1"},
		}, nil)
		sdk.EXPECT().VerifySignature(gomock.Any()).Return(true, true)

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if res.Success || res.Kind != entities.ErrorKindInvalidData {
			t.Fatalf("unexpected result %+v", res)
		}
		if !f.sessionKept(t) {
			t.Fatalf("session data must be kept when completion is not sent")
		}
	})

	t.Run("invalid signature fails without completion", func(t *testing.T) {
		f := newAdapterFixture(t, razorpayTicket())
		adapter, sdk := newRazorpay(t, f, RazorpayAdapterOptions{})
		sdk.EXPECT().Open(gomock.Any(), gomock.Any()).Return(entities.RazorpayCheckoutResult{
			Outcome:  entities.OutcomeSuccess,
			Response: &entities.RazorpayResponse{OrderID: "order_1", PaymentID: "pay_1", Signature: "forged"},
		}, nil)
		sdk.EXPECT().VerifySignature(gomock.Any()).Return(true, false)

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if res.Success || res.Kind != entities.ErrorKindPaymentFailed {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("backend verification rejects the signature", func(t *testing.T) {
		f := newAdapterFixture(t, razorpayTicket())
		adapter, sdk := newRazorpay(t, f, RazorpayAdapterOptions{VerifyWithBackend: true})
		sdk.EXPECT().Open(gomock.Any(), gomock.Any()).Return(entities.RazorpayCheckoutResult{
			Outcome:  entities.OutcomeSuccess,
			Response: &entities.RazorpayResponse{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"},
		}, nil)
		sdk.EXPECT().VerifySignature(gomock.Any()).Return(false, false)
		f.api.EXPECT().VerifyPayment(gomock.Any(), entities.VerifyPaymentRequest{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}).
			Return(entities.VerifyPaymentResponse{Verified: false}, nil)

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if res.Success || res.Kind != entities.ErrorKindPaymentFailed {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("foreign order id is refused", func(t *testing.T) {
		f := newAdapterFixture(t, razorpayTicket())
		adapter, sdk := newRazorpay(t, f, RazorpayAdapterOptions{})
		sdk.EXPECT().Open(gomock.Any(), gomock.Any()).Return(entities.RazorpayCheckoutResult{
			Outcome:  entities.OutcomeSuccess,
			Response: &entities.RazorpayResponse{OrderID: "order_other", PaymentID: "pay_1", Signature: "sig"},
		}, nil)

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if res.Success || res.Kind != entities.ErrorKindPaymentFailed {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("gateway failures are translated", func(t *testing.T) {
		cases := map[string]entities.ErrorKind{
			"SERVER_ERROR":      entities.ErrorKindNetwork,
			"BAD_REQUEST_ERROR": entities.ErrorKindPaymentFailed,
			"SOMETHING_NEW":     entities.ErrorKindPaymentFailed,
		}
		for code, want := range cases {
			code, want := code, want
			t.Run(code, func(t *testing.T) {
				f := newAdapterFixture(t, razorpayTicket())
				adapter, sdk := newRazorpay(t, f, RazorpayAdapterOptions{})
				sdk.EXPECT().Open(gomock.Any(), gomock.Any()).Return(entities.RazorpayCheckoutResult{
					Outcome: entities.OutcomeFailed,
					Failure: &entities.GatewayFailure{Code: code, Description: "declined"},
				}, nil)

				res := adapter.InitiatePayment(f.ctx, "s1", "t1")
				if res.Success || res.Kind != want || res.Error != want.UserMessage() {
					t.Fatalf("unexpected result %+v", res)
				}
			})
		}
	})

	t.Run("order creation failure never opens the checkout", func(t *testing.T) {
		f := newAdapterFixture(t, entities.OrderTicket{})
		f.orders.err = entities.NewPaymentError(entities.ErrorKindAuthenticationRequired, "", nil)
		adapter, _ := newRazorpay(t, f, RazorpayAdapterOptions{})

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if res.Kind != entities.ErrorKindAuthenticationRequired {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("sdk load failure", func(t *testing.T) {
		f := newAdapterFixture(t, razorpayTicket())
		ctrl := gomock.NewController(t)
		loader := mock_interfaces.NewMockIRazorpayLoader(ctrl)
		loader.EXPECT().Load(gomock.Any()).Return(nil, entities.NewPaymentError(entities.ErrorKindScriptLoadFailed, "", ErrSDKLoadTimeout))
		adapter := NewRazorpayAdapter(loader, f.deps, RazorpayAdapterOptions{})

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if res.Kind != entities.ErrorKindScriptLoadFailed || f.orders.calls != 0 {
			t.Fatalf("unexpected result %+v after %d order calls", res, f.orders.calls)
		}
	})
}

func TestRazorpayAdapter_Pricing(t *testing.T) {
	f := newAdapterFixture(t, razorpayTicket())
	adapter, _ := newRazorpay(t, f, RazorpayAdapterOptions{})

	got, err := adapter.Pricing(f.ctx, entities.Locale{Country: "US", Detected: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Amount != 99900 || got.Currency != "INR" || got.Tier != entities.PricingTierEarly {
		t.Fatalf("unexpected pricing %+v", got)
	}
}

func newPayPal(t *testing.T, f *adapterFixture) (*PayPalAdapter, *mock_interfaces.MockIPayPalSDK) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mock_interfaces.NewMockIPayPalLoader(ctrl)
	sdk := mock_interfaces.NewMockIPayPalSDK(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(sdk, nil).AnyTimes()
	return NewPayPalAdapter(loader, f.deps, PayPalAdapterOptions{}), sdk
}

// approveAfterCreate plays the buttons: the payer clicks twice, then approves.
func approveAfterCreate(t *testing.T) func(context.Context, entities.PayPalButtonsConfig, interfaces.CreateOrderFunc) (entities.PayPalButtonsResult, error) {
	return func(ctx context.Context, cfg entities.PayPalButtonsConfig, createOrder interfaces.CreateOrderFunc) (entities.PayPalButtonsResult, error) {
		if cfg.Currency != "USD" || cfg.Amount != 1200 {
			t.Errorf("unexpected buttons config %+v", cfg)
		}
		id, err := createOrder(ctx)
		if err != nil {
			return entities.PayPalButtonsResult{}, err
		}
		again, _ := createOrder(ctx)
		if again != id {
			t.Errorf("second click must reuse the order, got %q and %q", id, again)
		}
		return entities.PayPalButtonsResult{Outcome: entities.OutcomeApproved, OrderID: id, PayerID: "PAYER-1"}, nil
	}
}

func TestPayPalAdapter_InitiatePayment(t *testing.T) {
	t.Run("lazy order and capture id as transaction id", func(t *testing.T) {
		f := newAdapterFixture(t, paypalTicket())
		adapter, sdk := newPayPal(t, f)

		sdk.EXPECT().RenderButtons(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(approveAfterCreate(t))
		sdk.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.PayPalOrderRequest) (entities.PayPalOrder, error) {
				if req.CustomID != "ps_2" || req.ReferenceID != "t1" || req.Amount != 1200 || req.Currency != "USD" {
					t.Errorf("unexpected paypal order request %+v", req)
				}
				return entities.PayPalOrder{ID: "PP-1", Status: "CREATED"}, nil
			}).Times(1)
		sdk.EXPECT().CaptureOrder(gomock.Any(), "PP-1").Return(entities.PayPalCapture{
			OrderID:    "PP-1",
			CaptureID:  "CAP-1",
			Status:     "COMPLETED",
			PayerEmail: "payer@example.com",
			Amount:     1200,
			Currency:   "USD",
		}, nil)

		var sent entities.PaymentCompletionRequest
		f.api.EXPECT().CompletePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.PaymentCompletionRequest) error {
				sent = req
				return nil
			})

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if !res.Success {
			t.Fatalf("unexpected result %+v", res)
		}
		if f.orders.calls != 1 {
			t.Fatalf("expected one backend order, got %d", f.orders.calls)
		}
		if sent.TransactionID != "PP-1" || sent.OrderID != "PP-1" || sent.PaymentSessionID != "ps_2" {
			t.Fatalf("unexpected completion %+v", sent)
		}
		proof, ok := sent.Proof.(entities.PayPalProof)
		if !ok || proof.CaptureID != "CAP-1" || proof.PayerID != "PAYER-1" {
			t.Fatalf("unexpected proof %+v", sent.Proof)
		}
		data := res.Data.(entities.PayPalPaymentData)
		if data.PayerEmail != "payer@example.com" || data.CaptureID != "CAP-1" {
			t.Fatalf("unexpected payment data %+v", data)
		}
	})

	t.Run("backend transaction id when the capture has none", func(t *testing.T) {
		f := newAdapterFixture(t, paypalTicket())
		adapter, sdk := newPayPal(t, f)
		sdk.EXPECT().RenderButtons(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(approveAfterCreate(t))
		sdk.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.PayPalOrder{ID: "PP-1"}, nil)
		sdk.EXPECT().CaptureOrder(gomock.Any(), "PP-1").Return(entities.PayPalCapture{CaptureID: "CAP-1", Status: "COMPLETED"}, nil)

		var sent entities.PaymentCompletionRequest
		f.api.EXPECT().CompletePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.PaymentCompletionRequest) error {
				sent = req
				return nil
			})

		if res := adapter.InitiatePayment(f.ctx, "s1", "t1"); !res.Success {
			t.Fatalf("unexpected result %+v", res)
		}
		if sent.TransactionID != "txn_backend" {
			t.Fatalf("expected backend transaction id, got %q", sent.TransactionID)
		}
	})

	t.Run("cancel before any order", func(t *testing.T) {
		f := newAdapterFixture(t, paypalTicket())
		adapter, sdk := newPayPal(t, f)
		sdk.EXPECT().RenderButtons(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.PayPalButtonsResult{Outcome: entities.OutcomeCancelled}, nil)

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if !res.Cancelled || res.Error != entities.CancelledMessage || f.orders.calls != 0 {
			t.Fatalf("unexpected result %+v", res)
		}
		if !f.sessionKept(t) {
			t.Fatalf("session data must survive a cancelled checkout")
		}
	})

	t.Run("buttons errors are translated", func(t *testing.T) {
		cases := map[string]entities.ErrorKind{
			"INSTRUMENT_DECLINED":  entities.ErrorKindPaymentFailed,
			"UNPROCESSABLE_ENTITY": entities.ErrorKindInvalidData,
			"":                     entities.ErrorKindPaymentFailed,
		}
		for code, want := range cases {
			code, want := code, want
			t.Run(code, func(t *testing.T) {
				f := newAdapterFixture(t, paypalTicket())
				adapter, sdk := newPayPal(t, f)
				sdk.EXPECT().RenderButtons(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(entities.PayPalButtonsResult{Outcome: entities.OutcomeError, Failure: &entities.GatewayFailure{Code: code}}, nil)

				res := adapter.InitiatePayment(f.ctx, "s1", "t1")
				if res.Success || res.Kind != want {
					t.Fatalf("unexpected result %+v", res)
				}
			})
		}
	})

	t.Run("approval without an order", func(t *testing.T) {
		f := newAdapterFixture(t, paypalTicket())
		adapter, sdk := newPayPal(t, f)
		sdk.EXPECT().RenderButtons(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.PayPalButtonsResult{Outcome: entities.OutcomeApproved, OrderID: "PP-X"}, nil)

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if res.Kind != entities.ErrorKindOrderCreationFailed {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("declined capture", func(t *testing.T) {
		f := newAdapterFixture(t, paypalTicket())
		adapter, sdk := newPayPal(t, f)
		sdk.EXPECT().RenderButtons(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(approveAfterCreate(t))
		sdk.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.PayPalOrder{ID: "PP-1"}, nil)
		apiErr := &PayPalAPIError{Status: 422, Name: "UNPROCESSABLE_ENTITY"}
		apiErr.Details = append(apiErr.Details, struct {
			Issue       string `json:"issue"`
			Description string `json:"description"`
		}{Issue: "INSTRUMENT_DECLINED"})
		sdk.EXPECT().CaptureOrder(gomock.Any(), "PP-1").Return(entities.PayPalCapture{}, apiErr)

		res := adapter.InitiatePayment(f.ctx, "s1", "t1")
		if res.Success || res.Kind != entities.ErrorKindPaymentFailed {
			t.Fatalf("unexpected result %+v", res)
		}
	})
}
