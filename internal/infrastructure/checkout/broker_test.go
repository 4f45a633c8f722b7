package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"assessment_checkout/internal/domain/entities"
)

func scoped(scope string) context.Context {
	return entities.WithScope(context.Background(), scope)
}

// waitForPresentation polls until the attempt has published its checkout.
func waitForPresentation(t *testing.T, attempts *Attempts, ctx context.Context, id string) *entities.CheckoutPresentation {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		at, err := attempts.Get(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if at.Presentation != nil {
			return at.Presentation
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("checkout was never presented")
	return nil
}

func TestBroker_PresentAndDeliver(t *testing.T) {
	broker := NewBroker()
	attempts := NewAttempts(broker, time.Minute)
	ctx := scoped("scope-a")

	id, _ := attempts.Start(ctx, "", entities.GatewayRazorpay, func(ctx context.Context) entities.PaymentResult {
		ev, err := broker.Present(ctx, entities.CheckoutPresentation{
			Gateway:  entities.GatewayRazorpay,
			Razorpay: &entities.RazorpayCheckoutOptions{OrderID: "order_1"},
		}, nil)
		if err != nil {
			return entities.FailureResult(err)
		}
		if ev.Outcome == entities.OutcomeDismissed {
			return entities.CancelledResult()
		}
		return entities.SuccessResult(entities.RazorpayPaymentData{OrderID: ev.Razorpay.OrderID, PaymentID: ev.Razorpay.PaymentID})
	})

	p := waitForPresentation(t, attempts, ctx, id)
	if p.AttemptID != id || p.Razorpay == nil || p.Razorpay.OrderID != "order_1" {
		t.Fatalf("unexpected presentation %+v", p)
	}

	if err := broker.Deliver(scoped("scope-b"), id, entities.CheckoutEvent{Outcome: entities.OutcomeDismissed}); !errors.Is(err, ErrNoCheckout) {
		t.Fatalf("another scope must not reach the checkout, got %v", err)
	}
	if err := broker.Deliver(ctx, id, entities.CheckoutEvent{Outcome: "bogus"}); !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected invalid event, got %v", err)
	}

	err := broker.Deliver(ctx, id, entities.CheckoutEvent{
		Outcome:  entities.OutcomeSuccess,
		Razorpay: &entities.RazorpayResponse{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	at, err := attempts.Wait(ctx, id, 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if at.Status != entities.AttemptFinished || at.Result == nil || !at.Result.Success {
		t.Fatalf("unexpected attempt %+v", at)
	}
	if _, ok := broker.Presentation(ctx, id); ok {
		t.Fatalf("finished checkout must be closed")
	}
}

func TestBroker_LazyCreateOrder(t *testing.T) {
	broker := NewBroker()
	attempts := NewAttempts(broker, time.Minute)
	ctx := entities.WithClientInfo(scoped("scope-a"), entities.ClientInfo{UserAgent: "attempt-agent"})

	id, _ := attempts.Start(ctx, "", entities.GatewayPayPal, func(ctx context.Context) entities.PaymentResult {
		ev, err := broker.Present(ctx, entities.CheckoutPresentation{Gateway: entities.GatewayPayPal, PayPal: &entities.PayPalButtonsConfig{Currency: "USD"}},
			func(orderCtx context.Context) (string, error) {
				if entities.ClientInfoFromContext(orderCtx).UserAgent != "attempt-agent" {
					return "", errors.New("order created outside the attempt context")
				}
				return "PP-1", nil
			})
		if err != nil {
			return entities.FailureResult(err)
		}
		return entities.SuccessResult(entities.PayPalPaymentData{OrderID: ev.OrderID})
	})
	waitForPresentation(t, attempts, ctx, id)

	orderID, err := broker.CreateOrder(scoped("scope-a"), id)
	if err != nil || orderID != "PP-1" {
		t.Fatalf("unexpected order %q %v", orderID, err)
	}

	if err := broker.Deliver(ctx, id, entities.CheckoutEvent{Outcome: entities.OutcomeApproved, OrderID: orderID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	at, _ := attempts.Wait(ctx, id, 2*time.Second)
	if at.Result == nil || !at.Result.Success {
		t.Fatalf("unexpected attempt %+v", at)
	}
}

func TestBroker_PresentRequiresAttempt(t *testing.T) {
	broker := NewBroker()
	if _, err := broker.Present(scoped("s"), entities.CheckoutPresentation{}, nil); !errors.Is(err, ErrMissingAttemptID) {
		t.Fatalf("expected missing attempt id, got %v", err)
	}
}

func TestBroker_PresentStopsOnCancel(t *testing.T) {
	broker := NewBroker()
	ctx, cancel := context.WithCancel(entities.WithAttemptID(scoped("s"), "a1"))
	cancel()
	if _, err := broker.Present(ctx, entities.CheckoutPresentation{}, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestAttempts_OutliveRequestContext(t *testing.T) {
	attempts := NewAttempts(NewBroker(), time.Minute)
	reqCtx, cancel := context.WithCancel(scoped("scope-a"))

	release := make(chan struct{})
	id, _ := attempts.Start(reqCtx, "", entities.GatewayRazorpay, func(ctx context.Context) entities.PaymentResult {
		<-release
		if ctx.Err() != nil {
			return entities.FailureResult(ctx.Err())
		}
		if entities.AttemptIDFromContext(ctx) == "" || entities.ScopeFromContext(ctx) != "scope-a" {
			return entities.FailureResult(errors.New("context values lost"))
		}
		return entities.SuccessResult(entities.RazorpayPaymentData{OrderID: "order_1"})
	})
	cancel()
	close(release)

	at, err := attempts.Wait(scoped("scope-a"), id, 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if at.Result == nil || !at.Result.Success {
		t.Fatalf("attempt should survive the request, got %+v", at)
	}

	if _, err := attempts.Get(scoped("scope-b"), id); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("another scope must not see the attempt, got %v", err)
	}
}

func TestAttempts_WaitTimesOutWhilePending(t *testing.T) {
	attempts := NewAttempts(NewBroker(), time.Minute)
	release := make(chan struct{})
	defer close(release)
	id, _ := attempts.Start(scoped("s"), "", entities.GatewayPayPal, func(ctx context.Context) entities.PaymentResult {
		<-release
		return entities.CancelledResult()
	})

	at, err := attempts.Wait(scoped("s"), id, 20*time.Millisecond)
	if err != nil || at.Status != entities.AttemptPending || at.Result != nil {
		t.Fatalf("unexpected attempt %+v %v", at, err)
	}
}

func TestAttempts_StartJoinsRunningAttempt(t *testing.T) {
	broker := NewBroker()
	attempts := NewAttempts(broker, time.Minute)
	ctx := scoped("scope-a")
	key := AttemptKey(entities.GatewayRazorpay, "s1", "t1")

	run := func(ctx context.Context) entities.PaymentResult {
		ev, err := broker.Present(ctx, entities.CheckoutPresentation{
			Gateway:  entities.GatewayRazorpay,
			Razorpay: &entities.RazorpayCheckoutOptions{OrderID: "order_1"},
		}, nil)
		if err != nil {
			return entities.FailureResult(err)
		}
		if ev.Outcome == entities.OutcomeDismissed {
			return entities.CancelledResult()
		}
		return entities.FailureResult(entities.ErrPaymentFailed)
	}

	first, joined := attempts.Start(ctx, key, entities.GatewayRazorpay, run)
	if joined {
		t.Fatalf("first start must launch an attempt")
	}
	waitForPresentation(t, attempts, ctx, first)

	t.Run("same key shows the open checkout", func(t *testing.T) {
		id, joined := attempts.Start(ctx, key, entities.GatewayRazorpay, func(context.Context) entities.PaymentResult {
			t.Errorf("a joined start must not run")
			return entities.CancelledResult()
		})
		if !joined || id != first {
			t.Fatalf("expected to join %s, got %s joined=%v", first, id, joined)
		}
		p := waitForPresentation(t, attempts, ctx, id)
		if p.Razorpay == nil || p.Razorpay.OrderID != "order_1" {
			t.Fatalf("unexpected presentation %+v", p)
		}
	})

	t.Run("other scope starts its own attempt", func(t *testing.T) {
		release := make(chan struct{})
		id, joined := attempts.Start(scoped("scope-b"), key, entities.GatewayRazorpay, func(context.Context) entities.PaymentResult {
			<-release
			return entities.CancelledResult()
		})
		close(release)
		if joined || id == first {
			t.Fatalf("another scope must not join %s", first)
		}
	})

	t.Run("finished attempt frees the key", func(t *testing.T) {
		if err := broker.Deliver(ctx, first, entities.CheckoutEvent{Outcome: entities.OutcomeDismissed}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		at, err := attempts.Wait(ctx, first, 2*time.Second)
		if err != nil || at.Status != entities.AttemptFinished {
			t.Fatalf("unexpected attempt %+v %v", at, err)
		}
		release := make(chan struct{})
		defer close(release)
		id, joined := attempts.Start(ctx, key, entities.GatewayRazorpay, func(context.Context) entities.PaymentResult {
			<-release
			return entities.CancelledResult()
		})
		if joined || id == first {
			t.Fatalf("expected a new attempt after %s finished", first)
		}
	})
}
