package usecase

import (
	"context"
	"testing"
	"time"

	"assessment_checkout/internal/adapter/persistence/store"
	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/infrastructure/clock"
)

func newSessionFixture(t *testing.T) (*SessionUseCase, *clock.Manual, *store.MemoryStore, context.Context) {
	t.Helper()
	c := clock.NewManual(t0)
	s := store.NewMemoryStore(c)
	ctx := entities.WithScope(context.Background(), "scope-"+t.Name())
	return NewSessionUseCase(s, c), c, s, ctx
}

func TestSessionUseCase_SessionStartTimeIsImmutable(t *testing.T) {
	uc, c, _, ctx := newSessionFixture(t)

	first, err := uc.GetOrCreateSessionStartTime(ctx)
	if err != nil || !first.Equal(t0) {
		t.Fatalf("unexpected start %v %v", first, err)
	}
	c.Advance(20 * time.Minute)
	again, _ := uc.GetOrCreateSessionStartTime(ctx)
	if !again.Equal(t0) {
		t.Fatalf("start time must not move, got %v", again)
	}

	if _, err := uc.CreateSessionData(ctx, "s1", "t1", false); err != nil {
		t.Fatalf("create session data: %v", err)
	}
	sd, _ := uc.GetSessionData(ctx)
	if !sd.SessionStartTime.Equal(t0) {
		t.Fatalf("session data must use the original clock anchor")
	}

	reset, _ := uc.ResetSessionStartTime(ctx)
	if !reset.Equal(t0.Add(20 * time.Minute)) {
		t.Fatalf("reset should restart the clock, got %v", reset)
	}
}

func TestSessionUseCase_PaymentContext(t *testing.T) {
	t.Run("stores current clock and return url", func(t *testing.T) {
		uc, c, _, ctx := newSessionFixture(t)
		_, _ = uc.GetOrCreateSessionStartTime(ctx)
		c.Advance(5 * time.Minute)

		pc, err := uc.CreatePaymentContext(ctx, "s1", "t1", "/quest/result")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !pc.SessionStartTime.Equal(t0) || pc.ReturnURL != "/quest/result" {
			t.Fatalf("unexpected context %+v", pc)
		}
		got, _ := uc.GetPaymentContext(ctx)
		if got == nil || got.OriginalSessionID != "s1" || got.TestID != "t1" {
			t.Fatalf("unexpected stored context %+v", got)
		}
	})

	t.Run("rejects empty ids", func(t *testing.T) {
		uc, _, _, ctx := newSessionFixture(t)
		if _, err := uc.CreatePaymentContext(ctx, " ", "t1", "/"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("expired read clears everything", func(t *testing.T) {
		uc, c, _, ctx := newSessionFixture(t)
		_, _ = uc.CreateSessionData(ctx, "s1", "t1", true)
		_, _ = uc.CreatePaymentContext(ctx, "s1", "t1", "/")

		c.Advance(time.Hour + time.Millisecond)
		got, err := uc.GetPaymentContext(ctx)
		if err != nil || got != nil {
			t.Fatalf("expected nil context, got %+v %v", got, err)
		}
		if sd, _ := uc.GetSessionData(ctx); sd != nil {
			t.Fatalf("expected session data cleared")
		}
	})
}

func TestSessionUseCase_ResumePaymentFlow(t *testing.T) {
	t.Run("resumable within an hour", func(t *testing.T) {
		uc, c, _, ctx := newSessionFixture(t)
		_, _ = uc.CreateSessionData(ctx, "s1", "t1", true)
		_, _ = uc.CreatePaymentContext(ctx, "s1", "t1", "/")
		c.Advance(time.Hour)

		res, err := uc.ResumePaymentFlow(ctx)
		if err != nil || !res.CanResume {
			t.Fatalf("expected resumable at exactly one hour, got %+v %v", res, err)
		}
		if res.Context.OriginalSessionID != "s1" || res.SessionData.TestID != "t1" {
			t.Fatalf("unexpected resume payload %+v", res)
		}
	})

	t.Run("expired context clears storage", func(t *testing.T) {
		uc, c, s, ctx := newSessionFixture(t)
		_, _ = uc.CreateSessionData(ctx, "s1", "t1", true)
		_, _ = uc.CreatePaymentContext(ctx, "s1", "t1", "/")
		c.Advance(time.Hour + time.Millisecond)

		res, err := uc.ResumePaymentFlow(ctx)
		if err != nil || res.CanResume {
			t.Fatalf("expected not resumable, got %+v %v", res, err)
		}
		for _, k := range []string{entities.KeyPaymentContext, entities.KeySessionData, entities.KeyPricingSnapshot} {
			if _, found, _ := s.Get(ctx, k); found {
				t.Fatalf("expected %s cleared", k)
			}
		}
	})

	t.Run("missing session data fails closed", func(t *testing.T) {
		uc, _, s, ctx := newSessionFixture(t)
		_, _ = uc.CreatePaymentContext(ctx, "s1", "t1", "/")

		res, _ := uc.ResumePaymentFlow(ctx)
		if res.CanResume || res.Reason != "no session data found" {
			t.Fatalf("unexpected result %+v", res)
		}
		if _, found, _ := s.Get(ctx, entities.KeyPaymentContext); found {
			t.Fatalf("expected context cleared")
		}
	})

	t.Run("missing context fails closed", func(t *testing.T) {
		uc, _, _, ctx := newSessionFixture(t)
		_, _ = uc.CreateSessionData(ctx, "s1", "t1", true)

		res, _ := uc.ResumePaymentFlow(ctx)
		if res.CanResume || res.Reason != "no payment context found" {
			t.Fatalf("unexpected result %+v", res)
		}
		if sd, _ := uc.GetSessionData(ctx); sd != nil {
			t.Fatalf("expected session data cleared")
		}
	})
}

func TestSessionUseCase_ValidateSessionContinuity(t *testing.T) {
	uc, _, _, ctx := newSessionFixture(t)
	_, _ = uc.CreatePaymentContext(ctx, "s1", "t1", "/")

	cases := []struct {
		sid, tid string
		want     bool
	}{
		{"s1", "t1", true},
		{"s2", "t1", false},
		{"s1", "t2", false},
		{"s2", "t2", false},
	}
	for _, tc := range cases {
		got, err := uc.ValidateSessionContinuity(ctx, tc.sid, tc.tid)
		if err != nil || got != tc.want {
			t.Fatalf("(%s,%s): expected %v, got %v %v", tc.sid, tc.tid, tc.want, got, err)
		}
	}

	other := entities.WithScope(context.Background(), "no-context")
	if ok, _ := uc.ValidateSessionContinuity(other, "s1", "t1"); ok {
		t.Fatalf("expected false without stored context")
	}
}

func TestSessionUseCase_SessionDataLifecycle(t *testing.T) {
	uc, c, s, ctx := newSessionFixture(t)

	sd, err := uc.CreateSessionData(ctx, "s1", "t1", true)
	if err != nil || !sd.AuthenticationRequired || sd.AuthStartedAt == nil {
		t.Fatalf("unexpected session data %+v %v", sd, err)
	}
	if req, _ := uc.RequiresAuthentication(ctx); !req {
		t.Fatalf("expected auth required")
	}

	tier := entities.PricingTier{Name: entities.PricingTierEarly, Amount: 99900, Currency: "INR"}
	if err := uc.UpdateSessionDataWithPricing(ctx, tier); err != nil {
		t.Fatalf("update pricing: %v", err)
	}
	if _, found, _ := s.Get(ctx, entities.KeyPricingSnapshot); !found {
		t.Fatalf("expected pricing snapshot key")
	}

	c.Advance(3 * time.Minute)
	if err := uc.MarkAuthenticationCompleted(ctx); err != nil {
		t.Fatalf("mark completed: %v", err)
	}
	got, _ := uc.GetSessionData(ctx)
	if got.AuthenticationRequired || got.AuthCompletedAt == nil || got.PricingSnapshot == nil || got.PricingSnapshot.Amount != 99900 {
		t.Fatalf("unexpected session data after auth %+v", got)
	}

	again, _ := uc.CreateSessionData(ctx, "s1", "t1", false)
	if again.PricingSnapshot == nil {
		t.Fatalf("recreating for the same ids must keep the snapshot")
	}

	if mins, _ := uc.SessionDuration(ctx); mins != 3 {
		t.Fatalf("expected 3 minutes, got %d", mins)
	}
	md, _ := uc.PrepareSessionMetadata(ctx, "s1", "t1")
	if md.PricingTier != "early" || md.SessionDurationMinutes != 3 {
		t.Fatalf("unexpected metadata %+v", md)
	}

	if err := uc.ClearAllData(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	st, _ := uc.PaymentFlowState(ctx)
	if st.HasSessionData || st.HasPaymentContext || st.SessionStartTime == nil {
		t.Fatalf("clear must keep only the clock, got %+v", st)
	}
}

func TestSessionUseCase_UpdatePricingWithoutSession(t *testing.T) {
	uc, _, _, ctx := newSessionFixture(t)
	err := uc.UpdateSessionDataWithPricing(ctx, entities.PricingTier{Name: entities.PricingTierEarly})
	if err != ErrSessionDataMissing {
		t.Fatalf("expected ErrSessionDataMissing, got %v", err)
	}
}

func TestSessionUseCase_IsSessionExpired(t *testing.T) {
	uc, c, _, ctx := newSessionFixture(t)
	if exp, _ := uc.IsSessionExpired(ctx, 0); exp {
		t.Fatalf("no clock means not expired")
	}
	_, _ = uc.GetOrCreateSessionStartTime(ctx)
	c.Advance(121 * time.Minute)
	if exp, _ := uc.IsSessionExpired(ctx, 0); !exp {
		t.Fatalf("expected expired after default 120 minutes")
	}
	if exp, _ := uc.IsSessionExpired(ctx, 3*time.Hour); exp {
		t.Fatalf("expected not expired with 3h max age")
	}
}
