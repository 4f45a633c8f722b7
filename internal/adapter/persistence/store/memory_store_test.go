package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/infrastructure/clock"
)

func TestMemoryStore(t *testing.T) {
	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("requires scope", func(t *testing.T) {
		s := NewMemoryStore(clock.NewManual(start))
		if err := s.Set(context.Background(), "k", []byte("v"), 0); !errors.Is(err, ErrMissingScope) {
			t.Fatalf("expected ErrMissingScope, got %v", err)
		}
	})

	t.Run("scopes are isolated", func(t *testing.T) {
		s := NewMemoryStore(clock.NewManual(start))
		a := entities.WithScope(context.Background(), "a")
		b := entities.WithScope(context.Background(), "b")
		if err := s.Set(a, entities.KeySessionData, []byte(`{"x":1}`), 0); err != nil {
			t.Fatalf("set: %v", err)
		}
		if _, found, _ := s.Get(b, entities.KeySessionData); found {
			t.Fatalf("scope b must not see scope a data")
		}
		v, found, err := s.Get(a, entities.KeySessionData)
		if err != nil || !found || string(v) != `{"x":1}` {
			t.Fatalf("unexpected get result %q %v %v", v, found, err)
		}
	})

	t.Run("ttl expiry and sweep", func(t *testing.T) {
		c := clock.NewManual(start)
		s := NewMemoryStore(c)
		ctx := entities.WithScope(context.Background(), "a")
		_ = s.Set(ctx, "short", []byte("1"), time.Minute)
		_ = s.Set(ctx, "other", []byte("2"), time.Minute)
		_ = s.Set(ctx, "forever", []byte("3"), 0)

		c.Advance(59 * time.Second)
		if _, found, _ := s.Get(ctx, "short"); !found {
			t.Fatalf("expected value before ttl")
		}
		c.Advance(time.Second)
		if _, found, _ := s.Get(ctx, "short"); found {
			t.Fatalf("expected value to expire at ttl")
		}
		if n := s.Sweep(); n != 1 {
			t.Fatalf("expected sweep to drop 1 entry, got %d", n)
		}
		if _, found, _ := s.Get(ctx, "forever"); !found {
			t.Fatalf("expected non-expiring value")
		}
	})

	t.Run("last write wins and delete", func(t *testing.T) {
		s := NewMemoryStore(clock.NewManual(start))
		ctx := entities.WithScope(context.Background(), "a")
		_ = s.Set(ctx, "k", []byte("1"), 0)
		_ = s.Set(ctx, "k", []byte("2"), 0)
		v, _, _ := s.Get(ctx, "k")
		if string(v) != "2" {
			t.Fatalf("expected last write, got %q", v)
		}
		if err := s.Delete(ctx, "k", "missing"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, found, _ := s.Get(ctx, "k"); found {
			t.Fatalf("expected deleted")
		}
	})
}
