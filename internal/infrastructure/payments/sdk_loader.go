package payments

import (
	"context"
	"errors"
	"sync"
	"time"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/infrastructure/metrics"

	log "github.com/sirupsen/logrus"
)

const (
	RazorpayLoadTimeout = 10 * time.Second
	PayPalLoadTimeout   = 15 * time.Second
)

var ErrSDKLoadTimeout = errors.New("sdk load timeout")

type loadCall[T any] struct {
	done chan struct{}
	sdk  T
	err  error
}

// sdkLoader loads a gateway SDK at most once. Concurrent callers share the
// load in progress. A successful load is kept; a failed one is forgotten so
// the next call tries again.
type sdkLoader[T any] struct {
	gateway entities.Gateway
	timeout time.Duration
	load    func(ctx context.Context) (T, error)

	mu     sync.Mutex
	loaded bool
	sdk    T
	call   *loadCall[T]
}

func newSDKLoader[T any](gateway entities.Gateway, timeout time.Duration, load func(ctx context.Context) (T, error)) *sdkLoader[T] {
	return &sdkLoader[T]{gateway: gateway, timeout: timeout, load: load}
}

func (l *sdkLoader[T]) Get(ctx context.Context) (T, error) {
	l.mu.Lock()
	if l.loaded {
		sdk := l.sdk
		l.mu.Unlock()
		return sdk, nil
	}
	if c := l.call; c != nil {
		l.mu.Unlock()
		return l.wait(ctx, c)
	}
	c := &loadCall[T]{done: make(chan struct{})}
	l.call = c
	l.mu.Unlock()

	go l.run(ctx, c)
	return l.wait(ctx, c)
}

// run performs the load detached from the first caller's cancellation, so
// that caller leaving does not fail everyone waiting on the same load.
func (l *sdkLoader[T]) run(ctx context.Context, c *loadCall[T]) {
	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
	defer cancel()

	start := time.Now()
	sdk, err := l.load(loadCtx)
	if err == nil && loadCtx.Err() != nil {
		err = loadCtx.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = ErrSDKLoadTimeout
	}
	if err != nil {
		var zero T
		sdk = zero
		err = entities.NewPaymentError(entities.ErrorKindScriptLoadFailed, "", err)
	}

	fields := log.Fields{"gateway": l.gateway, "elapsed": time.Since(start)}
	l.mu.Lock()
	if err == nil {
		l.loaded = true
		l.sdk = sdk
		metrics.SDKLoadsTotal.WithLabelValues(string(l.gateway), "loaded").Inc()
		log.WithFields(fields).Info("[payments][loader] sdk loaded")
	} else {
		metrics.SDKLoadsTotal.WithLabelValues(string(l.gateway), "failed").Inc()
		log.WithFields(fields).WithError(err).Warn("[payments][loader] sdk load failed")
	}
	l.call = nil
	c.sdk, c.err = sdk, err
	l.mu.Unlock()
	close(c.done)
}

func (l *sdkLoader[T]) wait(ctx context.Context, c *loadCall[T]) (T, error) {
	select {
	case <-c.done:
		return c.sdk, c.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Loaded reports whether a load has already succeeded.
func (l *sdkLoader[T]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}
