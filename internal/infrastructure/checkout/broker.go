package checkout

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrNoCheckout          = errors.New("no checkout is open for this attempt")
	ErrMissingAttemptID    = errors.New("attempt id missing from context")
	ErrInvalidEvent        = errors.New("invalid checkout event")
	ErrEventAlreadyHandled = errors.New("checkout already received a terminal event")
	ErrNoLazyOrder         = errors.New("checkout does not create orders on demand")
)

type openCheckout struct {
	ctx          context.Context
	scope        string
	presentation entities.CheckoutPresentation
	createOrder  interfaces.CreateOrderFunc
	events       chan entities.CheckoutEvent
	handled      atomic.Bool

	// serializes lazy order creation for double clicks
	mu sync.Mutex
}

// Broker is the rendezvous between an attempt waiting on the user and the
// browser driving the gateway UI over HTTP.
type Broker struct {
	mu   sync.RWMutex
	open map[string]*openCheckout
}

var _ interfaces.ICheckoutPresenter = (*Broker)(nil)

func NewBroker() *Broker {
	return &Broker{open: make(map[string]*openCheckout)}
}

// Present publishes the checkout for the attempt in ctx and blocks until the
// browser reports a terminal event or ctx is cancelled.
func (b *Broker) Present(ctx context.Context, p entities.CheckoutPresentation, createOrder interfaces.CreateOrderFunc) (entities.CheckoutEvent, error) {
	id := entities.AttemptIDFromContext(ctx)
	if id == "" {
		return entities.CheckoutEvent{}, ErrMissingAttemptID
	}
	p.AttemptID = id
	oc := &openCheckout{
		ctx:          ctx,
		scope:        entities.ScopeFromContext(ctx),
		presentation: p,
		createOrder:  createOrder,
		events:       make(chan entities.CheckoutEvent, 1),
	}

	b.mu.Lock()
	b.open[id] = oc
	b.mu.Unlock()
	defer func() {
		b.mu.Lock()
		delete(b.open, id)
		b.mu.Unlock()
	}()

	log.WithFields(log.Fields{"attempt_id": id, "gateway": p.Gateway}).Info("[checkout][broker] checkout presented")
	select {
	case ev := <-oc.events:
		log.WithFields(log.Fields{"attempt_id": id, "outcome": ev.Outcome}).Info("[checkout][broker] checkout event received")
		return ev, nil
	case <-ctx.Done():
		return entities.CheckoutEvent{}, ctx.Err()
	}
}

// Presentation returns what the browser should render for an attempt.
func (b *Broker) Presentation(ctx context.Context, attemptID string) (*entities.CheckoutPresentation, bool) {
	oc, err := b.lookup(ctx, attemptID)
	if err != nil {
		return nil, false
	}
	p := oc.presentation
	return &p, true
}

// Deliver hands a terminal browser event to the waiting attempt. Only the
// first event counts.
func (b *Broker) Deliver(ctx context.Context, attemptID string, ev entities.CheckoutEvent) error {
	if !ev.Outcome.Valid() {
		return ErrInvalidEvent
	}
	oc, err := b.lookup(ctx, attemptID)
	if err != nil {
		return err
	}
	if !oc.handled.CompareAndSwap(false, true) {
		return ErrEventAlreadyHandled
	}
	oc.events <- ev
	return nil
}

// CreateOrder runs the checkout's lazy order callback on the attempt's own
// context, so the order is created with the identity and scope of the attempt.
func (b *Broker) CreateOrder(ctx context.Context, attemptID string) (string, error) {
	oc, err := b.lookup(ctx, attemptID)
	if err != nil {
		return "", err
	}
	if oc.createOrder == nil {
		return "", ErrNoLazyOrder
	}

	oc.mu.Lock()
	defer oc.mu.Unlock()
	orderID, err := oc.createOrder(oc.ctx)
	if err != nil {
		log.WithField("attempt_id", attemptID).WithError(err).Warn("[checkout][broker] lazy order creation failed")
		return "", err
	}
	return orderID, nil
}

// lookup hides checkouts that belong to another scope.
func (b *Broker) lookup(ctx context.Context, attemptID string) (*openCheckout, error) {
	b.mu.RLock()
	oc, ok := b.open[attemptID]
	b.mu.RUnlock()
	if !ok || oc.scope != entities.ScopeFromContext(ctx) {
		return nil, ErrNoCheckout
	}
	return oc, nil
}
