package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/infrastructure/metrics"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const DefaultRetention = 30 * time.Minute

var ErrAttemptNotFound = errors.New("payment attempt not found")

type attempt struct {
	id      string
	scope   string
	key     string
	gateway entities.Gateway
	done    chan struct{}
	result  entities.PaymentResult
}

// Attempts runs payment attempts in the background so they outlive the HTTP
// request that started them. Finished attempts are kept for retention.
type Attempts struct {
	broker    *Broker
	retention time.Duration

	mu       sync.RWMutex
	attempts map[string]*attempt
	// running maps scope+key to the unfinished attempt for that key.
	running map[string]string
}

// AttemptKey identifies one payment flow within a scope.
func AttemptKey(gateway entities.Gateway, sessionID, testID string) string {
	return string(gateway) + "|" + sessionID + "|" + testID
}

func NewAttempts(broker *Broker, retention time.Duration) *Attempts {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Attempts{
		broker:    broker,
		retention: retention,
		attempts:  make(map[string]*attempt),
		running:   make(map[string]string),
	}
}

// Start launches run on a context detached from ctx's cancellation but
// carrying its values (scope, client info, identity). While an attempt for the
// same non-empty key is unfinished in the scope, Start returns that attempt
// with joined=true instead of launching another, so a browser that lost the
// attempt id gets the open checkout back.
func (a *Attempts) Start(ctx context.Context, key string, gateway entities.Gateway, run func(ctx context.Context) entities.PaymentResult) (id string, joined bool) {
	scope := entities.ScopeFromContext(ctx)
	runningKey := ""
	if key != "" {
		runningKey = scope + "#" + key
	}

	a.mu.Lock()
	if runningKey != "" {
		if existing, ok := a.running[runningKey]; ok {
			a.mu.Unlock()
			log.WithFields(log.Fields{"attempt_id": existing, "gateway": gateway}).Info("[checkout][attempts] joined running attempt")
			return existing, true
		}
	}
	id = uuid.NewString()
	at := &attempt{
		id:      id,
		scope:   scope,
		key:     runningKey,
		gateway: gateway,
		done:    make(chan struct{}),
	}
	a.attempts[id] = at
	if runningKey != "" {
		a.running[runningKey] = id
	}
	a.mu.Unlock()

	attemptCtx := entities.WithAttemptID(context.WithoutCancel(ctx), id)
	metrics.ActiveAttempts.Inc()
	log.WithFields(log.Fields{"attempt_id": id, "gateway": gateway}).Info("[checkout][attempts] attempt started")

	go func() {
		defer metrics.ActiveAttempts.Dec()
		res := run(attemptCtx)
		at.result = res
		a.release(at)
		close(at.done)
		log.WithFields(log.Fields{"attempt_id": id, "success": res.Success, "cancelled": res.Cancelled, "kind": res.Kind}).Info("[checkout][attempts] attempt finished")
		time.AfterFunc(a.retention, func() { a.forget(id) })
	}()
	return id, false
}

func (a *Attempts) release(at *attempt) {
	if at.key == "" {
		return
	}
	a.mu.Lock()
	if a.running[at.key] == at.id {
		delete(a.running, at.key)
	}
	a.mu.Unlock()
}

// Get reports the attempt as seen by the browser. A pending attempt carries
// the checkout it is waiting on, if one is open.
func (a *Attempts) Get(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	at, err := a.lookup(ctx, id)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	return a.view(ctx, at), nil
}

// Wait blocks until the attempt finishes, d elapses or ctx ends, and returns
// the attempt's state at that point.
func (a *Attempts) Wait(ctx context.Context, id string, d time.Duration) (entities.PaymentAttempt, error) {
	at, err := a.lookup(ctx, id)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-at.done:
	case <-t.C:
	case <-ctx.Done():
	}
	return a.view(ctx, at), nil
}

func (a *Attempts) view(ctx context.Context, at *attempt) entities.PaymentAttempt {
	out := entities.PaymentAttempt{ID: at.id, Gateway: at.gateway, Status: entities.AttemptPending}
	select {
	case <-at.done:
		res := at.result
		out.Status = entities.AttemptFinished
		out.Result = &res
	default:
		if p, ok := a.broker.Presentation(ctx, at.id); ok {
			out.Presentation = p
		}
	}
	return out
}

func (a *Attempts) lookup(ctx context.Context, id string) (*attempt, error) {
	a.mu.RLock()
	at, ok := a.attempts[id]
	a.mu.RUnlock()
	if !ok || at.scope != entities.ScopeFromContext(ctx) {
		return nil, ErrAttemptNotFound
	}
	return at, nil
}

func (a *Attempts) forget(id string) {
	a.mu.Lock()
	delete(a.attempts, id)
	a.mu.Unlock()
}
