package interfaces

import (
	"context"
	"time"
)

// IKeyValueStore is the checkout-scoped storage the session state lives in.
//
// Implementations partition keys by the scope found in ctx
// (entities.ScopeFromContext). A zero ttl means the value does not expire.
// Writes are last-write-wins.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
