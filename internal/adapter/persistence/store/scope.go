package store

import (
	"context"
	"errors"
	"strings"

	"assessment_checkout/internal/domain/entities"
)

var ErrMissingScope = errors.New("checkout scope missing from context")

const keyPrefix = "checkout"

// scopedKey prefixes key with the checkout scope bound to ctx, so two browsers
// never see each other's payment state.
func scopedKey(ctx context.Context, key string) (string, error) {
	scope := strings.TrimSpace(entities.ScopeFromContext(ctx))
	if scope == "" {
		return "", ErrMissingScope
	}
	return keyPrefix + ":" + scope + ":" + key, nil
}
