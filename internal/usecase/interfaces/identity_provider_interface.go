package interfaces

import (
	"context"

	"assessment_checkout/internal/domain/entities"
)

// IIdentityProvider resolves the signed-in user for the current request.
// It returns (nil, nil) when nobody is signed in.
type IIdentityProvider interface {
	CurrentUser(ctx context.Context) (*entities.User, error)
}
