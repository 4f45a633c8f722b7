package identity

import (
	"context"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"
)

// MockProvider signs in every request that carries a bearer token as the
// configured user. Used with AUTH_MOCK for local development.
type MockProvider struct {
	User entities.User
}

var _ interfaces.IIdentityProvider = (*MockProvider)(nil)

func NewMockProvider(user entities.User) *MockProvider {
	if user.ID == "" {
		user.ID = "dev-user"
	}
	if user.Email == "" {
		user.Email = "dev@example.com"
	}
	return &MockProvider{User: user}
}

func (p *MockProvider) CurrentUser(ctx context.Context) (*entities.User, error) {
	if entities.ClientInfoFromContext(ctx).IDToken == "" {
		return nil, nil
	}
	u := p.User
	return &u, nil
}
