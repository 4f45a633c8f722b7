package identity

import (
	"context"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseProvider resolves the user from the Firebase ID token the browser
// forwards as a bearer token.
type FirebaseProvider struct {
	verifier tokenVerifier
}

var _ interfaces.IIdentityProvider = (*FirebaseProvider)(nil)

// InitFirebase initializes the Firebase Admin SDK from a service account file.
func InitFirebase(ctx context.Context, credPath string) (*FirebaseProvider, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credPath))
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &FirebaseProvider{verifier: client}, nil
}

// CurrentUser returns (nil, nil) when the request carries no token. A token
// that does not verify is treated as signed out.
func (p *FirebaseProvider) CurrentUser(ctx context.Context) (*entities.User, error) {
	token := entities.ClientInfoFromContext(ctx).IDToken
	if token == "" {
		return nil, nil
	}
	decoded, err := p.verifier.VerifyIDToken(ctx, token)
	if err != nil {
		log.WithError(err).Warn("[identity][firebase] id token rejected")
		return nil, nil
	}
	user := &entities.User{ID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		user.DisplayName = name
	}
	return user, nil
}
