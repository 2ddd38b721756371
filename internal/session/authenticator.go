package session

import (
	"context"
	"errors"

	"github.com/opsdesk/console/internal/api"
	"github.com/opsdesk/console/internal/demo"
	errsx "github.com/opsdesk/console/internal/errors"
	"github.com/opsdesk/console/internal/types"
)

// genericLoginMessage is surfaced when the backend rejects credentials
// without an explanation of its own.
const genericLoginMessage = "Invalid username or password"

// ErrNotAuthenticated is returned by operations that need a current identity
// when the session holds none.
var ErrNotAuthenticated = errors.New("session: not authenticated")

// AuthError reports rejected credentials. Message is user-visible.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return "authentication failed: " + e.Message }

// IsAuthError reports whether err is a credential rejection.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// Authenticator exchanges credentials for an identity and session token.
// Implementations: BackendAuthenticator (POST /auth/login) and
// DemoAuthenticator (offline seed accounts).
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (types.User, string, error)
}

// BackendAuthenticator authenticates against the live backend.
type BackendAuthenticator struct {
	HTTP    api.HTTPClient
	BaseURL string
}

func (b *BackendAuthenticator) Authenticate(ctx context.Context, username, password string) (types.User, string, error) {
	resp, err := api.Login(ctx, b.HTTP, b.BaseURL, types.LoginRequest{Username: username, Password: password})
	if err != nil {
		var te *errsx.TransportError
		if errors.As(err, &te) && te.Category == errsx.Irrecoverable {
			msg := te.Message
			if msg == "" {
				msg = genericLoginMessage
			}
			return types.User{}, "", &AuthError{Message: msg}
		}
		// Network failures and 5xx responses are not credential problems.
		return types.User{}, "", err
	}
	return resp.User, resp.Token, nil
}

// DemoAuthenticator is the explicit test identity provider: it checks the
// fixed demo password against the seed account list without touching the
// network. It is only wired in when demo mode is requested by configuration.
type DemoAuthenticator struct{}

func (DemoAuthenticator) Authenticate(_ context.Context, username, password string) (types.User, string, error) {
	user, ok := demo.FindUser(username)
	if !ok || password != demo.Password {
		return types.User{}, "", &AuthError{Message: genericLoginMessage}
	}
	return user, demo.Token(username), nil
}
