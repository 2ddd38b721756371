package console

import (
	"errors"

	errsx "github.com/opsdesk/console/internal/errors"
	"github.com/opsdesk/console/internal/session"
	"github.com/opsdesk/console/internal/syncqueue"
	"github.com/opsdesk/console/internal/types"
)

// ErrBackPressure is returned when the client's internal write queue is full.
var ErrBackPressure = syncqueue.ErrQueueFull

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// Re-export shared SDK errors so callers compare against a single symbol.
// ErrNotFound matches any classified 404 response; ErrNotAuthenticated
// matches session-dependent calls made with no current identity.
var (
	ErrNotFound         = types.ErrNotFound
	ErrNotAuthenticated = session.ErrNotAuthenticated
)

// IsNotAuthenticated reports whether err means a missing session identity.
func IsNotAuthenticated(err error) bool { return errors.Is(err, ErrNotAuthenticated) }

// AuthError reports rejected credentials; its Message is user-visible.
type AuthError = session.AuthError

// IsAuthError reports whether err is a credential rejection.
func IsAuthError(err error) bool { return session.IsAuthError(err) }

// ValidationError reports a client-side rule violation caught before any
// network call.
type ValidationError = types.ValidationError

// IsValidationError reports whether err is a client-side validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TransportError wraps a failed backend call (non-2xx or network failure).
type TransportError = errsx.TransportError

// IsTransportError reports whether err is a backend transport failure.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
