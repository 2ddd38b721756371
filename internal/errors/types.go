// Package errors provides error classification for the console client.
// The write queue uses the category to decide whether a failed backend call
// may be retried.
package errors

import "fmt"

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: 5xx responses, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail immediately without retry.
	// Examples: 400 Bad Request, 401 Unauthorized, 403 Forbidden, 404.
	Irrecoverable
)

func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// TransportError wraps a failed backend call with categorization metadata.
// It covers both non-2xx responses and network-level failures.
type TransportError struct {
	Category   ErrorCategory
	StatusCode int    // zero for network-level failures
	Message    string // backend-provided message, if any
	Underlying error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *TransportError) Unwrap() error {
	return e.Underlying
}

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	if te, ok := err.(*TransportError); ok {
		return te.Category == Irrecoverable
	}
	return false
}
