package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/opsdesk/console/internal/types"
)

// categorize maps HTTP status codes to error categories.
// 4xx client errors (except 408/429) are irrecoverable; 5xx and anything
// unexpected is treated as transient.
func categorize(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}

// NewHTTPError builds a classified error for a non-2xx response. The body is
// probed for the backend's {"message": ...} shape so callers can surface the
// server-provided text.
func NewHTTPError(operation string, statusCode int, body []byte) *TransportError {
	msg := extractMessage(body)
	underlying := fmt.Errorf("%s failed: HTTP %d", operation, statusCode)
	if msg != "" {
		underlying = fmt.Errorf("%s failed: HTTP %d: %s", operation, statusCode, msg)
	}
	if statusCode == http.StatusNotFound {
		// Chain the shared sentinel so callers can match with errors.Is
		// instead of inspecting status codes.
		underlying = fmt.Errorf("%v: %w", underlying, types.ErrNotFound)
	}
	return &TransportError{
		Category:   categorize(statusCode),
		StatusCode: statusCode,
		Message:    msg,
		Underlying: underlying,
	}
}

// NewNetworkError builds a classified error for a network-level failure.
// Network errors are always recoverable as they may be transient.
func NewNetworkError(operation string, err error) *TransportError {
	return &TransportError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}

func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
