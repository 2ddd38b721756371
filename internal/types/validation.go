package types

import "fmt"

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when the backend has no entity for a given id.
var ErrNotFound = fmt.Errorf("entity not found")

// ValidationError reports a client-side rule violation detected before any
// network call is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// ------------------------------
// Client-side validation
// ------------------------------

// ValidateLogin enforces the only client-side credential rule: non-empty.
func ValidateLogin(username, password string) error {
	if username == "" {
		return &ValidationError{Field: "username", Message: "must not be empty"}
	}
	if password == "" {
		return &ValidationError{Field: "password", Message: "must not be empty"}
	}
	return nil
}

// ValidateRejectComments enforces that a rejection carries an explanation.
// Approval comments stay optional.
func ValidateRejectComments(comments string) error {
	if comments == "" {
		return &ValidationError{Field: "comments", Message: "rejection requires comments"}
	}
	return nil
}

// ValidateHours bounds a timesheet entry to a single day.
func ValidateHours(hours float64) error {
	if hours < 0 || hours > 24 {
		return &ValidationError{Field: "hoursLogged", Message: "must be between 0 and 24"}
	}
	return nil
}

// ParseRole maps a wire string to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
