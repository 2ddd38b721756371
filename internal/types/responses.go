package types

// ------------------------------
// Response Types
// ------------------------------

// LoginResponse is the payload of a successful POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorResponse is the backend's error body shape. Message is surfaced to
// callers when present; a generic fallback is used otherwise.
type ErrorResponse struct {
	Message string `json:"message"`
}

// PagedEmails wraps the paginated /emails list shape.
type PagedEmails struct {
	Content       []Email `json:"content"`
	TotalElements int     `json:"totalElements"`
}

// PagedTickets wraps the paginated /tickets list shape.
type PagedTickets struct {
	Content       []Ticket `json:"content"`
	TotalElements int      `json:"totalElements"`
}

// PagedSystemLogs wraps the paginated /logs/system list shape.
type PagedSystemLogs struct {
	Content       []SystemLog `json:"content"`
	TotalElements int         `json:"totalElements"`
}

// PagedErrorLogs wraps the paginated /logs/error list shape.
type PagedErrorLogs struct {
	Content       []ErrorLog `json:"content"`
	TotalElements int        `json:"totalElements"`
}
