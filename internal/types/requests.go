package types

import "time"

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest carries the credentials for POST /auth/login. Both fields are
// opaque strings; the only client-side rule is non-empty.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateTicketRequest holds parameters for a new ticket.
type CreateTicketRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        TicketType `json:"type"`
	Priority    Priority   `json:"priority"`
	AssigneeID  *int64     `json:"assigneeId,omitempty"`
	EmailID     *int64     `json:"emailId,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// UpdateTicketRequest holds the mutable ticket fields for PUT /tickets/{id}.
type UpdateTicketRequest struct {
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Type        TicketType    `json:"type,omitempty"`
	Priority    Priority      `json:"priority,omitempty"`
	Status      TicketStatus  `json:"status,omitempty"`
	AssigneeID  *int64        `json:"assigneeId,omitempty"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
}

// AddCommentRequest holds a new ticket comment body.
type AddCommentRequest struct {
	Content string `json:"content"`
}

// CreateTimesheetRequest holds parameters for a new timesheet entry.
type CreateTimesheetRequest struct {
	TicketID    *int64  `json:"ticketId,omitempty"`
	Date        string  `json:"date"`
	HoursLogged float64 `json:"hoursLogged"`
	Description string  `json:"description"`
}

// UpdateTimesheetRequest holds the mutable timesheet fields. Only the owning
// employee may edit, and only while the entry is still a draft; the backend
// is the authority on both rules.
type UpdateTimesheetRequest struct {
	TicketID    *int64  `json:"ticketId,omitempty"`
	Date        string  `json:"date,omitempty"`
	HoursLogged float64 `json:"hoursLogged,omitempty"`
	Description string  `json:"description,omitempty"`
}

// ReviewRequest carries the approver's comments for approve/reject calls.
// Comments are optional for approval and mandatory for rejection.
type ReviewRequest struct {
	Comments string `json:"comments,omitempty"`
}

// CreateUserRequest holds parameters for a new account.
type CreateUserRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	Password   string `json:"password"`
}

// UpdateUserRequest holds the mutable account fields.
type UpdateUserRequest struct {
	Email      string `json:"email,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Role       Role   `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
	IsActive   *bool  `json:"isActive,omitempty"`
}

// UpdateIntegrationRequest holds the mutable connector fields. APIToken is
// write-only: the backend accepts it here and never echoes it back.
type UpdateIntegrationRequest struct {
	Name     string `json:"name,omitempty"`
	APIURL   string `json:"apiUrl,omitempty"`
	APIToken string `json:"apiToken,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// ------------------------------
// Filter Types
// ------------------------------

// EmailFilter narrows GET /emails.
type EmailFilter struct {
	Status EmailStatus
	Page   int
	Size   int
}

// TicketFilter narrows GET /tickets.
type TicketFilter struct {
	Status     TicketStatus
	AssigneeID *int64
	Page       int
	Size       int
}

// TimesheetFilter narrows GET /timesheets. UserID is force-set client-side
// for EMPLOYEE sessions regardless of what the caller supplies.
type TimesheetFilter struct {
	UserID    *int64
	Status    TimesheetStatus
	StartDate string
	EndDate   string
}

// IntegrationLogFilter narrows GET /integrations/logs.
type IntegrationLogFilter struct {
	IntegrationID *int64
	Status        LogStatus
	StartDate     string
	EndDate       string
}

// SystemLogFilter narrows GET /logs/system and GET /logs/error.
type SystemLogFilter struct {
	ServiceName string
	Level       LogLevel
	StartDate   string
	EndDate     string
	Page        int
	Size        int
}
