package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Role is the access level attached to a user account.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// User represents an account record as served by the backend. The same shape
// doubles as the authenticated identity held by the session store.
type User struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Role       Role      `json:"role"`
	Department string    `json:"department,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DisplayName is the human-readable form used in logs and views.
func (u User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

// EmailStatus tracks how far an inbound email has moved through the
// email-to-ticket pipeline. The client reflects server state and never
// enforces the transition itself.
type EmailStatus string

const (
	EmailUnprocessed   EmailStatus = "UNPROCESSED"
	EmailProcessed     EmailStatus = "PROCESSED"
	EmailTicketCreated EmailStatus = "TICKET_CREATED"
	EmailFailed        EmailStatus = "FAILED"
)

// Email represents an inbound support email.
type Email struct {
	ID             int64       `json:"id"`
	Subject        string      `json:"subject"`
	Sender         string      `json:"sender"`
	Recipient      string      `json:"recipient"`
	ReceivedDate   time.Time   `json:"receivedDate"`
	Body           string      `json:"body"`
	Status         EmailStatus `json:"status"`
	HasAttachments bool        `json:"hasAttachments"`
}

type TicketType string

const (
	TicketIncident       TicketType = "INCIDENT"
	TicketServiceRequest TicketType = "SERVICE_REQUEST"
	TicketChangeRequest  TicketType = "CHANGE_REQUEST"
)

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketPending    TicketStatus = "PENDING"
	TicketResolved   TicketStatus = "RESOLVED"
	TicketClosed     TicketStatus = "CLOSED"
)

// Ticket represents a support ticket, optionally linked to the email it was
// created from (EmailID).
type Ticket struct {
	ID           int64        `json:"id"`
	TicketNumber string       `json:"ticketNumber"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Type         TicketType   `json:"type"`
	Priority     Priority     `json:"priority"`
	Status       TicketStatus `json:"status"`
	AssigneeID   *int64       `json:"assigneeId,omitempty"`
	AssigneeName string       `json:"assigneeName,omitempty"`
	ReporterID   int64        `json:"reporterId"`
	ReporterName string       `json:"reporterName"`
	EmailID      *int64       `json:"emailId,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	DueDate      *time.Time   `json:"dueDate,omitempty"`
}

// Comment is a ticket comment; append-only from the client's perspective.
type Comment struct {
	ID        int64     `json:"id"`
	TicketID  int64     `json:"ticketId"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatusHistoryEntry records a server-side ticket status transition.
type StatusHistoryEntry struct {
	ID         int64        `json:"id"`
	TicketID   int64        `json:"ticketId"`
	FromStatus TicketStatus `json:"fromStatus"`
	ToStatus   TicketStatus `json:"toStatus"`
	ChangedBy  string       `json:"changedBy"`
	ChangedAt  time.Time    `json:"changedAt"`
	Comment    string       `json:"comment,omitempty"`
}

type TimesheetStatus string

const (
	TimesheetDraft     TimesheetStatus = "DRAFT"
	TimesheetSubmitted TimesheetStatus = "SUBMITTED"
	TimesheetApproved  TimesheetStatus = "APPROVED"
	TimesheetRejected  TimesheetStatus = "REJECTED"
)

// Timesheet is one day's logged hours, optionally against a ticket.
// Lifecycle: DRAFT -> SUBMITTED -> APPROVED|REJECTED, enforced server-side.
type Timesheet struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"userId"`
	UserName     string          `json:"userName"`
	TicketID     *int64          `json:"ticketId,omitempty"`
	TicketNumber string          `json:"ticketNumber,omitempty"`
	Date         string          `json:"date"`
	HoursLogged  float64         `json:"hoursLogged"`
	Description  string          `json:"description"`
	Status       TimesheetStatus `json:"status"`
	ApprovedBy   *int64          `json:"approvedBy,omitempty"`
	ApproverName string          `json:"approverName,omitempty"`
	ApprovedAt   *time.Time      `json:"approvedAt,omitempty"`
	Comments     string          `json:"comments,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type IntegrationType string

const (
	IntegrationJira  IntegrationType = "JIRA"
	IntegrationSlack IntegrationType = "SLACK"
	IntegrationTeams IntegrationType = "TEAMS"
)

// Integration is a third-party connector. The API token is write-only: it is
// carried on UpdateIntegrationRequest and never present on the entity the
// backend returns.
type Integration struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Type         IntegrationType `json:"type"`
	APIURL       string          `json:"apiUrl"`
	IsActive     bool            `json:"isActive"`
	LastSyncedAt *time.Time      `json:"lastSyncedAt,omitempty"`
}

type LogStatus string

const (
	LogSuccess LogStatus = "SUCCESS"
	LogFailure LogStatus = "FAILURE"
	LogWarning LogStatus = "WARNING"
)

// IntegrationLog is an append-only, server-generated sync record.
type IntegrationLog struct {
	ID              int64     `json:"id"`
	IntegrationID   int64     `json:"integrationId"`
	IntegrationName string    `json:"integrationName"`
	Action          string    `json:"action"`
	Status          LogStatus `json:"status"`
	Message         string    `json:"message"`
	Timestamp       time.Time `json:"timestamp"`
}

type LogLevel string

const (
	LevelInfo    LogLevel = "INFO"
	LevelWarning LogLevel = "WARNING"
	LevelError   LogLevel = "ERROR"
	LevelDebug   LogLevel = "DEBUG"
)

// SystemLog is an append-only service log line.
type SystemLog struct {
	ID          int64     `json:"id"`
	ServiceName string    `json:"serviceName"`
	Level       LogLevel  `json:"level"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	Details     string    `json:"details,omitempty"`
}

// ErrorLog is an append-only error record.
type ErrorLog struct {
	ID           int64     `json:"id"`
	ServiceName  string    `json:"serviceName"`
	ErrorType    string    `json:"errorType"`
	ErrorMessage string    `json:"errorMessage"`
	StackTrace   string    `json:"stackTrace,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	UserID       *int64    `json:"userId,omitempty"`
}

// DashboardMetrics is a read-only aggregate recomputed on each fetch.
type DashboardMetrics struct {
	TotalEmails         int     `json:"totalEmails"`
	EmailsProcessed     int     `json:"emailsProcessed"`
	EmailsPending       int     `json:"emailsPending"`
	TotalTickets        int     `json:"totalTickets"`
	TicketsOpen         int     `json:"ticketsOpen"`
	TicketsClosed       int     `json:"ticketsClosed"`
	TotalTimesheets     int     `json:"totalTimesheets"`
	TimesheetsPending   int     `json:"timesheetsPending"`
	TimesheetsApproved  int     `json:"timesheetsApproved"`
	HoursLoggedThisWeek float64 `json:"hoursLoggedThisWeek"`
}

// ChartPoint is one named value in a dashboard chart series.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
