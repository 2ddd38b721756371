package console

import (
	"github.com/opsdesk/console/internal/policy"
	"github.com/opsdesk/console/internal/session"
	"github.com/opsdesk/console/internal/store"
	"github.com/opsdesk/console/internal/types"
)

// Public type aliases so SDK consumers can import only the console package.

// Domain entities
type (
	Role               = types.Role
	User               = types.User
	Email              = types.Email
	EmailStatus        = types.EmailStatus
	Ticket             = types.Ticket
	TicketType         = types.TicketType
	TicketStatus       = types.TicketStatus
	Priority           = types.Priority
	Comment            = types.Comment
	StatusHistoryEntry = types.StatusHistoryEntry
	Timesheet          = types.Timesheet
	TimesheetStatus    = types.TimesheetStatus
	Integration        = types.Integration
	IntegrationType    = types.IntegrationType
	IntegrationLog     = types.IntegrationLog
	SystemLog          = types.SystemLog
	ErrorLog           = types.ErrorLog
	DashboardMetrics   = types.DashboardMetrics
	ChartPoint         = types.ChartPoint
)

// Roles
const (
	RoleAdmin    = types.RoleAdmin
	RoleManager  = types.RoleManager
	RoleEmployee = types.RoleEmployee
)

// Requests and filters
type (
	CreateTicketRequest      = types.CreateTicketRequest
	UpdateTicketRequest      = types.UpdateTicketRequest
	CreateTimesheetRequest   = types.CreateTimesheetRequest
	UpdateTimesheetRequest   = types.UpdateTimesheetRequest
	CreateUserRequest        = types.CreateUserRequest
	UpdateUserRequest        = types.UpdateUserRequest
	UpdateIntegrationRequest = types.UpdateIntegrationRequest

	EmailFilter          = types.EmailFilter
	TicketFilter         = types.TicketFilter
	TimesheetFilter      = types.TimesheetFilter
	IntegrationLogFilter = types.IntegrationLogFilter
	SystemLogFilter      = types.SystemLogFilter
)

// Stores
type (
	EmailStore       = store.Emails
	TicketStore      = store.Tickets
	TimesheetStore   = store.Timesheets
	UserStore        = store.Users
	IntegrationStore = store.Integrations
	LogStore         = store.Logs
	DashboardStore   = store.Dashboard
	StoreStatus      = store.Status
)

// Store status values
const (
	StatusIdle    = store.StatusIdle
	StatusLoading = store.StatusLoading
	StatusError   = store.StatusError
)

// Session
type (
	SessionStore  = session.Store
	Storage       = session.Storage
	Authenticator = session.Authenticator
)

// NewFileStorage opens (or creates) file-backed session persistence.
var NewFileStorage = session.NewFileStorage

// NewMemStorage returns in-memory session storage for tests and throwaway
// sessions.
var NewMemStorage = session.NewMemStorage

// Policy
type (
	Route    = policy.Route
	Decision = policy.Decision
)

const (
	RouteLogin        = policy.RouteLogin
	RouteDashboard    = policy.RouteDashboard
	RouteEmails       = policy.RouteEmails
	RouteTickets      = policy.RouteTickets
	RouteTimesheets   = policy.RouteTimesheets
	RouteUsers        = policy.RouteUsers
	RouteIntegrations = policy.RouteIntegrations
	RouteLogs         = policy.RouteLogs
)

// Allowed reports whether role may reach target; the pure policy rule of the
// route table.
func Allowed(role Role, target Route) bool { return policy.Allowed(role, target) }

// Decide composes the authentication and role rules for one navigation
// attempt.
func Decide(authenticated bool, role Role, target Route) Decision {
	return policy.Decide(authenticated, role, target)
}

// LandingRoute is the one-time post-login destination for a role.
func LandingRoute(role Role) Route { return policy.LandingRoute(role) }

// ProtectedRoutes lists every route in the static gating table.
func ProtectedRoutes() []Route { return policy.Routes() }
