// Package policy is the single source of truth for role-based access in the
// console. The route table is static configuration; views consult Decide
// before rendering anything role-sensitive instead of branching on the role
// themselves.
package policy

import "github.com/opsdesk/console/internal/types"

// Route identifies a navigable view of the console.
type Route string

const (
	RouteLogin        Route = "login"
	RouteDashboard    Route = "dashboard"
	RouteEmails       Route = "emails"
	RouteTickets      Route = "tickets"
	RouteTimesheets   Route = "timesheets"
	RouteUsers        Route = "users"
	RouteIntegrations Route = "integrations"
	RouteLogs         Route = "logs"
)

// requiredRoles gates each protected route. A nil entry means any
// authenticated role.
var requiredRoles = map[Route][]types.Role{
	RouteDashboard:    nil,
	RouteEmails:       nil,
	RouteTickets:      nil,
	RouteTimesheets:   nil,
	RouteUsers:        {types.RoleAdmin},
	RouteIntegrations: {types.RoleAdmin, types.RoleManager},
	RouteLogs:         {types.RoleAdmin},
}

// Routes lists every protected route in the table.
func Routes() []Route {
	return []Route{
		RouteDashboard, RouteEmails, RouteTickets, RouteTimesheets,
		RouteUsers, RouteIntegrations, RouteLogs,
	}
}

// RequiredRoles returns the gating set for a route; empty means any
// authenticated role.
func RequiredRoles(route Route) []types.Role {
	return requiredRoles[route]
}

// Allowed reports whether role may reach target. The rule is pure: allowed
// iff the route's required-role set is empty or contains role.
func Allowed(role types.Role, target Route) bool {
	required, known := requiredRoles[target]
	if !known {
		return false
	}
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}

// Decision is the outcome of a navigation check. When Allow is false the
// view must render RedirectTo instead of the requested route; a denied
// identity is never shown a partial page.
type Decision struct {
	Allow      bool
	RedirectTo Route
}

// Decide composes the authentication and role rules for one navigation
// attempt: unauthenticated goes to login, an authenticated identity lacking
// the role goes to the dashboard.
func Decide(authenticated bool, role types.Role, target Route) Decision {
	if !authenticated {
		return Decision{RedirectTo: RouteLogin}
	}
	if !Allowed(role, target) {
		return Decision{RedirectTo: RouteDashboard}
	}
	return Decision{Allow: true}
}

// LandingRoute is the one-time post-login destination per role. It is a
// routing convenience, not an access rule.
func LandingRoute(role types.Role) Route {
	switch role {
	case types.RoleManager:
		return RouteTimesheets
	case types.RoleEmployee:
		return RouteEmails
	default:
		return RouteDashboard
	}
}
