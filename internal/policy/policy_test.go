package policy

import (
	"testing"

	"github.com/opsdesk/console/internal/types"
)

func TestAllowed_RouteTable(t *testing.T) {
	t.Parallel()
	cases := []struct {
		role  types.Role
		route Route
		want  bool
	}{
		{types.RoleAdmin, RouteDashboard, true},
		{types.RoleAdmin, RouteUsers, true},
		{types.RoleAdmin, RouteIntegrations, true},
		{types.RoleAdmin, RouteLogs, true},

		{types.RoleManager, RouteDashboard, true},
		{types.RoleManager, RouteTimesheets, true},
		{types.RoleManager, RouteIntegrations, true},
		{types.RoleManager, RouteUsers, false},
		{types.RoleManager, RouteLogs, false},

		{types.RoleEmployee, RouteEmails, true},
		{types.RoleEmployee, RouteTickets, true},
		{types.RoleEmployee, RouteUsers, false},
		{types.RoleEmployee, RouteIntegrations, false},
		{types.RoleEmployee, RouteLogs, false},
	}
	for _, tc := range cases {
		if got := Allowed(tc.role, tc.route); got != tc.want {
			t.Errorf("Allowed(%s, %s) = %v, want %v", tc.role, tc.route, got, tc.want)
		}
	}
}

func TestAllowed_UnknownRoute(t *testing.T) {
	t.Parallel()
	if Allowed(types.RoleAdmin, Route("does-not-exist")) {
		t.Fatal("unknown route must be denied")
	}
}

func TestAllowed_OpenRoutesForEveryRole(t *testing.T) {
	t.Parallel()
	open := []Route{RouteDashboard, RouteEmails, RouteTickets, RouteTimesheets}
	roles := []types.Role{types.RoleAdmin, types.RoleManager, types.RoleEmployee}
	for _, route := range open {
		for _, role := range roles {
			if !Allowed(role, route) {
				t.Errorf("Allowed(%s, %s) = false, want true", role, route)
			}
		}
	}
}

func TestDecide_Unauthenticated(t *testing.T) {
	t.Parallel()
	for _, route := range Routes() {
		d := Decide(false, "", route)
		if d.Allow {
			t.Fatalf("unauthenticated allowed on %s", route)
		}
		if d.RedirectTo != RouteLogin {
			t.Fatalf("unauthenticated on %s redirected to %s, want login", route, d.RedirectTo)
		}
	}
}

func TestDecide_DeniedRedirectsToDashboard(t *testing.T) {
	t.Parallel()
	d := Decide(true, types.RoleEmployee, RouteUsers)
	if d.Allow {
		t.Fatal("employee must not reach users")
	}
	if d.RedirectTo != RouteDashboard {
		t.Fatalf("denied redirect = %s, want dashboard", d.RedirectTo)
	}
}

func TestDecide_Allowed(t *testing.T) {
	t.Parallel()
	d := Decide(true, types.RoleManager, RouteIntegrations)
	if !d.Allow {
		t.Fatal("manager must reach integrations")
	}
}

func TestLandingRoute(t *testing.T) {
	t.Parallel()
	cases := map[types.Role]Route{
		types.RoleAdmin:    RouteDashboard,
		types.RoleManager:  RouteTimesheets,
		types.RoleEmployee: RouteEmails,
	}
	for role, want := range cases {
		if got := LandingRoute(role); got != want {
			t.Errorf("LandingRoute(%s) = %s, want %s", role, got, want)
		}
	}
}
