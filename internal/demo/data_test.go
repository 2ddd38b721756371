package demo

import (
	"strings"
	"testing"

	"github.com/opsdesk/console/internal/types"
)

func TestFindUser(t *testing.T) {
	t.Parallel()
	u, ok := FindUser("admin")
	if !ok {
		t.Fatal("admin seed account missing")
	}
	if u.Role != types.RoleAdmin || u.ID != 1 {
		t.Errorf("admin = %+v", u)
	}
	if _, ok := FindUser("nobody"); ok {
		t.Fatal("unknown username resolved")
	}
}

func TestSeedAccountsCoverEveryRole(t *testing.T) {
	t.Parallel()
	seen := map[types.Role]bool{}
	for _, u := range Users() {
		seen[u.Role] = true
	}
	for _, role := range []types.Role{types.RoleAdmin, types.RoleManager, types.RoleEmployee} {
		if !seen[role] {
			t.Errorf("no seed account with role %s", role)
		}
	}
}

func TestToken_DeterministicPerUsername(t *testing.T) {
	t.Parallel()
	if Token("admin") != Token("admin") {
		t.Fatal("token not deterministic")
	}
	if Token("admin") == Token("sarah.williams") {
		t.Fatal("tokens collide across usernames")
	}
	if !strings.HasPrefix(Token("admin"), "demo-token-") {
		t.Errorf("token = %q", Token("admin"))
	}
}

func TestDatasets_ReturnFreshCopies(t *testing.T) {
	t.Parallel()
	first := Tickets()
	if len(first) == 0 {
		t.Fatal("empty seed tickets")
	}
	first[0].Title = "mutated"
	if Tickets()[0].Title == "mutated" {
		t.Fatal("caller mutation leaked into the seed dataset")
	}
}

func TestTimesheets_ContainSubmittedEntryForReview(t *testing.T) {
	t.Parallel()
	for _, ts := range Timesheets() {
		if ts.Status == types.TimesheetSubmitted {
			return
		}
	}
	t.Fatal("seed timesheets have nothing for a manager to review")
}
