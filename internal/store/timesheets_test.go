package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/opsdesk/console/internal/session"
	"github.com/opsdesk/console/internal/types"
)

func loggedInSession(t *testing.T, username string) *session.Store {
	t.Helper()
	s := session.New(session.NewMemStorage(), session.DemoAuthenticator{})
	if _, err := s.Login(context.Background(), username, "password"); err != nil {
		t.Fatalf("demo login %s: %v", username, err)
	}
	return s
}

func TestTimesheets_EmployeeFetchIsSelfScoped(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// sarah.williams is seed account id 2; her session must pin the
		// filter to her own records whatever the caller asked for.
		if got := r.URL.Query().Get("userId"); got != "2" {
			t.Errorf("userId = %q, want 2", got)
		}
		_ = json.NewEncoder(w).Encode([]types.Timesheet{{ID: 1, UserID: 2}})
	}))
	defer srv.Close()

	s := NewTimesheets(srv.Client(), srv.URL, inlineExec{}, loggedInSession(t, "sarah.williams"))

	otherUser := int64(6)
	if _, err := s.Fetch(context.Background(), types.TimesheetFilter{UserID: &otherUser}); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
}

func TestTimesheets_ManagerFetchIsUnconstrained(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("userId") {
			t.Errorf("userId = %q, manager fetch must pass the filter through", r.URL.Query().Get("userId"))
		}
		_ = json.NewEncoder(w).Encode([]types.Timesheet{})
	}))
	defer srv.Close()

	s := NewTimesheets(srv.Client(), srv.URL, inlineExec{}, loggedInSession(t, "david.manager"))
	if _, err := s.Fetch(context.Background(), types.TimesheetFilter{}); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
}

func TestTimesheets_FetchWithoutSessionIsRefused(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unauthenticated fetch must not reach the backend")
	}))
	defer srv.Close()

	sess := session.New(session.NewMemStorage(), session.DemoAuthenticator{})
	s := NewTimesheets(srv.Client(), srv.URL, inlineExec{}, sess)

	_, err := s.Fetch(context.Background(), types.TimesheetFilter{})
	if !errors.Is(err, session.ErrNotAuthenticated) {
		t.Fatalf("got %v, want ErrNotAuthenticated", err)
	}
}

func TestTimesheets_SelectLoadsSingleEntry(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/timesheets/7" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.Timesheet{ID: 7, UserID: 2, Status: types.TimesheetDraft})
	}))
	defer srv.Close()

	s := NewTimesheets(srv.Client(), srv.URL, inlineExec{}, loggedInSession(t, "sarah.williams"))
	if _, ok := s.Selected(); ok {
		t.Fatal("selection present before Select")
	}
	ts, err := s.Select(context.Background(), 7)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if ts.ID != 7 {
		t.Errorf("timesheet = %+v", ts)
	}
	sel, ok := s.Selected()
	if !ok || sel.ID != 7 {
		t.Errorf("Selected() = %+v ok=%v", sel, ok)
	}
}

func TestTimesheets_RejectRequiresCommentsBeforeNetwork(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("rejection without comments must not reach the backend")
	}))
	defer srv.Close()

	s := NewTimesheets(srv.Client(), srv.URL, inlineExec{}, loggedInSession(t, "david.manager"))
	err := s.Reject(context.Background(), 5, "")
	var ve *types.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if ve.Field != "comments" {
		t.Errorf("field = %s", ve.Field)
	}
}

func TestTimesheets_RejectRefetchesWithLastFilter(t *testing.T) {
	t.Parallel()
	var listCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			listCalls.Add(1)
			if got := r.URL.Query().Get("status"); got != "SUBMITTED" {
				t.Errorf("refetch status = %q, want the remembered filter", got)
			}
			_ = json.NewEncoder(w).Encode([]types.Timesheet{{ID: 5, Status: types.TimesheetRejected}})
		case strings.HasSuffix(r.URL.Path, "/reject"):
			_ = json.NewEncoder(w).Encode(types.Timesheet{ID: 5, Status: types.TimesheetRejected})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	s := NewTimesheets(srv.Client(), srv.URL, inlineExec{}, loggedInSession(t, "david.manager"))
	if _, err := s.Fetch(context.Background(), types.TimesheetFilter{Status: types.TimesheetSubmitted}); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if err := s.Reject(context.Background(), 5, "hours do not match the ticket log"); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	if got := listCalls.Load(); got != 2 {
		t.Errorf("list calls = %d, want initial fetch plus post-reject refetch", got)
	}
	items := s.Items()
	if len(items) != 1 || items[0].Status != types.TimesheetRejected {
		t.Errorf("items = %+v", items)
	}
}

func TestTimesheets_ApproveRefetches(t *testing.T) {
	t.Parallel()
	var listCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			listCalls.Add(1)
			_ = json.NewEncoder(w).Encode([]types.Timesheet{{ID: 5, Status: types.TimesheetApproved}})
		case strings.HasSuffix(r.URL.Path, "/approve"):
			_ = json.NewEncoder(w).Encode(types.Timesheet{ID: 5, Status: types.TimesheetApproved})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	s := NewTimesheets(srv.Client(), srv.URL, inlineExec{}, loggedInSession(t, "david.manager"))
	if _, err := s.Fetch(context.Background(), types.TimesheetFilter{}); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	// Approval comments are optional.
	if err := s.Approve(context.Background(), 5, ""); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if got := listCalls.Load(); got != 2 {
		t.Errorf("list calls = %d", got)
	}
}

func TestTimesheets_CreateValidatesHours(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("out-of-range hours must not reach the backend")
	}))
	defer srv.Close()

	s := NewTimesheets(srv.Client(), srv.URL, inlineExec{}, loggedInSession(t, "sarah.williams"))
	_, err := s.Create(context.Background(), types.CreateTimesheetRequest{Date: "2025-08-20", HoursLogged: 30})
	var ve *types.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}
