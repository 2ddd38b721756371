package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opsdesk/console/internal/types"
)

func TestListTickets_PagedResponse(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tickets" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("status"); got != "OPEN" {
			t.Errorf("status = %q", got)
		}
		_ = json.NewEncoder(w).Encode(types.PagedTickets{
			Content:       []types.Ticket{{ID: 1, TicketNumber: "INC-2025-001"}},
			TotalElements: 27,
		})
	}))
	defer srv.Close()

	page, err := ListTickets(context.Background(), srv.Client(), srv.URL, types.TicketFilter{Status: types.TicketOpen})
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if page.TotalElements != 27 || len(page.Content) != 1 {
		t.Errorf("page = %+v", page)
	}
}

func TestCreateTicket_ExpectsCreated(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tickets" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.Ticket{ID: 9, Title: "Printer down"})
	}))
	defer srv.Close()

	tk, err := CreateTicket(context.Background(), srv.Client(), srv.URL, types.CreateTicketRequest{
		Title: "Printer down", Type: types.TicketIncident, Priority: types.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}
	if tk.ID != 9 {
		t.Errorf("id = %d", tk.ID)
	}
}

func TestCreateTicket_OKStatusIsAnError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.Ticket{ID: 9})
	}))
	defer srv.Close()

	if _, err := CreateTicket(context.Background(), srv.Client(), srv.URL, types.CreateTicketRequest{Title: "x"}); err == nil {
		t.Fatal("200 accepted where 201 is required")
	}
}

func TestAddComment(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tickets/4/comments" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req types.AddCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.Comment{ID: 100, Content: req.Content})
	}))
	defer srv.Close()

	c, err := AddComment(context.Background(), srv.Client(), srv.URL, 4, "escalating to network team")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if c.Content != "escalating to network team" {
		t.Errorf("content = %q", c.Content)
	}
}

func TestListStatusHistory(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tickets/4/history" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]types.StatusHistoryEntry{
			{ID: 1, FromStatus: types.TicketOpen, ToStatus: types.TicketInProgress},
		})
	}))
	defer srv.Close()

	history, err := ListStatusHistory(context.Background(), srv.Client(), srv.URL, 4)
	if err != nil {
		t.Fatalf("ListStatusHistory: %v", err)
	}
	if len(history) != 1 || history[0].ToStatus != types.TicketInProgress {
		t.Errorf("history = %+v", history)
	}
}

func TestUpdateEmailStatus_PatchPath(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/emails/8/status" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.Email{ID: 8, Status: types.EmailProcessed})
	}))
	defer srv.Close()

	e, err := UpdateEmailStatus(context.Background(), srv.Client(), srv.URL, 8, types.EmailProcessed)
	if err != nil {
		t.Fatalf("UpdateEmailStatus: %v", err)
	}
	if e.Status != types.EmailProcessed {
		t.Errorf("status = %s", e.Status)
	}
}
