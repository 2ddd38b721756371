package store

import (
	"context"
	"sync"

	"github.com/opsdesk/console/internal/api"
	"github.com/opsdesk/console/internal/demo"
	"github.com/opsdesk/console/internal/types"
)

const ticketsKey = "tickets"

// Tickets owns the ticket collection plus the nested comment and history
// collections of the selected ticket.
type Tickets struct {
	hc      api.HTTPClient
	baseURL string
	exec    Executor

	coll     collection[types.Ticket]
	comments collection[types.Comment]
	history  collection[types.StatusHistoryEntry]

	mu       sync.Mutex
	total    int
	selected *types.Ticket
}

// NewTickets builds the ticket store.
func NewTickets(hc api.HTTPClient, baseURL string, exec Executor) *Tickets {
	return &Tickets{
		hc:       hc,
		baseURL:  baseURL,
		exec:     exec,
		coll:     newCollection(ticketsKey, func(t types.Ticket) int64 { return t.ID }),
		comments: newCollection("ticket-comments", func(c types.Comment) int64 { return c.ID }),
		history:  newCollection("ticket-history", func(h types.StatusHistoryEntry) int64 { return h.ID }),
	}
}

// Fetch replaces the ticket collection with the backend's page.
func (s *Tickets) Fetch(ctx context.Context, f types.TicketFilter) ([]types.Ticket, error) {
	gen := s.coll.beginFetch()
	page, err := api.ListTickets(ctx, s.hc, s.baseURL, f)
	if err != nil {
		s.coll.completeFetch(gen, nil, err)
		return s.coll.Items(), err
	}
	if s.coll.completeFetch(gen, page.Content, nil) {
		s.mu.Lock()
		s.total = page.TotalElements
		s.mu.Unlock()
	}
	return s.coll.Items(), nil
}

// Select fetches one ticket and marks it selected. The nested comment and
// history collections belong to the selection and are cleared here.
func (s *Tickets) Select(ctx context.Context, id int64) (*types.Ticket, error) {
	t, err := api.GetTicket(ctx, s.hc, s.baseURL, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.selected = t
	s.mu.Unlock()
	s.comments.reset()
	s.history.reset()
	return t, nil
}

// Selected returns the currently selected ticket, if any.
func (s *Tickets) Selected() (types.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return types.Ticket{}, false
	}
	return *s.selected, true
}

// Create opens a ticket and inserts it at the head of the local collection.
// Creation waits for server confirmation; nothing is applied optimistically.
func (s *Tickets) Create(ctx context.Context, req types.CreateTicketRequest) (*types.Ticket, error) {
	var created *types.Ticket
	err := runWrite(ctx, s.exec, ticketsKey, func(jc context.Context) error {
		t, err := api.CreateTicket(jc, s.hc, s.baseURL, req)
		if err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.coll.insertHead(*created)
	return created, nil
}

// Update patches a ticket and replaces it in the local collection by id.
func (s *Tickets) Update(ctx context.Context, id int64, req types.UpdateTicketRequest) (*types.Ticket, error) {
	var updated *types.Ticket
	err := runWrite(ctx, s.exec, ticketsKey, func(jc context.Context) error {
		t, err := api.UpdateTicket(jc, s.hc, s.baseURL, id, req)
		if err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.coll.replace(*updated)
	s.mu.Lock()
	if s.selected != nil && s.selected.ID == id {
		s.selected = updated
	}
	s.mu.Unlock()
	return updated, nil
}

// FetchComments loads the comment thread of a ticket.
func (s *Tickets) FetchComments(ctx context.Context, ticketID int64) ([]types.Comment, error) {
	gen := s.comments.beginFetch()
	list, err := api.ListComments(ctx, s.hc, s.baseURL, ticketID)
	s.comments.completeFetch(gen, list, err)
	if err != nil {
		return s.comments.Items(), err
	}
	return s.comments.Items(), nil
}

// AddComment appends a comment and, on success, appends it to the loaded
// thread.
func (s *Tickets) AddComment(ctx context.Context, ticketID int64, content string) (*types.Comment, error) {
	if content == "" {
		return nil, &types.ValidationError{Field: "content", Message: "must not be empty"}
	}
	var added *types.Comment
	err := runWrite(ctx, s.exec, ticketsKey, func(jc context.Context) error {
		c, err := api.AddComment(jc, s.hc, s.baseURL, ticketID, content)
		if err != nil {
			return err
		}
		added = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.comments.append(*added)
	return added, nil
}

// Comments returns the loaded comment thread.
func (s *Tickets) Comments() []types.Comment { return s.comments.Items() }

// FetchHistory loads the server-side status transition log of a ticket.
func (s *Tickets) FetchHistory(ctx context.Context, ticketID int64) ([]types.StatusHistoryEntry, error) {
	gen := s.history.beginFetch()
	list, err := api.ListStatusHistory(ctx, s.hc, s.baseURL, ticketID)
	s.history.completeFetch(gen, list, err)
	if err != nil {
		return s.history.Items(), err
	}
	return s.history.Items(), nil
}

// History returns the loaded transition log.
func (s *Tickets) History() []types.StatusHistoryEntry { return s.history.Items() }

// Display returns the live collection or the demo dataset when empty.
func (s *Tickets) Display() []types.Ticket {
	if s.coll.Len() > 0 {
		return s.coll.Items()
	}
	return demo.Tickets()
}

// Items returns the live collection in server order.
func (s *Tickets) Items() []types.Ticket { return s.coll.Items() }

// Total is the backend's total element count for the last fetched page.
func (s *Tickets) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *Tickets) Status() Status    { return s.coll.Status() }
func (s *Tickets) LastError() string { return s.coll.LastError() }
