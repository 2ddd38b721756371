package store

import (
	"context"
	"sync"

	"github.com/opsdesk/console/internal/api"
	"github.com/opsdesk/console/internal/demo"
	"github.com/opsdesk/console/internal/types"
)

const emailsKey = "emails"

// Emails owns the inbound email collection.
type Emails struct {
	hc      api.HTTPClient
	baseURL string
	exec    Executor

	coll collection[types.Email]

	mu       sync.Mutex
	total    int
	selected *types.Email
}

// NewEmails builds the email store.
func NewEmails(hc api.HTTPClient, baseURL string, exec Executor) *Emails {
	return &Emails{
		hc:      hc,
		baseURL: baseURL,
		exec:    exec,
		coll:    newCollection(emailsKey, func(e types.Email) int64 { return e.ID }),
	}
}

// Fetch replaces the collection with the backend's page. On failure the
// error is recorded in store state and also returned; the collection keeps
// its previous contents.
func (s *Emails) Fetch(ctx context.Context, f types.EmailFilter) ([]types.Email, error) {
	gen := s.coll.beginFetch()
	page, err := api.ListEmails(ctx, s.hc, s.baseURL, f)
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

// Select fetches one email and marks it as the selected entity.
func (s *Emails) Select(ctx context.Context, id int64) (*types.Email, error) {
	email, err := api.GetEmail(ctx, s.hc, s.baseURL, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.selected = email
	s.mu.Unlock()
	return email, nil
}

// Selected returns the currently selected email, if any.
func (s *Emails) Selected() (types.Email, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return types.Email{}, false
	}
	return *s.selected, true
}

// ClearSelection drops the selected email.
func (s *Emails) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// UpdateStatus advances an email through the pipeline and patches the local
// collection in place on success.
func (s *Emails) UpdateStatus(ctx context.Context, id int64, status types.EmailStatus) (*types.Email, error) {
	var updated *types.Email
	err := runWrite(ctx, s.exec, emailsKey, func(jc context.Context) error {
		email, err := api.UpdateEmailStatus(jc, s.hc, s.baseURL, id, status)
		if err != nil {
			return err
		}
		updated = email
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.coll.replace(*updated)
	return updated, nil
}

// Display returns the live collection, or the demo dataset when the store
// holds nothing. The substitution is presentational only and is never
// written back.
func (s *Emails) Display() []types.Email {
	if s.coll.Len() > 0 {
		return s.coll.Items()
	}
	return demo.Emails()
}

// Items returns the live collection in server order.
func (s *Emails) Items() []types.Email { return s.coll.Items() }

// Total is the backend's total element count for the last fetched page.
func (s *Emails) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *Emails) Status() Status    { return s.coll.Status() }
func (s *Emails) LastError() string { return s.coll.LastError() }
