package store

import (
	"context"
	"sync"

	"github.com/opsdesk/console/internal/api"
	"github.com/opsdesk/console/internal/demo"
	"github.com/opsdesk/console/internal/session"
	"github.com/opsdesk/console/internal/types"
)

const timesheetsKey = "timesheets"

// Timesheets owns the timesheet collection. It is the only store that needs
// the session: EMPLOYEE fetches are constrained to the employee's own
// records client-side, so no frame of someone else's data can flash while a
// slower server-side check catches up.
type Timesheets struct {
	hc      api.HTTPClient
	baseURL string
	exec    Executor
	session *session.Store

	coll collection[types.Timesheet]

	mu         sync.Mutex
	lastFilter types.TimesheetFilter
	selected   *types.Timesheet
}

// NewTimesheets builds the timesheet store.
func NewTimesheets(hc api.HTTPClient, baseURL string, exec Executor, sess *session.Store) *Timesheets {
	return &Timesheets{
		hc:      hc,
		baseURL: baseURL,
		exec:    exec,
		session: sess,
		coll:    newCollection(timesheetsKey, func(t types.Timesheet) int64 { return t.ID }),
	}
}

// scope force-sets the userId filter for employee sessions, whatever the
// caller supplied. Without an identity the scoping rule is undefined, so the
// fetch is refused rather than sent unconstrained.
func (s *Timesheets) scope(f types.TimesheetFilter) (types.TimesheetFilter, error) {
	user, ok := s.session.Current()
	if !ok {
		return f, session.ErrNotAuthenticated
	}
	if user.Role == types.RoleEmployee {
		uid := user.ID
		f.UserID = &uid
	}
	return f, nil
}

// Fetch replaces the collection with the backend's response, scoped for
// employees. The effective filter is remembered for the re-fetch that
// follows an approval or rejection.
func (s *Timesheets) Fetch(ctx context.Context, f types.TimesheetFilter) ([]types.Timesheet, error) {
	f, err := s.scope(f)
	if err != nil {
		return s.coll.Items(), err
	}
	s.mu.Lock()
	s.lastFilter = f
	s.mu.Unlock()

	gen := s.coll.beginFetch()
	sheets, err := api.ListTimesheets(ctx, s.hc, s.baseURL, f)
	s.coll.completeFetch(gen, sheets, err)
	if err != nil {
		return s.coll.Items(), err
	}
	return s.coll.Items(), nil
}

// refetch reloads the collection with the last effective filter. Approval
// and rejection change fields the client cannot derive locally (approver,
// timestamp), so a local patch is not enough.
func (s *Timesheets) refetch(ctx context.Context) error {
	s.mu.Lock()
	f := s.lastFilter
	s.mu.Unlock()
	_, err := s.Fetch(ctx, f)
	return err
}

// Select fetches one timesheet and marks it as the selected entity.
func (s *Timesheets) Select(ctx context.Context, id int64) (*types.Timesheet, error) {
	ts, err := api.GetTimesheet(ctx, s.hc, s.baseURL, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.selected = ts
	s.mu.Unlock()
	return ts, nil
}

// Selected returns the currently selected timesheet, if any.
func (s *Timesheets) Selected() (types.Timesheet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return types.Timesheet{}, false
	}
	return *s.selected, true
}

// Create logs a new entry and inserts it at the head of the collection.
func (s *Timesheets) Create(ctx context.Context, req types.CreateTimesheetRequest) (*types.Timesheet, error) {
	if err := types.ValidateHours(req.HoursLogged); err != nil {
		return nil, err
	}
	var created *types.Timesheet
	err := runWrite(ctx, s.exec, timesheetsKey, func(jc context.Context) error {
		ts, err := api.CreateTimesheet(jc, s.hc, s.baseURL, req)
		if err != nil {
			return err
		}
		created = ts
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.coll.insertHead(*created)
	return created, nil
}

// Update edits a draft and replaces it in the collection by id.
func (s *Timesheets) Update(ctx context.Context, id int64, req types.UpdateTimesheetRequest) (*types.Timesheet, error) {
	if req.HoursLogged != 0 {
		if err := types.ValidateHours(req.HoursLogged); err != nil {
			return nil, err
		}
	}
	var updated *types.Timesheet
	err := runWrite(ctx, s.exec, timesheetsKey, func(jc context.Context) error {
		ts, err := api.UpdateTimesheet(jc, s.hc, s.baseURL, id, req)
		if err != nil {
			return err
		}
		updated = ts
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.coll.replace(*updated)
	return updated, nil
}

// Submit moves a draft to SUBMITTED and replaces it in the collection.
func (s *Timesheets) Submit(ctx context.Context, id int64) (*types.Timesheet, error) {
	var submitted *types.Timesheet
	err := runWrite(ctx, s.exec, timesheetsKey, func(jc context.Context) error {
		ts, err := api.SubmitTimesheet(jc, s.hc, s.baseURL, id)
		if err != nil {
			return err
		}
		submitted = ts
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.coll.replace(*submitted)
	return submitted, nil
}

// Approve approves a submitted entry. Comments are optional. On success the
// whole collection is re-fetched.
func (s *Timesheets) Approve(ctx context.Context, id int64, comments string) error {
	err := runWrite(ctx, s.exec, timesheetsKey, func(jc context.Context) error {
		_, err := api.ApproveTimesheet(jc, s.hc, s.baseURL, id, comments)
		return err
	})
	if err != nil {
		return err
	}
	return s.refetch(ctx)
}

// Reject rejects a submitted entry. Comments are mandatory and checked
// before any network call. On success the whole collection is re-fetched.
func (s *Timesheets) Reject(ctx context.Context, id int64, comments string) error {
	if err := types.ValidateRejectComments(comments); err != nil {
		return err
	}
	err := runWrite(ctx, s.exec, timesheetsKey, func(jc context.Context) error {
		_, err := api.RejectTimesheet(jc, s.hc, s.baseURL, id, comments)
		return err
	})
	if err != nil {
		return err
	}
	return s.refetch(ctx)
}

// Export downloads a report blob for the given date range and format.
func (s *Timesheets) Export(ctx context.Context, startDate, endDate, format string) ([]byte, error) {
	return api.ExportTimesheets(ctx, s.hc, s.baseURL, startDate, endDate, format)
}

// Display returns the live collection or the demo dataset when empty.
func (s *Timesheets) Display() []types.Timesheet {
	if s.coll.Len() > 0 {
		return s.coll.Items()
	}
	return demo.Timesheets()
}

// Items returns the live collection in server order.
func (s *Timesheets) Items() []types.Timesheet { return s.coll.Items() }

func (s *Timesheets) Status() Status    { return s.coll.Status() }
func (s *Timesheets) LastError() string { return s.coll.LastError() }
