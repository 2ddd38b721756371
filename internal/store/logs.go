package store

import (
	"context"
	"sync"

	"github.com/opsdesk/console/internal/api"
	"github.com/opsdesk/console/internal/types"
)

const logsKey = "logs"

// Logs owns the read-only system and error log collections. Both are
// server-generated and append-only; the client only pages through them and
// exports date ranges.
type Logs struct {
	hc      api.HTTPClient
	baseURL string
	exec    Executor

	system collection[types.SystemLog]
	errs   collection[types.ErrorLog]

	mu          sync.Mutex
	systemTotal int
	errorTotal  int
}

// NewLogs builds the log store.
func NewLogs(hc api.HTTPClient, baseURL string, exec Executor) *Logs {
	return &Logs{
		hc:      hc,
		baseURL: baseURL,
		exec:    exec,
		system:  newCollection("system-logs", func(l types.SystemLog) int64 { return l.ID }),
		errs:    newCollection("error-logs", func(l types.ErrorLog) int64 { return l.ID }),
	}
}

// FetchSystem replaces the system log page.
func (s *Logs) FetchSystem(ctx context.Context, f types.SystemLogFilter) ([]types.SystemLog, error) {
	gen := s.system.beginFetch()
	page, err := api.ListSystemLogs(ctx, s.hc, s.baseURL, f)
	if err != nil {
		s.system.completeFetch(gen, nil, err)
		return s.system.Items(), err
	}
	if s.system.completeFetch(gen, page.Content, nil) {
		s.mu.Lock()
		s.systemTotal = page.TotalElements
		s.mu.Unlock()
	}
	return s.system.Items(), nil
}

// FetchErrors replaces the error log page.
func (s *Logs) FetchErrors(ctx context.Context, f types.SystemLogFilter) ([]types.ErrorLog, error) {
	gen := s.errs.beginFetch()
	page, err := api.ListErrorLogs(ctx, s.hc, s.baseURL, f)
	if err != nil {
		s.errs.completeFetch(gen, nil, err)
		return s.errs.Items(), err
	}
	if s.errs.completeFetch(gen, page.Content, nil) {
		s.mu.Lock()
		s.errorTotal = page.TotalElements
		s.mu.Unlock()
	}
	return s.errs.Items(), nil
}

// Export downloads a CSV blob for a log family and date range. Export is a
// write-style operation from the UX point of view: failure propagates, no
// silent fallback exists.
func (s *Logs) Export(ctx context.Context, logType api.LogType, startDate, endDate string) ([]byte, error) {
	var blob []byte
	err := runWrite(ctx, s.exec, logsKey, func(jc context.Context) error {
		b, err := api.ExportLogs(jc, s.hc, s.baseURL, logType, startDate, endDate)
		if err != nil {
			return err
		}
		blob = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// SystemItems returns the loaded system log page.
func (s *Logs) SystemItems() []types.SystemLog { return s.system.Items() }

// ErrorItems returns the loaded error log page.
func (s *Logs) ErrorItems() []types.ErrorLog { return s.errs.Items() }

// SystemTotal is the backend's total count for the system log family.
func (s *Logs) SystemTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.systemTotal
}

// ErrorTotal is the backend's total count for the error log family.
func (s *Logs) ErrorTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorTotal
}

func (s *Logs) SystemStatus() Status    { return s.system.Status() }
func (s *Logs) ErrorStatus() Status     { return s.errs.Status() }
func (s *Logs) SystemLastError() string { return s.system.LastError() }
func (s *Logs) ErrorLastError() string  { return s.errs.LastError() }
