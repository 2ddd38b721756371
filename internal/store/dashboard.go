package store

import (
	"context"
	"sync"

	"github.com/opsdesk/console/internal/api"
	"github.com/opsdesk/console/internal/demo"
	"github.com/opsdesk/console/internal/types"
)

// Dashboard owns the read-only aggregate metrics and chart series. Each
// fetch replaces the previous snapshot wholesale; there is no lifecycle
// beyond that.
type Dashboard struct {
	hc      api.HTTPClient
	baseURL string

	weekly   collection[types.ChartPoint]
	progress collection[types.ChartPoint]
	emails   collection[types.ChartPoint]

	mu        sync.Mutex
	metrics   *types.DashboardMetrics
	status    Status
	lastError string
}

func chartID(types.ChartPoint) int64 { return 0 } // chart points carry no identity

// NewDashboard builds the dashboard store.
func NewDashboard(hc api.HTTPClient, baseURL string) *Dashboard {
	return &Dashboard{
		hc:       hc,
		baseURL:  baseURL,
		weekly:   newCollection("chart-weekly-timelogs", chartID),
		progress: newCollection("chart-ticket-progress", chartID),
		emails:   newCollection("chart-email-status", chartID),
		status:   StatusIdle,
	}
}

// FetchMetrics replaces the aggregate counters. On failure the previous
// snapshot is kept.
func (s *Dashboard) FetchMetrics(ctx context.Context) (*types.DashboardMetrics, error) {
	s.mu.Lock()
	s.status = StatusLoading
	s.mu.Unlock()

	m, err := api.GetMetrics(ctx, s.hc, s.baseURL)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusError
		s.lastError = err.Error()
		return s.metrics, err
	}
	s.metrics = m
	s.status = StatusIdle
	s.lastError = ""
	return m, nil
}

// FetchWeeklyTimelogs replaces the hours-per-day series.
func (s *Dashboard) FetchWeeklyTimelogs(ctx context.Context) ([]types.ChartPoint, error) {
	gen := s.weekly.beginFetch()
	points, err := api.GetWeeklyTimelogs(ctx, s.hc, s.baseURL)
	s.weekly.completeFetch(gen, points, err)
	return s.weekly.Items(), err
}

// FetchTicketProgress replaces the tickets-by-status series.
func (s *Dashboard) FetchTicketProgress(ctx context.Context) ([]types.ChartPoint, error) {
	gen := s.progress.beginFetch()
	points, err := api.GetTicketProgress(ctx, s.hc, s.baseURL)
	s.progress.completeFetch(gen, points, err)
	return s.progress.Items(), err
}

// FetchEmailStatus replaces the emails-by-status series.
func (s *Dashboard) FetchEmailStatus(ctx context.Context) ([]types.ChartPoint, error) {
	gen := s.emails.beginFetch()
	points, err := api.GetEmailStatus(ctx, s.hc, s.baseURL)
	s.emails.completeFetch(gen, points, err)
	return s.emails.Items(), err
}

// DisplayMetrics returns the live aggregate or the demo snapshot.
func (s *Dashboard) DisplayMetrics() types.DashboardMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.metrics != nil {
		return *s.metrics
	}
	return demo.Metrics()
}

// DisplayWeeklyTimelogs returns the live series or the demo series.
func (s *Dashboard) DisplayWeeklyTimelogs() []types.ChartPoint {
	if s.weekly.Len() > 0 {
		return s.weekly.Items()
	}
	return demo.WeeklyTimelogs()
}

// DisplayTicketProgress returns the live series or the demo series.
func (s *Dashboard) DisplayTicketProgress() []types.ChartPoint {
	if s.progress.Len() > 0 {
		return s.progress.Items()
	}
	return demo.TicketProgress()
}

// DisplayEmailStatus returns the live series or the demo series.
func (s *Dashboard) DisplayEmailStatus() []types.ChartPoint {
	if s.emails.Len() > 0 {
		return s.emails.Items()
	}
	return demo.EmailStatus()
}

// Metrics returns the live aggregate, if fetched.
func (s *Dashboard) Metrics() (types.DashboardMetrics, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.metrics == nil {
		return types.DashboardMetrics{}, false
	}
	return *s.metrics, true
}

func (s *Dashboard) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Dashboard) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
