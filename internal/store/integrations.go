package store

import (
	"context"

	"github.com/opsdesk/console/internal/api"
	"github.com/opsdesk/console/internal/demo"
	"github.com/opsdesk/console/internal/types"
)

const integrationsKey = "integrations"

// Integrations owns the third-party connector collection and its sync log.
type Integrations struct {
	hc      api.HTTPClient
	baseURL string
	exec    Executor

	coll collection[types.Integration]
	logs collection[types.IntegrationLog]
}

// NewIntegrations builds the integration store.
func NewIntegrations(hc api.HTTPClient, baseURL string, exec Executor) *Integrations {
	return &Integrations{
		hc:      hc,
		baseURL: baseURL,
		exec:    exec,
		coll:    newCollection(integrationsKey, func(i types.Integration) int64 { return i.ID }),
		logs:    newCollection("integration-logs", func(l types.IntegrationLog) int64 { return l.ID }),
	}
}

// Fetch replaces the connector collection.
func (s *Integrations) Fetch(ctx context.Context) ([]types.Integration, error) {
	gen := s.coll.beginFetch()
	list, err := api.ListIntegrations(ctx, s.hc, s.baseURL)
	s.coll.completeFetch(gen, list, err)
	if err != nil {
		return s.coll.Items(), err
	}
	return s.coll.Items(), nil
}

// Get fetches one connector by id without touching the collection.
func (s *Integrations) Get(ctx context.Context, id int64) (*types.Integration, error) {
	return api.GetIntegration(ctx, s.hc, s.baseURL, id)
}

// Update patches connector settings, including the write-only API token,
// and replaces the entity in the collection by id. The backend response
// never carries the token back.
func (s *Integrations) Update(ctx context.Context, id int64, req types.UpdateIntegrationRequest) (*types.Integration, error) {
	var updated *types.Integration
	err := runWrite(ctx, s.exec, integrationsKey, func(jc context.Context) error {
		in, err := api.UpdateIntegration(jc, s.hc, s.baseURL, id, req)
		if err != nil {
			return err
		}
		updated = in
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.coll.replace(*updated)
	return updated, nil
}

// Test asks the backend to probe the connector. The result is not cached;
// failure propagates so the view can show it.
func (s *Integrations) Test(ctx context.Context, id int64) error {
	return runWrite(ctx, s.exec, integrationsKey, func(jc context.Context) error {
		return api.TestIntegration(jc, s.hc, s.baseURL, id)
	})
}

// FetchLogs loads the connector sync history.
func (s *Integrations) FetchLogs(ctx context.Context, f types.IntegrationLogFilter) ([]types.IntegrationLog, error) {
	gen := s.logs.beginFetch()
	list, err := api.ListIntegrationLogs(ctx, s.hc, s.baseURL, f)
	s.logs.completeFetch(gen, list, err)
	if err != nil {
		return s.logs.Items(), err
	}
	return s.logs.Items(), nil
}

// Logs returns the loaded sync history.
func (s *Integrations) Logs() []types.IntegrationLog { return s.logs.Items() }

// Display returns the live collection or the demo dataset when empty.
func (s *Integrations) Display() []types.Integration {
	if s.coll.Len() > 0 {
		return s.coll.Items()
	}
	return demo.Integrations()
}

// Items returns the live collection in server order.
func (s *Integrations) Items() []types.Integration { return s.coll.Items() }

func (s *Integrations) Status() Status    { return s.coll.Status() }
func (s *Integrations) LastError() string { return s.coll.LastError() }
