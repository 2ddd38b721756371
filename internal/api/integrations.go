package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/opsdesk/console/internal/types"
)

// ListIntegrations retrieves all third-party connectors.
func ListIntegrations(ctx context.Context, hc HTTPClient, baseURL string) ([]types.Integration, error) {
	var integrations []types.Integration
	u := fmt.Sprintf("%s/integrations", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &integrations, "list integrations"); err != nil {
		return nil, err
	}
	return integrations, nil
}

// GetIntegration retrieves a connector by id. The API token is never part of
// the response.
func GetIntegration(ctx context.Context, hc HTTPClient, baseURL string, id int64) (*types.Integration, error) {
	var in types.Integration
	u := fmt.Sprintf("%s/integrations/%d", baseURL, id)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &in, "get integration"); err != nil {
		return nil, err
	}
	return &in, nil
}

// UpdateIntegration patches connector settings, including the write-only
// API token.
func UpdateIntegration(ctx context.Context, hc HTTPClient, baseURL string, id int64, req types.UpdateIntegrationRequest) (*types.Integration, error) {
	var in types.Integration
	u := fmt.Sprintf("%s/integrations/%d", baseURL, id)
	if err := doJSON(ctx, hc, http.MethodPut, u, req, http.StatusOK, &in, "update integration"); err != nil {
		return nil, err
	}
	return &in, nil
}

// TestIntegration asks the backend to probe the connector's endpoint.
func TestIntegration(ctx context.Context, hc HTTPClient, baseURL string, id int64) error {
	u := fmt.Sprintf("%s/integrations/%d/test", baseURL, id)
	return doJSON(ctx, hc, http.MethodPost, u, nil, http.StatusOK, nil, "test integration")
}

// ListIntegrationLogs retrieves sync history across connectors.
func ListIntegrationLogs(ctx context.Context, hc HTTPClient, baseURL string, f types.IntegrationLogFilter) ([]types.IntegrationLog, error) {
	q := url.Values{}
	setInt64(q, "integrationId", f.IntegrationID)
	setStr(q, "status", string(f.Status))
	setStr(q, "startDate", f.StartDate)
	setStr(q, "endDate", f.EndDate)

	var logs []types.IntegrationLog
	u := withQuery(fmt.Sprintf("%s/integrations/logs", baseURL), q)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &logs, "list integration logs"); err != nil {
		return nil, err
	}
	return logs, nil
}
