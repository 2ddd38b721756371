package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/opsdesk/console/internal/types"
)

// LogType selects which append-only log family an export targets.
type LogType string

const (
	LogTypeSystem LogType = "system"
	LogTypeError  LogType = "error"
)

func logQuery(f types.SystemLogFilter) url.Values {
	q := url.Values{}
	setStr(q, "serviceName", f.ServiceName)
	setStr(q, "level", string(f.Level))
	setStr(q, "startDate", f.StartDate)
	setStr(q, "endDate", f.EndDate)
	setInt(q, "page", f.Page)
	setInt(q, "size", f.Size)
	return q
}

// ListSystemLogs retrieves a page of service log lines.
func ListSystemLogs(ctx context.Context, hc HTTPClient, baseURL string, f types.SystemLogFilter) (*types.PagedSystemLogs, error) {
	var page types.PagedSystemLogs
	u := withQuery(fmt.Sprintf("%s/logs/system", baseURL), logQuery(f))
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &page, "list system logs"); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListErrorLogs retrieves a page of error records.
func ListErrorLogs(ctx context.Context, hc HTTPClient, baseURL string, f types.SystemLogFilter) (*types.PagedErrorLogs, error) {
	var page types.PagedErrorLogs
	u := withQuery(fmt.Sprintf("%s/logs/error", baseURL), logQuery(f))
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &page, "list error logs"); err != nil {
		return nil, err
	}
	return &page, nil
}

// ExportLogs downloads a CSV blob for the given log family and date range.
func ExportLogs(ctx context.Context, hc HTTPClient, baseURL string, logType LogType, startDate, endDate string) ([]byte, error) {
	q := url.Values{}
	setStr(q, "startDate", startDate)
	setStr(q, "endDate", endDate)
	u := withQuery(fmt.Sprintf("%s/logs/%s/export", baseURL, logType), q)
	return doBlob(ctx, hc, u, "export logs")
}
