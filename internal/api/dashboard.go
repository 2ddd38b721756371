package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/opsdesk/console/internal/types"
)

// GetMetrics retrieves the dashboard aggregate counters.
func GetMetrics(ctx context.Context, hc HTTPClient, baseURL string) (*types.DashboardMetrics, error) {
	var m types.DashboardMetrics
	u := fmt.Sprintf("%s/dashboard/metrics", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &m, "get metrics"); err != nil {
		return nil, err
	}
	return &m, nil
}

func getChart(ctx context.Context, hc HTTPClient, baseURL, chart, op string) ([]types.ChartPoint, error) {
	var points []types.ChartPoint
	u := fmt.Sprintf("%s/dashboard/charts/%s", baseURL, chart)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &points, op); err != nil {
		return nil, err
	}
	return points, nil
}

// GetWeeklyTimelogs retrieves hours-per-day chart data.
func GetWeeklyTimelogs(ctx context.Context, hc HTTPClient, baseURL string) ([]types.ChartPoint, error) {
	return getChart(ctx, hc, baseURL, "weekly-timelogs", "get weekly timelogs")
}

// GetTicketProgress retrieves tickets-by-status chart data.
func GetTicketProgress(ctx context.Context, hc HTTPClient, baseURL string) ([]types.ChartPoint, error) {
	return getChart(ctx, hc, baseURL, "ticket-progress", "get ticket progress")
}

// GetEmailStatus retrieves emails-by-status chart data.
func GetEmailStatus(ctx context.Context, hc HTTPClient, baseURL string) ([]types.ChartPoint, error) {
	return getChart(ctx, hc, baseURL, "email-status", "get email status")
}
