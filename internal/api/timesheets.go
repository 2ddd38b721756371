package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/opsdesk/console/internal/types"
)

// ListTimesheets retrieves timesheets matching the filter. Employee
// self-scoping happens in the store layer, not here.
func ListTimesheets(ctx context.Context, hc HTTPClient, baseURL string, f types.TimesheetFilter) ([]types.Timesheet, error) {
	q := url.Values{}
	setInt64(q, "userId", f.UserID)
	setStr(q, "status", string(f.Status))
	setStr(q, "startDate", f.StartDate)
	setStr(q, "endDate", f.EndDate)

	var sheets []types.Timesheet
	u := withQuery(fmt.Sprintf("%s/timesheets", baseURL), q)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &sheets, "list timesheets"); err != nil {
		return nil, err
	}
	return sheets, nil
}

// GetTimesheet retrieves a single timesheet by id.
func GetTimesheet(ctx context.Context, hc HTTPClient, baseURL string, id int64) (*types.Timesheet, error) {
	var ts types.Timesheet
	u := fmt.Sprintf("%s/timesheets/%d", baseURL, id)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &ts, "get timesheet"); err != nil {
		return nil, err
	}
	return &ts, nil
}

// CreateTimesheet logs a new entry (DRAFT).
func CreateTimesheet(ctx context.Context, hc HTTPClient, baseURL string, req types.CreateTimesheetRequest) (*types.Timesheet, error) {
	var ts types.Timesheet
	u := fmt.Sprintf("%s/timesheets", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, u, req, http.StatusCreated, &ts, "create timesheet"); err != nil {
		return nil, err
	}
	return &ts, nil
}

// UpdateTimesheet edits a draft entry.
func UpdateTimesheet(ctx context.Context, hc HTTPClient, baseURL string, id int64, req types.UpdateTimesheetRequest) (*types.Timesheet, error) {
	var ts types.Timesheet
	u := fmt.Sprintf("%s/timesheets/%d", baseURL, id)
	if err := doJSON(ctx, hc, http.MethodPut, u, req, http.StatusOK, &ts, "update timesheet"); err != nil {
		return nil, err
	}
	return &ts, nil
}

// SubmitTimesheet moves a draft to SUBMITTED.
func SubmitTimesheet(ctx context.Context, hc HTTPClient, baseURL string, id int64) (*types.Timesheet, error) {
	var ts types.Timesheet
	u := fmt.Sprintf("%s/timesheets/%d/submit", baseURL, id)
	if err := doJSON(ctx, hc, http.MethodPost, u, nil, http.StatusOK, &ts, "submit timesheet"); err != nil {
		return nil, err
	}
	return &ts, nil
}

// ApproveTimesheet approves a submitted entry. Comments are optional.
func ApproveTimesheet(ctx context.Context, hc HTTPClient, baseURL string, id int64, comments string) (*types.Timesheet, error) {
	var ts types.Timesheet
	u := fmt.Sprintf("%s/timesheets/%d/approve", baseURL, id)
	req := types.ReviewRequest{Comments: comments}
	if err := doJSON(ctx, hc, http.MethodPost, u, req, http.StatusOK, &ts, "approve timesheet"); err != nil {
		return nil, err
	}
	return &ts, nil
}

// RejectTimesheet rejects a submitted entry. The non-empty comments rule is
// enforced by the store before this call is ever made.
func RejectTimesheet(ctx context.Context, hc HTTPClient, baseURL string, id int64, comments string) (*types.Timesheet, error) {
	var ts types.Timesheet
	u := fmt.Sprintf("%s/timesheets/%d/reject", baseURL, id)
	req := types.ReviewRequest{Comments: comments}
	if err := doJSON(ctx, hc, http.MethodPost, u, req, http.StatusOK, &ts, "reject timesheet"); err != nil {
		return nil, err
	}
	return &ts, nil
}

// ExportTimesheets downloads a report blob. Format is "pdf" or "excel".
func ExportTimesheets(ctx context.Context, hc HTTPClient, baseURL, startDate, endDate, format string) ([]byte, error) {
	q := url.Values{}
	setStr(q, "startDate", startDate)
	setStr(q, "endDate", endDate)
	setStr(q, "format", format)
	u := withQuery(fmt.Sprintf("%s/timesheets/export", baseURL), q)
	return doBlob(ctx, hc, u, "export timesheets")
}
