package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/opsdesk/console/internal/types"
)

// ListEmails retrieves a page of inbound emails.
func ListEmails(ctx context.Context, hc HTTPClient, baseURL string, f types.EmailFilter) (*types.PagedEmails, error) {
	q := url.Values{}
	setStr(q, "status", string(f.Status))
	setInt(q, "page", f.Page)
	setInt(q, "size", f.Size)

	var page types.PagedEmails
	u := withQuery(fmt.Sprintf("%s/emails", baseURL), q)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &page, "list emails"); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetEmail retrieves a single email by id.
func GetEmail(ctx context.Context, hc HTTPClient, baseURL string, id int64) (*types.Email, error) {
	var email types.Email
	u := fmt.Sprintf("%s/emails/%d", baseURL, id)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &email, "get email"); err != nil {
		return nil, err
	}
	return &email, nil
}

// UpdateEmailStatus moves an email through the processing pipeline. The
// transition itself is validated server-side.
func UpdateEmailStatus(ctx context.Context, hc HTTPClient, baseURL string, id int64, status types.EmailStatus) (*types.Email, error) {
	body := struct {
		Status types.EmailStatus `json:"status"`
	}{Status: status}

	var email types.Email
	u := fmt.Sprintf("%s/emails/%d/status", baseURL, id)
	if err := doJSON(ctx, hc, http.MethodPatch, u, body, http.StatusOK, &email, "update email status"); err != nil {
		return nil, err
	}
	return &email, nil
}
