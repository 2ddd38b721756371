package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/opsdesk/console/internal/types"
)

// ListTickets retrieves a page of tickets.
func ListTickets(ctx context.Context, hc HTTPClient, baseURL string, f types.TicketFilter) (*types.PagedTickets, error) {
	q := url.Values{}
	setStr(q, "status", string(f.Status))
	setInt64(q, "assigneeId", f.AssigneeID)
	setInt(q, "page", f.Page)
	setInt(q, "size", f.Size)

	var page types.PagedTickets
	u := withQuery(fmt.Sprintf("%s/tickets", baseURL), q)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &page, "list tickets"); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetTicket retrieves a single ticket by id.
func GetTicket(ctx context.Context, hc HTTPClient, baseURL string, id int64) (*types.Ticket, error) {
	var t types.Ticket
	u := fmt.Sprintf("%s/tickets/%d", baseURL, id)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &t, "get ticket"); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTicket opens a new ticket. The ticket number is server-assigned.
func CreateTicket(ctx context.Context, hc HTTPClient, baseURL string, req types.CreateTicketRequest) (*types.Ticket, error) {
	var t types.Ticket
	u := fmt.Sprintf("%s/tickets", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, u, req, http.StatusCreated, &t, "create ticket"); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTicket patches ticket fields.
func UpdateTicket(ctx context.Context, hc HTTPClient, baseURL string, id int64, req types.UpdateTicketRequest) (*types.Ticket, error) {
	var t types.Ticket
	u := fmt.Sprintf("%s/tickets/%d", baseURL, id)
	if err := doJSON(ctx, hc, http.MethodPut, u, req, http.StatusOK, &t, "update ticket"); err != nil {
		return nil, err
	}
	return &t, nil
}

// AddComment appends a comment to a ticket.
func AddComment(ctx context.Context, hc HTTPClient, baseURL string, ticketID int64, content string) (*types.Comment, error) {
	var c types.Comment
	u := fmt.Sprintf("%s/tickets/%d/comments", baseURL, ticketID)
	req := types.AddCommentRequest{Content: content}
	if err := doJSON(ctx, hc, http.MethodPost, u, req, http.StatusCreated, &c, "add comment"); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListComments retrieves all comments of a ticket.
func ListComments(ctx context.Context, hc HTTPClient, baseURL string, ticketID int64) ([]types.Comment, error) {
	var comments []types.Comment
	u := fmt.Sprintf("%s/tickets/%d/comments", baseURL, ticketID)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &comments, "list comments"); err != nil {
		return nil, err
	}
	return comments, nil
}

// ListStatusHistory retrieves the server-side transition log of a ticket.
func ListStatusHistory(ctx context.Context, hc HTTPClient, baseURL string, ticketID int64) ([]types.StatusHistoryEntry, error) {
	var history []types.StatusHistoryEntry
	u := fmt.Sprintf("%s/tickets/%d/history", baseURL, ticketID)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &history, "list status history"); err != nil {
		return nil, err
	}
	return history, nil
}
