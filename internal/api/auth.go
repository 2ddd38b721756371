package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/opsdesk/console/internal/types"
)

// Login exchanges credentials for a session token and user record.
// Credential correctness is the backend's call; a rejected login surfaces as
// a classified transport error carrying the backend's message.
func Login(ctx context.Context, hc HTTPClient, baseURL string, req types.LoginRequest) (*types.LoginResponse, error) {
	var resp types.LoginResponse
	url := fmt.Sprintf("%s/auth/login", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, url, req, http.StatusOK, &resp, "login"); err != nil {
		return nil, err
	}
	return &resp, nil
}
