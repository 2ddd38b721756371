package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/opsdesk/console/internal/types"
)

// ListUsers retrieves all account records.
func ListUsers(ctx context.Context, hc HTTPClient, baseURL string) ([]types.User, error) {
	var users []types.User
	u := fmt.Sprintf("%s/users", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &users, "list users"); err != nil {
		return nil, err
	}
	return users, nil
}

// ListRoles retrieves the assignable role names, for account forms.
func ListRoles(ctx context.Context, hc HTTPClient, baseURL string) ([]types.Role, error) {
	var roles []types.Role
	u := fmt.Sprintf("%s/roles", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &roles, "list roles"); err != nil {
		return nil, err
	}
	return roles, nil
}

// GetUser retrieves an account by id.
func GetUser(ctx context.Context, hc HTTPClient, baseURL string, id int64) (*types.User, error) {
	var user types.User
	u := fmt.Sprintf("%s/users/%d", baseURL, id)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, http.StatusOK, &user, "get user"); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a new account.
func CreateUser(ctx context.Context, hc HTTPClient, baseURL string, req types.CreateUserRequest) (*types.User, error) {
	var user types.User
	u := fmt.Sprintf("%s/users", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, u, req, http.StatusCreated, &user, "create user"); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser patches account fields.
func UpdateUser(ctx context.Context, hc HTTPClient, baseURL string, id int64, req types.UpdateUserRequest) (*types.User, error) {
	var user types.User
	u := fmt.Sprintf("%s/users/%d", baseURL, id)
	if err := doJSON(ctx, hc, http.MethodPut, u, req, http.StatusOK, &user, "update user"); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account. Backend returns 204 No Content on success.
func DeleteUser(ctx context.Context, hc HTTPClient, baseURL string, id int64) error {
	u := fmt.Sprintf("%s/users/%d", baseURL, id)
	return doJSON(ctx, hc, http.MethodDelete, u, nil, http.StatusNoContent, nil, "delete user")
}
