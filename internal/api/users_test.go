package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	errsx "github.com/opsdesk/console/internal/errors"
	"github.com/opsdesk/console/internal/types"
)

func TestListUsers(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/users" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]types.User{{ID: 1, Username: "admin"}})
	}))
	defer srv.Close()

	users, err := ListUsers(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 1 || users[0].Username != "admin" {
		t.Errorf("users = %+v", users)
	}
}

func TestCreateUser(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req types.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Role != types.RoleEmployee {
			t.Errorf("role = %s", req.Role)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.User{ID: 7, Username: req.Username, Role: req.Role})
	}))
	defer srv.Close()

	u, err := CreateUser(context.Background(), srv.Client(), srv.URL, types.CreateUserRequest{
		Username: "new.hire", Role: types.RoleEmployee, Password: "changeme",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID != 7 {
		t.Errorf("id = %d", u.ID)
	}
}

func TestUpdateUser_PathAndMethod(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/users/42" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.User{ID: 42})
	}))
	defer srv.Close()

	if _, err := UpdateUser(context.Background(), srv.Client(), srv.URL, 42, types.UpdateUserRequest{Department: "Ops"}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/users/42" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := DeleteUser(context.Background(), srv.Client(), srv.URL, 42); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"user not found"}`))
	}))
	defer srv.Close()

	_, err := GetUser(context.Background(), srv.Client(), srv.URL, 99)
	var te *errsx.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("got %v, want TransportError", err)
	}
	if te.StatusCode != http.StatusNotFound || te.Category != errsx.Irrecoverable {
		t.Errorf("got status %d category %s", te.StatusCode, te.Category)
	}
	if te.Message != "user not found" {
		t.Errorf("Message = %q", te.Message)
	}
	if !errors.Is(err, types.ErrNotFound) {
		t.Error("404 does not match types.ErrNotFound")
	}
}

func TestListRoles(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/roles" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]types.Role{types.RoleAdmin, types.RoleManager, types.RoleEmployee})
	}))
	defer srv.Close()

	roles, err := ListRoles(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("ListRoles: %v", err)
	}
	if len(roles) != 3 || roles[0] != types.RoleAdmin {
		t.Errorf("roles = %v", roles)
	}
}
