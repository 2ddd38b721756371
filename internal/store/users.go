package store

import (
	"context"
	"sync"

	"github.com/opsdesk/console/internal/api"
	"github.com/opsdesk/console/internal/demo"
	"github.com/opsdesk/console/internal/types"
)

const usersKey = "users"

// Users owns the account collection. Route-level gating keeps non-admins
// away from the view; the store itself stays mechanism-only.
type Users struct {
	hc      api.HTTPClient
	baseURL string
	exec    Executor

	coll collection[types.User]

	mu    sync.Mutex
	roles []types.Role
}

// NewUsers builds the user store.
func NewUsers(hc api.HTTPClient, baseURL string, exec Executor) *Users {
	return &Users{
		hc:      hc,
		baseURL: baseURL,
		exec:    exec,
		coll:    newCollection(usersKey, func(u types.User) int64 { return u.ID }),
	}
}

// Fetch replaces the collection with the backend's account list.
func (s *Users) Fetch(ctx context.Context) ([]types.User, error) {
	gen := s.coll.beginFetch()
	users, err := api.ListUsers(ctx, s.hc, s.baseURL)
	s.coll.completeFetch(gen, users, err)
	if err != nil {
		return s.coll.Items(), err
	}
	return s.coll.Items(), nil
}

// FetchRoles loads the assignable role names for account forms. The list is
// cached; a later failure keeps the previous copy.
func (s *Users) FetchRoles(ctx context.Context) ([]types.Role, error) {
	roles, err := api.ListRoles(ctx, s.hc, s.baseURL)
	if err != nil {
		return s.Roles(), err
	}
	s.mu.Lock()
	s.roles = roles
	s.mu.Unlock()
	return roles, nil
}

// Roles returns the cached assignable role names.
func (s *Users) Roles() []types.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Role(nil), s.roles...)
}

// Create registers an account and inserts it at the head of the collection.
func (s *Users) Create(ctx context.Context, req types.CreateUserRequest) (*types.User, error) {
	var created *types.User
	err := runWrite(ctx, s.exec, usersKey, func(jc context.Context) error {
		u, err := api.CreateUser(jc, s.hc, s.baseURL, req)
		if err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.coll.insertHead(*created)
	return created, nil
}

// Update patches an account and replaces it in the collection by id. When
// the id is no longer present locally the update is dropped without
// inserting.
func (s *Users) Update(ctx context.Context, id int64, req types.UpdateUserRequest) (*types.User, error) {
	var updated *types.User
	err := runWrite(ctx, s.exec, usersKey, func(jc context.Context) error {
		u, err := api.UpdateUser(jc, s.hc, s.baseURL, id, req)
		if err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.coll.replace(*updated)
	return updated, nil
}

// Delete removes an account; the local removal is a no-op when the id is
// already gone.
func (s *Users) Delete(ctx context.Context, id int64) error {
	err := runWrite(ctx, s.exec, usersKey, func(jc context.Context) error {
		return api.DeleteUser(jc, s.hc, s.baseURL, id)
	})
	if err != nil {
		return err
	}
	s.coll.remove(id)
	return nil
}

// Display returns the live collection or the demo dataset when empty.
func (s *Users) Display() []types.User {
	if s.coll.Len() > 0 {
		return s.coll.Items()
	}
	return demo.Users()
}

// Items returns the live collection in server order.
func (s *Users) Items() []types.User { return s.coll.Items() }

func (s *Users) Status() Status    { return s.coll.Status() }
func (s *Users) LastError() string { return s.coll.LastError() }
