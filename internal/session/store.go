// Package session owns the authenticated identity of the console client:
// login/logout transitions, the current user and token, and durable
// persistence so a session survives a process restart. There is no global
// session state; a Store is constructed once and passed to everything that
// needs identity.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/opsdesk/console/internal/types"
)

// Durable storage keys. Cleared together on logout.
const (
	tokenKey = "opsdesk.token"
	userKey  = "opsdesk.user"
)

// Store holds at most one current identity. The token is read by every
// outgoing backend call but written only by Login/Logout.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	auth    Authenticator

	user  *types.User
	token string
}

// New builds a session store and rehydrates any persisted session from
// storage. The persisted token is not re-validated here; the backend rejects
// an expired token on the next request.
func New(storage Storage, auth Authenticator) *Store {
	s := &Store{storage: storage, auth: auth}
	s.rehydrate()
	return s
}

func (s *Store) rehydrate() {
	token, ok := s.storage.Get(tokenKey)
	if !ok || token == "" {
		return
	}
	raw, ok := s.storage.Get(userKey)
	if !ok {
		return
	}
	var u types.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Warn().Err(err).Msg("session: discarding unreadable persisted user record")
		_ = s.storage.Delete(tokenKey)
		_ = s.storage.Delete(userKey)
		return
	}
	s.user = &u
	s.token = token
	log.Debug().Str("username", u.Username).Str("role", string(u.Role)).Msg("session: rehydrated")
}

// Login authenticates and, on success, replaces the current session (any
// prior identity is discarded) and persists it.
func (s *Store) Login(ctx context.Context, username, password string) (types.User, error) {
	if err := types.ValidateLogin(username, password); err != nil {
		return types.User{}, err
	}

	user, token, err := s.auth.Authenticate(ctx, username, password)
	if err != nil {
		return types.User{}, err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return types.User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()

	if err := s.storage.Set(tokenKey, token); err != nil {
		log.Warn().Err(err).Msg("session: failed to persist token")
	}
	if err := s.storage.Set(userKey, string(raw)); err != nil {
		log.Warn().Err(err).Msg("session: failed to persist user record")
	}

	log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("session: login")
	return user, nil
}

// Logout clears the current identity and both storage keys. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	_ = s.storage.Delete(tokenKey)
	_ = s.storage.Delete(userKey)
	log.Info().Msg("session: logout")
}

// Current returns the authenticated identity, if any.
func (s *Store) Current() (types.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return types.User{}, false
	}
	return *s.user, true
}

// Token returns the current session token, or empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
