package console

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/opsdesk/console/internal/session"
)

// Option configures a Client during construction in New.
//
// Options run before the session store is built and before the token
// transport wrapper is installed, so transport-related options (like debug
// logging) end up underneath the token wrapper. Options must be
// deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time of a single HTTP request. The
// value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. The token
// wrapper is still installed on top of whatever transport it carries.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: the dumps include
// headers and bodies, session token included.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithStorage selects the durable storage behind session persistence.
// Defaults to in-memory storage, which does not survive a restart; use
// session.NewFileStorage (or NewFromEnv's state path) for a persistent
// session.
func WithStorage(s session.Storage) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("storage must not be nil")
		}
		c.storage = s
		return nil
	}
}

// WithAuthenticator substitutes the credential exchange strategy.
func WithAuthenticator(a session.Authenticator) Option {
	return func(c *Client) error {
		if a == nil {
			return fmt.Errorf("authenticator must not be nil")
		}
		c.auth = a
		return nil
	}
}

// WithDemoMode selects the offline demo identity provider: seed accounts
// with a fixed password and no backend round-trip. Entity data still comes
// from the backend; only authentication is substituted. This is the explicit
// switch — demo credentials are never consulted without it.
func WithDemoMode(enabled bool) Option {
	return func(c *Client) error {
		c.demoMode = enabled
		return nil
	}
}

// WithExecutor replaces the internal write queue. Mostly useful in tests.
func WithExecutor(e executor) Option {
	return func(c *Client) error {
		if e == nil {
			return fmt.Errorf("executor must not be nil")
		}
		c.exec = e
		return nil
	}
}
