// Package console is the client SDK for the OpsDesk administrative console
// backend: the email, ticket and timesheet workflow consumed by ADMIN,
// MANAGER and EMPLOYEE identities. The Client owns the session, the access
// policy checks, and one resource store per backend entity; views render
// store state and never hold authoritative copies.
package console

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/opsdesk/console/internal/policy"
	"github.com/opsdesk/console/internal/session"
	"github.com/opsdesk/console/internal/store"
	"github.com/opsdesk/console/internal/syncqueue"
	"github.com/opsdesk/console/internal/types"
)

// Client is the console's connection to the backend boundary. Construct one
// per process; all stores and the session hang off it, so tests can run
// multiple isolated clients side by side.
type Client struct {
	baseURL    string
	http       *http.Client
	exec       executor
	instanceID string

	// construction-time knobs, consumed at the end of New
	storage  session.Storage
	auth     session.Authenticator
	demoMode bool

	session *session.Store

	emails       *store.Emails
	tickets      *store.Tickets
	timesheets   *store.Timesheets
	users        *store.Users
	integrations *store.Integrations
	logs         *store.Logs
	dashboard    *store.Dashboard

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given backend base URL. Additional options
// can be provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:    baseURL,
		http:       &http.Client{Timeout: 30 * time.Second},
		instanceID: uuid.NewString(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	if c.storage == nil {
		c.storage = session.NewMemStorage()
	}
	if c.auth == nil {
		if c.demoMode {
			c.auth = session.DemoAuthenticator{}
		} else {
			c.auth = &session.BackendAuthenticator{HTTP: c.http, BaseURL: c.baseURL}
		}
	}
	c.session = session.New(c.storage, c.auth)

	if c.exec == nil {
		c.exec = newDefaultExecutor()
	}

	// The token wrapper goes on last so every backend call, including ones
	// issued through the debug transport, carries the session token.
	c.wrapTransportWithToken()

	c.emails = store.NewEmails(c.http, c.baseURL, c.exec)
	c.tickets = store.NewTickets(c.http, c.baseURL, c.exec)
	c.timesheets = store.NewTimesheets(c.http, c.baseURL, c.exec, c.session)
	c.users = store.NewUsers(c.http, c.baseURL, c.exec)
	c.integrations = store.NewIntegrations(c.http, c.baseURL, c.exec)
	c.logs = store.NewLogs(c.http, c.baseURL, c.exec)
	c.dashboard = store.NewDashboard(c.http, c.baseURL)

	log.Debug().Str("instance", c.instanceID).Str("base_url", baseURL).Bool("demo", c.demoMode).Msg("console: client ready")
	return c
}

// wrapTransportWithToken wraps the HTTP client's transport so every request
// carries the current session token. The token is read from the session
// store on each request; login/logout are the only writers.
func (c *Client) wrapTransportWithToken() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &tokenTransport{
		base:  baseTransport,
		token: c.session.Token,
	}
}

// tokenTransport wraps an http.RoundTripper to add the Authorization header
// when a session is active.
type tokenTransport struct {
	base  http.RoundTripper
	token func() string
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok := t.token()
	if tok == "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+tok)
	return t.base.RoundTrip(cloned)
}

// Close stops the background executor (if any). Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// newDefaultExecutor constructs the sync queue with env-tuned settings,
// falling back to defaults when the environment is unusable.
func newDefaultExecutor() *syncqueue.Executor {
	cfg, err := syncqueue.LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("console: bad queue config, using defaults")
		cfg = syncqueue.Config{}
	}
	return syncqueue.NewExecutor(cfg)
}

// --------------------------------------------------------------------
// Session operations
// --------------------------------------------------------------------

// Session exposes the identity store directly.
func (c *Client) Session() *session.Store { return c.session }

// Login authenticates and returns the identity together with its one-time
// post-login landing route.
func (c *Client) Login(ctx context.Context, username, password string) (types.User, policy.Route, error) {
	user, err := c.session.Login(ctx, username, password)
	if err != nil {
		loginsTotal.WithLabelValues("failure").Inc()
		return types.User{}, policy.RouteLogin, err
	}
	loginsTotal.WithLabelValues("success").Inc()
	return user, policy.LandingRoute(user.Role), nil
}

// Logout clears the session. Idempotent.
func (c *Client) Logout() { c.session.Logout() }

// Navigate runs the access policy for the current session against a target
// route.
func (c *Client) Navigate(target policy.Route) policy.Decision {
	user, ok := c.session.Current()
	return policy.Decide(ok, user.Role, target)
}

// --------------------------------------------------------------------
// Resource stores
// --------------------------------------------------------------------

// Emails returns the inbound email store.
func (c *Client) Emails() *store.Emails { return c.emails }

// Tickets returns the ticket store.
func (c *Client) Tickets() *store.Tickets { return c.tickets }

// Timesheets returns the timesheet store.
func (c *Client) Timesheets() *store.Timesheets { return c.timesheets }

// Users returns the account store.
func (c *Client) Users() *store.Users { return c.users }

// Integrations returns the third-party connector store.
func (c *Client) Integrations() *store.Integrations { return c.integrations }

// Logs returns the system/error log store.
func (c *Client) Logs() *store.Logs { return c.logs }

// Dashboard returns the metrics and chart store.
func (c *Client) Dashboard() *store.Dashboard { return c.dashboard }
