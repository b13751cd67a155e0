// Package session owns the authentication state for the lifetime of the
// client process. Every screen consults the one controller instance to
// decide between protected content and the sign-in prompt.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/taskpilot/client/api/transport"
	"github.com/taskpilot/client/domain"
	"github.com/taskpilot/client/internal/credstore"
)

// AuthAPI is the slice of the auth service the controller drives.
type AuthAPI interface {
	Register(ctx context.Context, req transport.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req transport.LoginRequest) (*transport.LoginResponse, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// Navigator forces the application to the sign-in entry point.
type Navigator interface {
	SignIn(expired bool)
}

// Controller is the single source of truth for authentication state.
// It is the only writer of the credential store.
type Controller struct {
	api    AuthAPI
	store  credstore.Store
	nav    Navigator
	logger *zap.Logger

	mu    sync.Mutex
	state domain.AuthState
}

// New builds the controller in its initializing state (loading, not
// authenticated). Callers run CheckAuth right after construction to
// resolve it.
func New(api AuthAPI, store credstore.Store, nav Navigator, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		api:    api,
		store:  store,
		nav:    nav,
		logger: logger,
		state:  domain.AuthState{Loading: true},
	}
}

// State returns a snapshot of the current authentication state.
func (c *Controller) State() domain.AuthState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CheckAuth resolves whether a stored session is still valid. A failure
// here is not an error condition: it simply means "not logged in", so
// the error is deliberately dropped.
func (c *Controller) CheckAuth(ctx context.Context) {
	c.begin()

	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		c.logger.Debug("auth check failed", zap.Error(err))
		c.set(domain.AuthState{})
		return
	}

	c.set(domain.AuthState{IsAuthenticated: true, User: user})
}

// Login authenticates, persists the issued tokens, and loads the user.
// The access token is stored before the user fetch is issued so the
// gateway can attach it to that very call.
func (c *Controller) Login(ctx context.Context, req transport.LoginRequest) error {
	c.begin()

	resp, err := c.api.Login(ctx, req)
	if err != nil {
		return c.fail(err, "Login failed")
	}

	if err := c.store.SetAccessToken(resp.AccessToken); err != nil {
		return c.fail(err, "Login failed")
	}
	if resp.RefreshToken != "" {
		if err := c.store.SetRefreshToken(resp.RefreshToken); err != nil {
			return c.fail(err, "Login failed")
		}
	}

	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return c.fail(err, "Login failed")
	}

	if err := c.store.SetUser(user); err != nil {
		c.logger.Warn("failed to cache user", zap.Error(err))
	}

	c.set(domain.AuthState{IsAuthenticated: true, User: user})
	return nil
}

// Register creates the account but does not authenticate: the state
// stays anonymous until an explicit login.
func (c *Controller) Register(ctx context.Context, req transport.RegisterRequest) error {
	c.begin()

	if _, err := c.api.Register(ctx, req); err != nil {
		return c.fail(err, "Registration failed")
	}

	c.mu.Lock()
	c.state.Loading = false
	c.state.Error = ""
	c.mu.Unlock()
	return nil
}

// Logout purges stored credentials, resets the state, and sends the
// user to sign-in. It never touches the network.
func (c *Controller) Logout() {
	if err := c.store.ClearAuthStorage(); err != nil {
		c.logger.Warn("failed to clear credentials", zap.Error(err))
	}
	c.set(domain.AuthState{})
	if c.nav != nil {
		c.nav.SignIn(false)
	}
}

func (c *Controller) begin() {
	c.mu.Lock()
	c.state.Loading = true
	c.state.Error = ""
	c.mu.Unlock()
}

func (c *Controller) set(state domain.AuthState) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

// fail records the failure for the UI and re-raises it to the caller.
func (c *Controller) fail(err error, fallback string) error {
	c.mu.Lock()
	c.state.Loading = false
	c.state.Error = domain.ErrorMessage(err, fallback)
	c.mu.Unlock()
	return err
}
