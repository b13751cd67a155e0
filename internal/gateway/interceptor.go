package gateway

import (
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const headerRequestID = "X-Request-ID"

// TokenReader is the read-only credential view the gateway needs.
type TokenReader interface {
	GetAccessToken() string
}

// AuthPurger is the slice of the credential store SessionGuard clears.
type AuthPurger interface {
	ClearAuthStorage() error
}

// Navigator forces the application to the sign-in entry point. The
// expired flag distinguishes an invalidated session from a plain logout.
type Navigator interface {
	SignIn(expired bool)
}

// BearerAuth attaches the stored access token to every outgoing request.
type BearerAuth struct {
	Tokens TokenReader
}

func (b BearerAuth) Intercept(req *fasthttp.Request) {
	if b.Tokens == nil {
		return
	}
	if token := b.Tokens.GetAccessToken(); token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)
	}
}

// RequestID tags every outgoing request for log correlation.
type RequestID struct{}

func (RequestID) Intercept(req *fasthttp.Request) {
	req.Header.Set(headerRequestID, uuid.NewString())
}

// SessionGuard enforces the unconditional 401 rule: purge stored
// credentials and send the user back to sign-in with the expired flag,
// no matter which call hit the dead session.
type SessionGuard struct {
	Store  AuthPurger
	Nav    Navigator
	Logger *zap.Logger
}

func (g SessionGuard) OnResponse(status int) {
	if status != fasthttp.StatusUnauthorized {
		return
	}
	if g.Store != nil {
		if err := g.Store.ClearAuthStorage(); err != nil && g.Logger != nil {
			g.Logger.Warn("failed to purge credentials", zap.Error(err))
		}
	}
	if g.Nav != nil {
		g.Nav.SignIn(true)
	}
}
