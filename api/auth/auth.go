// Package auth wraps the backend's authentication endpoints. Each call
// maps to exactly one HTTP exchange; failures propagate the gateway's
// normalized error untouched.
package auth

import (
	"context"
	"encoding/json"

	"github.com/taskpilot/client/api/transport"
	"github.com/taskpilot/client/domain"
)

const (
	registerPath = "/auth/register"
	loginPath    = "/auth/login"
	mePath       = "/auth/me"
)

// Gateway is the HTTP surface the service needs.
type Gateway interface {
	Get(ctx context.Context, path string, query map[string]string) ([]byte, error)
	Post(ctx context.Context, path string, body interface{}) ([]byte, error)
}

type Service struct {
	gw Gateway
}

func New(gw Gateway) *Service {
	return &Service{gw: gw}
}

// Register creates a new account and returns the created user.
func (s *Service) Register(ctx context.Context, req transport.RegisterRequest) (*domain.User, error) {
	body, err := s.gw.Post(ctx, registerPath, req)
	if err != nil {
		return nil, err
	}
	return decodeUser(body)
}

// Login exchanges credentials for access and refresh tokens.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (*transport.LoginResponse, error) {
	body, err := s.gw.Post(ctx, loginPath, req)
	if err != nil {
		return nil, err
	}
	var resp transport.LoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "malformed login response", err)
	}
	return &resp, nil
}

// CurrentUser fetches the authenticated user; the gateway attaches the
// bearer token.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	body, err := s.gw.Get(ctx, mePath, nil)
	if err != nil {
		return nil, err
	}
	return decodeUser(body)
}

func decodeUser(body []byte) (*domain.User, error) {
	var user domain.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "malformed user payload", err)
	}
	return &user, nil
}
