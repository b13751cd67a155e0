// Package credstore persists the client's credentials between runs: the
// access token, an optional refresh token, and a cached copy of the
// authenticated user. The session controller is the only writer; the
// gateway reads the access token on every outgoing request.
package credstore

import "github.com/taskpilot/client/domain"

// Keys under which the three credential entries are stored.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUser         = "user"
)

// Store is the persistence capability selected at startup. Getters
// report zero values rather than errors: a missing or unreadable entry
// means "no credential", never a failure the caller has to handle.
type Store interface {
	SetAccessToken(token string) error
	GetAccessToken() string
	ClearAccessToken() error

	SetRefreshToken(token string) error
	GetRefreshToken() string
	ClearRefreshToken() error
	ClearAllTokens() error

	SetUser(user *domain.User) error
	GetUser() *domain.User
	ClearUser() error

	// ClearAuthStorage removes tokens and the cached user together.
	ClearAuthStorage() error

	Close() error
}
