package credstore

import "github.com/taskpilot/client/domain"

// Noop stands in when no persistence medium is available, for example
// in ephemeral or sandboxed environments. Writes succeed silently and
// reads report an empty store, so callers never have to special-case
// the missing backend.
type Noop struct{}

var _ Store = Noop{}

func NewNoop() Noop { return Noop{} }

func (Noop) SetAccessToken(string) error  { return nil }
func (Noop) GetAccessToken() string       { return "" }
func (Noop) ClearAccessToken() error      { return nil }
func (Noop) SetRefreshToken(string) error { return nil }
func (Noop) GetRefreshToken() string      { return "" }
func (Noop) ClearRefreshToken() error     { return nil }
func (Noop) ClearAllTokens() error        { return nil }
func (Noop) SetUser(*domain.User) error   { return nil }
func (Noop) GetUser() *domain.User        { return nil }
func (Noop) ClearUser() error             { return nil }
func (Noop) ClearAuthStorage() error      { return nil }
func (Noop) Close() error                 { return nil }
