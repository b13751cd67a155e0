package domain

// AuthState is the session controller's externally visible state.
// IsAuthenticated implies User is non-nil; Loading is transient and
// always settles to false once the in-flight operation resolves.
// An empty Error means no error is being shown.
type AuthState struct {
	IsAuthenticated bool
	User            *User
	Loading         bool
	Error           string
}
