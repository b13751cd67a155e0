// Package transport holds the request and response payloads exchanged
// with the backend, exactly as they appear on the wire.
package transport

// RegisterRequest creates a new account. Registration does not log the
// user in; a separate login call is required.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// UpdateTaskRequest carries a partial update; nil fields are left
// untouched by the backend.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Status filter values accepted by TaskFilter.
const (
	FilterAll       = "all"
	FilterPending   = "pending"
	FilterCompleted = "completed"
)

// TaskFilter narrows and orders a task listing. It is built fresh for
// every list request and never persisted.
type TaskFilter struct {
	Status    string
	SortBy    string
	SortOrder string
}
