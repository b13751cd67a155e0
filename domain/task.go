package domain

import "time"

// Task status values as emitted by the backend.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task represents a user-owned activity item. CompletedAt is maintained
// by the backend alongside the status flip; the client renders whatever
// it receives.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	UserID      string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}
