// Package tasks wraps the backend's task CRUD endpoints. Each call maps
// to exactly one HTTP exchange, with no retries: failures propagate the
// gateway's normalized error untouched.
package tasks

import (
	"context"
	"encoding/json"

	"github.com/taskpilot/client/api/transport"
	"github.com/taskpilot/client/domain"
)

const basePath = "/tasks"

// Gateway is the HTTP surface the service needs.
type Gateway interface {
	Get(ctx context.Context, path string, query map[string]string) ([]byte, error)
	Post(ctx context.Context, path string, body interface{}) ([]byte, error)
	Put(ctx context.Context, path string, body interface{}) ([]byte, error)
	Patch(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) ([]byte, error)
}

type Service struct {
	gw Gateway
}

func New(gw Gateway) *Service {
	return &Service{gw: gw}
}

// List fetches the caller's tasks. The status filter is only sent when
// it narrows the result ("all" means no filter); sort parameters pass
// through when set.
func (s *Service) List(ctx context.Context, filter transport.TaskFilter) (*transport.TasksResponse, error) {
	query := map[string]string{}
	if filter.Status != "" && filter.Status != transport.FilterAll {
		query["status_filter"] = filter.Status
	}
	if filter.SortBy != "" {
		query["sortBy"] = filter.SortBy
	}
	if filter.SortOrder != "" {
		query["sortOrder"] = filter.SortOrder
	}

	body, err := s.gw.Get(ctx, basePath, query)
	if err != nil {
		return nil, err
	}
	var resp transport.TasksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "malformed task listing", err)
	}
	return &resp, nil
}

// Get fetches a single task; a missing id surfaces as a NOT_FOUND error.
func (s *Service) Get(ctx context.Context, id string) (*domain.Task, error) {
	body, err := s.gw.Get(ctx, basePath+"/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeTask(body)
}

// Create submits a new task; the backend assigns id and timestamps.
func (s *Service) Create(ctx context.Context, req transport.CreateTaskRequest) (*domain.Task, error) {
	body, err := s.gw.Post(ctx, basePath, req)
	if err != nil {
		return nil, err
	}
	return decodeTask(body)
}

// Update applies a partial update to an existing task.
func (s *Service) Update(ctx context.Context, id string, req transport.UpdateTaskRequest) (*domain.Task, error) {
	body, err := s.gw.Put(ctx, basePath+"/"+id, req)
	if err != nil {
		return nil, err
	}
	return decodeTask(body)
}

// Delete removes a task permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.gw.Delete(ctx, basePath+"/"+id)
	return err
}

// Toggle flips a task between pending and completed; the backend
// adjusts completedAt to match.
func (s *Service) Toggle(ctx context.Context, id string) (*domain.Task, error) {
	body, err := s.gw.Patch(ctx, basePath+"/"+id+"/toggle")
	if err != nil {
		return nil, err
	}
	return decodeTask(body)
}

func decodeTask(body []byte) (*domain.Task, error) {
	var task domain.Task
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "malformed task payload", err)
	}
	return &task, nil
}
