package tasks_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskpilot/client/api/tasks"
	"github.com/taskpilot/client/api/transport"
	"github.com/taskpilot/client/domain"
	"github.com/taskpilot/client/internal/gateway"
)

// fakeBackend is an in-memory rendition of the task endpoints, just
// enough contract to exercise the client against.
type fakeBackend struct {
	nextID    int
	tasks     map[string]*domain.Task
	order     []string
	lastQuery url.Values
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{tasks: map[string]*domain.Task{}}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tasks", b.list)
	mux.HandleFunc("POST /tasks", b.create)
	mux.HandleFunc("GET /tasks/{id}", b.get)
	mux.HandleFunc("PUT /tasks/{id}", b.update)
	mux.HandleFunc("DELETE /tasks/{id}", b.delete)
	mux.HandleFunc("PATCH /tasks/{id}/toggle", b.toggle)
	return mux
}

func (b *fakeBackend) list(w http.ResponseWriter, r *http.Request) {
	b.lastQuery = r.URL.Query()
	out := []domain.Task{}
	filter := r.URL.Query().Get("status_filter")
	for _, id := range b.order {
		task := b.tasks[id]
		if filter != "" && task.Status != filter {
			continue
		}
		out = append(out, *task)
	}
	json.NewEncoder(w).Encode(transport.TasksResponse{Tasks: out, Total: len(out)})
}

func (b *fakeBackend) create(w http.ResponseWriter, r *http.Request) {
	var req transport.CreateTaskRequest
	json.NewDecoder(r.Body).Decode(&req)
	b.nextID++
	now := time.Now().UTC().Truncate(time.Second)
	task := &domain.Task{
		ID:          fmt.Sprintf("t-%d", b.nextID),
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.StatusPending,
		UserID:      "u-1",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	b.tasks[task.ID] = task
	b.order = append(b.order, task.ID)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(task)
}

func (b *fakeBackend) find(w http.ResponseWriter, r *http.Request) *domain.Task {
	task, ok := b.tasks[r.PathValue("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Task not found"})
		return nil
	}
	return task
}

func (b *fakeBackend) get(w http.ResponseWriter, r *http.Request) {
	if task := b.find(w, r); task != nil {
		json.NewEncoder(w).Encode(task)
	}
}

func (b *fakeBackend) update(w http.ResponseWriter, r *http.Request) {
	task := b.find(w, r)
	if task == nil {
		return
	}
	var req transport.UpdateTaskRequest
	json.NewDecoder(r.Body).Decode(&req)
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	task.UpdatedAt = time.Now().UTC()
	json.NewEncoder(w).Encode(task)
}

func (b *fakeBackend) delete(w http.ResponseWriter, r *http.Request) {
	if task := b.find(w, r); task != nil {
		delete(b.tasks, task.ID)
		w.WriteHeader(http.StatusOK)
	}
}

func (b *fakeBackend) toggle(w http.ResponseWriter, r *http.Request) {
	task := b.find(w, r)
	if task == nil {
		return
	}
	if task.Status == domain.StatusCompleted {
		task.Status = domain.StatusPending
		task.CompletedAt = nil
	} else {
		task.Status = domain.StatusCompleted
		now := time.Now().UTC()
		task.CompletedAt = &now
	}
	json.NewEncoder(w).Encode(task)
}

func newTestService(t *testing.T) (*tasks.Service, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return tasks.New(gateway.New(srv.URL, nil)), backend
}

func TestListFilterQueryConstruction(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, transport.TaskFilter{Status: transport.FilterAll})
	require.NoError(t, err)
	assert.False(t, backend.lastQuery.Has("status_filter"), "all must not send a status filter")

	_, err = svc.List(ctx, transport.TaskFilter{})
	require.NoError(t, err)
	assert.False(t, backend.lastQuery.Has("status_filter"), "absent status must not send a filter")

	_, err = svc.List(ctx, transport.TaskFilter{Status: transport.FilterPending})
	require.NoError(t, err)
	assert.Equal(t, "pending", backend.lastQuery.Get("status_filter"))

	_, err = svc.List(ctx, transport.TaskFilter{SortBy: "createdAt", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "createdAt", backend.lastQuery.Get("sortBy"))
	assert.Equal(t, "desc", backend.lastQuery.Get("sortOrder"))
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, transport.CreateTaskRequest{Title: "T", Description: "D"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusPending, created.Status)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "D", got.Description)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Nil(t, got.CompletedAt)
}

func TestToggleIsAnInvolution(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, transport.CreateTaskRequest{Title: "T"})
	require.NoError(t, err)

	once, err := svc.Toggle(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, once.Status)
	assert.NotNil(t, once.CompletedAt)

	twice, err := svc.Toggle(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Status, twice.Status)
	assert.Nil(t, twice.CompletedAt)
}

func TestUpdateSendsOnlyChangedFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, transport.CreateTaskRequest{Title: "T", Description: "D"})
	require.NoError(t, err)

	title := "T2"
	updated, err := svc.Update(ctx, created.ID, transport.UpdateTaskRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "D", updated.Description, "unset fields stay untouched")
}

func TestGetMissingTask(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.Equal(t, "Task not found", domain.ErrorMessage(err, ""))
}

func TestDeleteThenGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, transport.CreateTaskRequest{Title: "T"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}
