package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/example/task-tracker/modules/task"
	"github.com/example/task-tracker/modules/user"
)

// mockTaskPort implements task.TaskPort with overridable behavior.
type mockTaskPort struct {
	listFunc   func(ctx context.Context) (*task.ListTasksResult, error)
	getFunc    func(ctx context.Context, taskID uint) (*task.TaskResponse, error)
	createFunc func(ctx context.Context, req *task.CreateTaskRequest) (*task.TaskResponse, error)
	updateFunc func(ctx context.Context, req *task.UpdateTaskRequest) (*task.UpdateTaskResult, error)
	deleteFunc func(ctx context.Context, taskID uint) error
}

func (m *mockTaskPort) ListTasks(ctx context.Context) (*task.ListTasksResult, error) {
	return m.listFunc(ctx)
}

func (m *mockTaskPort) GetTask(ctx context.Context, taskID uint) (*task.TaskResponse, error) {
	return m.getFunc(ctx, taskID)
}

func (m *mockTaskPort) CreateTask(ctx context.Context, req *task.CreateTaskRequest) (*task.TaskResponse, error) {
	return m.createFunc(ctx, req)
}

func (m *mockTaskPort) UpdateTask(ctx context.Context, req *task.UpdateTaskRequest) (*task.UpdateTaskResult, error) {
	return m.updateFunc(ctx, req)
}

func (m *mockTaskPort) DeleteTask(ctx context.Context, taskID uint) error {
	return m.deleteFunc(ctx, taskID)
}

// mockUserPort implements user.UserPort with overridable behavior.
type mockUserPort struct {
	listFunc     func(ctx context.Context) (*user.ListUsersResult, error)
	getFunc      func(ctx context.Context, userID uint) (*user.UserResponse, error)
	createFunc   func(ctx context.Context, req *user.CreateUserRequest) (*user.UserResponse, error)
	updateFunc   func(ctx context.Context, req *user.UpdateUserRequest) (*user.UpdateUserResult, error)
	deleteFunc   func(ctx context.Context, userID uint) error
	validateFunc func(ctx context.Context, userID uint) (bool, error)
}

func (m *mockUserPort) ListUsers(ctx context.Context) (*user.ListUsersResult, error) {
	return m.listFunc(ctx)
}

func (m *mockUserPort) GetUser(ctx context.Context, userID uint) (*user.UserResponse, error) {
	return m.getFunc(ctx, userID)
}

func (m *mockUserPort) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.UserResponse, error) {
	return m.createFunc(ctx, req)
}

func (m *mockUserPort) UpdateUser(ctx context.Context, req *user.UpdateUserRequest) (*user.UpdateUserResult, error) {
	return m.updateFunc(ctx, req)
}

func (m *mockUserPort) DeleteUser(ctx context.Context, userID uint) error {
	return m.deleteFunc(ctx, userID)
}

func (m *mockUserPort) ValidateUser(ctx context.Context, userID uint) (bool, error) {
	return m.validateFunc(ctx, userID)
}

func newTestApp(tp task.TaskPort, up user.UserPort) *fiber.App {
	m := &APIModule{port: 3000, taskPort: tp, userPort: up}
	return m.newApp()
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(&mockTaskPort{}, &mockUserPort{})

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("expected status healthy, got %q", health.Status)
	}
}

func TestCreateTaskEndpoint(t *testing.T) {
	t.Run("valid request answers 201 with Location", func(t *testing.T) {
		tp := &mockTaskPort{
			createFunc: func(_ context.Context, req *task.CreateTaskRequest) (*task.TaskResponse, error) {
				if req.Title != "Write report" || req.AssignedUserID != 1 {
					t.Errorf("unexpected port request %+v", req)
				}
				return &task.TaskResponse{ID: 42, Title: req.Title, Status: req.Status}, nil
			},
		}
		app := newTestApp(tp, &mockUserPort{})

		body := `{"title":"Write report","status":"Pending","assignedUser":{"id":1}}`
		req := httptest.NewRequest("POST", "/tareas", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Errorf("expected status 201, got %d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/tareas/42" {
			t.Errorf("expected Location /tareas/42, got %q", loc)
		}
		raw, _ := io.ReadAll(resp.Body)
		if len(raw) != 0 {
			t.Errorf("expected empty body, got %q", raw)
		}
	})

	t.Run("empty due date answers 400", func(t *testing.T) {
		// The nil createFunc doubles as a guard: a body that fails to
		// parse must never reach the port.
		app := newTestApp(&mockTaskPort{}, &mockUserPort{})

		body := `{"title":"Write report","status":"Pending","dueDate":"","assignedUser":{"id":1}}`
		req := httptest.NewRequest("POST", "/tareas", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("expected status 400, got %d", resp.StatusCode)
		}
	})

	t.Run("invalid status answers 400", func(t *testing.T) {
		tp := &mockTaskPort{
			createFunc: func(_ context.Context, _ *task.CreateTaskRequest) (*task.TaskResponse, error) {
				return nil, task.ErrInvalidStatus
			},
		}
		app := newTestApp(tp, &mockUserPort{})

		body := `{"title":"Write report","status":"Cancelled","assignedUser":{"id":1}}`
		req := httptest.NewRequest("POST", "/tareas", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("expected status 400, got %d", resp.StatusCode)
		}
	})

	t.Run("missing assigned user answers 404", func(t *testing.T) {
		tp := &mockTaskPort{
			createFunc: func(_ context.Context, _ *task.CreateTaskRequest) (*task.TaskResponse, error) {
				return nil, task.ErrUserNotFound
			},
		}
		app := newTestApp(tp, &mockUserPort{})

		body := `{"title":"Write report","status":"Pending","assignedUser":{"id":9999}}`
		req := httptest.NewRequest("POST", "/tareas", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("expected status 404, got %d", resp.StatusCode)
		}
	})
}

func TestGetTaskEndpoint(t *testing.T) {
	tp := &mockTaskPort{
		getFunc: func(_ context.Context, taskID uint) (*task.TaskResponse, error) {
			if taskID == 1 {
				return &task.TaskResponse{ID: 1, Title: "Write report", Status: "Pending"}, nil
			}
			return nil, task.ErrNotFound
		},
	}
	app := newTestApp(tp, &mockUserPort{})

	t.Run("existing task", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/tareas/1", nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}

		var got task.TaskResponse
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if got.ID != 1 || got.Title != "Write report" {
			t.Errorf("unexpected body %+v", got)
		}
	})

	t.Run("missing task answers 404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/tareas/9999", nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("expected status 404, got %d", resp.StatusCode)
		}
	})

	t.Run("non-numeric id answers 400", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/tareas/abc", nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("expected status 400, got %d", resp.StatusCode)
		}
	})
}

func TestListTasksEndpoint(t *testing.T) {
	tp := &mockTaskPort{
		listFunc: func(_ context.Context) (*task.ListTasksResult, error) {
			return &task.ListTasksResult{
				Tasks: []task.TaskResponse{
					{ID: 1, Title: "Write report", Status: "Pending"},
					{ID: 2, Title: "Review code", Status: "Overdue"},
				},
				Total: 2,
			}, nil
		},
	}
	app := newTestApp(tp, &mockUserPort{})

	resp, err := app.Test(httptest.NewRequest("GET", "/tareas", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	// The collection endpoint answers a bare array, not an envelope.
	var got []task.TaskResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(got))
	}
}

func TestUpdateTaskEndpoint(t *testing.T) {
	t.Run("overwrite answers 200 with empty body", func(t *testing.T) {
		tp := &mockTaskPort{
			updateFunc: func(_ context.Context, req *task.UpdateTaskRequest) (*task.UpdateTaskResult, error) {
				return &task.UpdateTaskResult{
					Task: &task.TaskResponse{ID: req.TaskID, Title: req.Title, Status: req.Status},
				}, nil
			},
		}
		app := newTestApp(tp, &mockUserPort{})

		body := `{"title":"Renamed","status":"InProgress","assignedUser":{"id":1}}`
		req := httptest.NewRequest("PUT", "/tareas/1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}
		raw, _ := io.ReadAll(resp.Body)
		if len(raw) != 0 {
			t.Errorf("expected empty overwrite body, got %q", raw)
		}
	})

	t.Run("missing id answers 200 with the stored record", func(t *testing.T) {
		tp := &mockTaskPort{
			updateFunc: func(_ context.Context, req *task.UpdateTaskRequest) (*task.UpdateTaskResult, error) {
				return &task.UpdateTaskResult{
					Task:    &task.TaskResponse{ID: 7, Title: req.Title, Status: req.Status},
					Created: true,
				}, nil
			},
		}
		app := newTestApp(tp, &mockUserPort{})

		body := `{"title":"Brand new","status":"Pending","assignedUser":{"id":1}}`
		req := httptest.NewRequest("PUT", "/tareas/9999", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}

		var got task.TaskResponse
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if got.ID != 7 || got.Title != "Brand new" {
			t.Errorf("unexpected body %+v", got)
		}
	})
}

func TestDeleteTaskEndpoint(t *testing.T) {
	tp := &mockTaskPort{
		deleteFunc: func(_ context.Context, taskID uint) error {
			if taskID == 1 {
				return nil
			}
			return task.ErrNotFound
		},
	}
	app := newTestApp(tp, &mockUserPort{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/tareas/1", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Errorf("expected status 204, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("DELETE", "/tareas/9999", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.StatusCode)
	}
}

func TestCreateUserEndpoint(t *testing.T) {
	up := &mockUserPort{
		createFunc: func(_ context.Context, req *user.CreateUserRequest) (*user.UserResponse, error) {
			return &user.UserResponse{ID: 5, Name: req.Name, Email: req.Email}, nil
		},
	}
	app := newTestApp(&mockTaskPort{}, up)

	body := `{"name":"Alice","email":"alice@example.com"}`
	req := httptest.NewRequest("POST", "/usuarios", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Errorf("expected status 201, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/usuarios/5" {
		t.Errorf("expected Location /usuarios/5, got %q", loc)
	}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) != 0 {
		t.Errorf("expected empty body, got %q", raw)
	}
}

func TestGetUserEndpoint(t *testing.T) {
	up := &mockUserPort{
		getFunc: func(_ context.Context, userID uint) (*user.UserResponse, error) {
			return nil, user.ErrNotFound
		},
	}
	app := newTestApp(&mockTaskPort{}, up)

	resp, err := app.Test(httptest.NewRequest("GET", "/usuarios/9999", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.StatusCode)
	}
}

func TestUpdateUserEndpoint(t *testing.T) {
	up := &mockUserPort{
		updateFunc: func(_ context.Context, req *user.UpdateUserRequest) (*user.UpdateUserResult, error) {
			return &user.UpdateUserResult{
				User:    &user.UserResponse{ID: 8, Name: req.Name, Email: req.Email},
				Created: true,
			}, nil
		},
	}
	app := newTestApp(&mockTaskPort{}, up)

	body := `{"name":"Ghost","email":"ghost@example.com"}`
	req := httptest.NewRequest("PUT", "/usuarios/9999", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	var got user.UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != 8 || got.Name != "Ghost" {
		t.Errorf("unexpected body %+v", got)
	}
}

func TestDeleteUserEndpoint(t *testing.T) {
	t.Run("referenced user answers 409", func(t *testing.T) {
		up := &mockUserPort{
			deleteFunc: func(_ context.Context, _ uint) error {
				return user.ErrHasTasks
			},
		}
		app := newTestApp(&mockTaskPort{}, up)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/usuarios/1", nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusConflict {
			t.Errorf("expected status 409, got %d", resp.StatusCode)
		}

		var body ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Error != "conflict" {
			t.Errorf("expected error conflict, got %q", body.Error)
		}
	})

	t.Run("unreferenced user answers 204", func(t *testing.T) {
		up := &mockUserPort{
			deleteFunc: func(_ context.Context, _ uint) error {
				return nil
			},
		}
		app := newTestApp(&mockTaskPort{}, up)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/usuarios/1", nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusNoContent {
			t.Errorf("expected status 204, got %d", resp.StatusCode)
		}
	})
}
