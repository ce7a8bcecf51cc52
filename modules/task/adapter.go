package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// ErrInvalidStatus is returned when a task status is outside the closed set.
var ErrInvalidStatus = errors.New("invalid task status")

// ErrUserNotFound is returned when the assigned user does not exist.
var ErrUserNotFound = errors.New("assigned user not found")

// TaskPort defines the interface for task operations (hexagonal port).
// This is the contract driving adapters use to reach the core domain.
type TaskPort interface {
	ListTasks(ctx context.Context) (*ListTasksResult, error)
	GetTask(ctx context.Context, taskID uint) (*TaskResponse, error)
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*UpdateTaskResult, error)
	DeleteTask(ctx context.Context, taskID uint) error
}

// taskAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter that implements the TaskPort.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
// container is the ServiceContainer from the task module received via
// SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// codeToError maps a service error code back to its sentinel error.
func codeToError(code string) error {
	switch code {
	case CodeInvalidStatus:
		return ErrInvalidStatus
	case CodeUserNotFound:
		return ErrUserNotFound
	case CodeNotFound:
		return ErrNotFound
	}
	return nil
}

// ListTasks lists all tasks via the list-tasks service.
func (a *taskAdapter) ListTasks(ctx context.Context) (*ListTasksResult, error) {
	req := ListTasksRequest{}
	var resp ListTasksResult
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-tasks", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-tasks service call failed: %w", err)
	}
	return &resp, nil
}

// GetTask retrieves a task by ID via the get-task service.
func (a *taskAdapter) GetTask(ctx context.Context, taskID uint) (*TaskResponse, error) {
	req := GetTaskRequest{TaskID: taskID}
	var resp GetTaskResult
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-task service call failed: %w", err)
	}
	if err := codeToError(resp.Code); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

// CreateTask creates a new task via the create-task service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	var resp CreateTaskResult
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create-task service call failed: %w", err)
	}
	if err := codeToError(resp.Code); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

// UpdateTask updates or upsert-creates a task via the update-task service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*UpdateTaskResult, error) {
	var resp UpdateTaskResult
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update-task service call failed: %w", err)
	}
	if err := codeToError(resp.Code); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTask deletes a task via the delete-task service.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID uint) error {
	req := DeleteTaskRequest{TaskID: taskID}
	var resp DeleteTaskResult
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("delete-task service call failed: %w", err)
	}
	return codeToError(resp.Code)
}
