package task

import (
	"time"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/example/task-tracker/modules/user"
)

// Service error codes carried inside response payloads across the
// request-reply boundary.
const (
	CodeInvalidStatus = "invalid_status"
	CodeUserNotFound  = "user_not_found"
	CodeNotFound      = "not_found"
)

// TaskResponse represents a task in responses.
type TaskResponse struct {
	ID           uint               `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Status       string             `json:"status"`
	DueDate      *domain.Date       `json:"dueDate,omitempty"`
	AssignedUser *user.UserResponse `json:"assignedUser,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Status         string       `json:"status"`
	DueDate        *domain.Date `json:"due_date,omitempty"`
	AssignedUserID uint         `json:"assigned_user_id"`
}

// CreateTaskResult is the response for creating a task.
type CreateTaskResult struct {
	Task *TaskResponse `json:"task,omitempty"`
	Code string        `json:"code,omitempty"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID uint `json:"task_id"`
}

// GetTaskResult is the response for getting a task.
type GetTaskResult struct {
	Task *TaskResponse `json:"task,omitempty"`
	Code string        `json:"code,omitempty"`
}

// ListTasksRequest is the request for listing tasks.
type ListTasksRequest struct{}

// ListTasksResult is the response for listing tasks.
type ListTasksResult struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// UpdateTaskRequest is the request for updating a task. All mutable
// fields are overwritten from the request.
type UpdateTaskRequest struct {
	TaskID         uint         `json:"task_id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Status         string       `json:"status"`
	DueDate        *domain.Date `json:"due_date,omitempty"`
	AssignedUserID uint         `json:"assigned_user_id"`
}

// UpdateTaskResult is the response for updating a task. Created reports
// whether the write fell through to the upsert path and stored a fresh
// record instead of overwriting an existing one.
type UpdateTaskResult struct {
	Task    *TaskResponse `json:"task,omitempty"`
	Created bool          `json:"created"`
	Code    string        `json:"code,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID uint `json:"task_id"`
}

// DeleteTaskResult is the response for deleting a task.
type DeleteTaskResult struct {
	Deleted bool   `json:"deleted"`
	Code    string `json:"code,omitempty"`
}
