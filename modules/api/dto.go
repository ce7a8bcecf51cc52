package api

import domain "github.com/example/task-tracker/domain/task"

// UserRef identifies the user a task is assigned to.
type UserRef struct {
	ID uint `json:"id"`
}

// TaskRequest is the HTTP request body for creating or updating a task.
type TaskRequest struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Status       string       `json:"status"`
	DueDate      *domain.Date `json:"dueDate,omitempty"`
	AssignedUser UserRef      `json:"assignedUser"`
}

// UserRequest is the HTTP request body for creating or updating a user.
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
