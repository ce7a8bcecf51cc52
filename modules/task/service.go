package task

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/example/task-tracker/events"
	"github.com/example/task-tracker/modules/user"
)

// createTask handles the create-task service request. Validation runs
// before anything is written: the status must belong to the closed set
// and the assigned user must exist.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (CreateTaskResult, error) {
	status := domain.Status(req.Status)
	if !status.Valid() {
		return CreateTaskResult{Code: CodeInvalidStatus}, nil
	}

	valid, err := m.userPort.ValidateUser(ctx, req.AssignedUserID)
	if err != nil {
		return CreateTaskResult{}, fmt.Errorf("failed to validate user: %w", err)
	}
	if !valid {
		return CreateTaskResult{Code: CodeUserNotFound}, nil
	}

	t := &domain.Task{
		Title:          req.Title,
		Description:    req.Description,
		Status:         domain.Derive(status, req.DueDate, time.Now()),
		DueDate:        req.DueDate,
		AssignedUserID: req.AssignedUserID,
	}
	if err := m.repo.Create(t); err != nil {
		return CreateTaskResult{}, err
	}

	m.publishTaskCreated(t)
	if t.Status == domain.StatusOverdue && status != domain.StatusOverdue {
		m.publishTaskOverdue(t)
	}

	stored, err := m.repo.FindByID(t.ID)
	if err != nil {
		return CreateTaskResult{}, err
	}
	resp := toTaskResponse(stored)
	return CreateTaskResult{Task: &resp}, nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (GetTaskResult, error) {
	t, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return GetTaskResult{Code: CodeNotFound}, nil
		}
		return GetTaskResult{}, err
	}

	resp := toTaskResponse(t)
	return GetTaskResult{Task: &resp}, nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(_ context.Context, _ ListTasksRequest, _ *mono.Msg) (ListTasksResult, error) {
	tasks, err := m.repo.FindAll()
	if err != nil {
		return ListTasksResult{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	result := ListTasksResult{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		result.Tasks = append(result.Tasks, toTaskResponse(t))
	}
	return result, nil
}

// updateTask handles the update-task service request. Both validations
// run before the existence check, so an invalid status or a missing
// assigned user rejects the request even when the target id is absent.
// When the target exists its mutable fields are overwritten; when it
// does not, the input is stored as a fresh record (upsert-by-absence,
// ignoring the supplied id).
func (m *TaskModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (UpdateTaskResult, error) {
	status := domain.Status(req.Status)
	if !status.Valid() {
		return UpdateTaskResult{Code: CodeInvalidStatus}, nil
	}

	valid, err := m.userPort.ValidateUser(ctx, req.AssignedUserID)
	if err != nil {
		return UpdateTaskResult{}, fmt.Errorf("failed to validate user: %w", err)
	}
	if !valid {
		return UpdateTaskResult{Code: CodeUserNotFound}, nil
	}

	existing, err := m.repo.FindByID(req.TaskID)
	switch {
	case err == nil:
		existing.Title = req.Title
		existing.Description = req.Description
		existing.DueDate = req.DueDate
		existing.AssignedUserID = req.AssignedUserID
		existing.AssignedUser = nil
		existing.Status = domain.Derive(status, req.DueDate, time.Now())
		if err := m.repo.Save(existing); err != nil {
			return UpdateTaskResult{}, err
		}
		if existing.Status == domain.StatusOverdue && status != domain.StatusOverdue {
			m.publishTaskOverdue(existing)
		}
		stored, err := m.repo.FindByID(existing.ID)
		if err != nil {
			return UpdateTaskResult{}, err
		}
		resp := toTaskResponse(stored)
		return UpdateTaskResult{Task: &resp}, nil

	case errors.Is(err, ErrNotFound):
		t := &domain.Task{
			Title:          req.Title,
			Description:    req.Description,
			Status:         domain.Derive(status, req.DueDate, time.Now()),
			DueDate:        req.DueDate,
			AssignedUserID: req.AssignedUserID,
		}
		if err := m.repo.Create(t); err != nil {
			return UpdateTaskResult{}, err
		}
		m.publishTaskCreated(t)
		if t.Status == domain.StatusOverdue && status != domain.StatusOverdue {
			m.publishTaskOverdue(t)
		}
		stored, err := m.repo.FindByID(t.ID)
		if err != nil {
			return UpdateTaskResult{}, err
		}
		resp := toTaskResponse(stored)
		return UpdateTaskResult{Task: &resp, Created: true}, nil

	default:
		return UpdateTaskResult{}, err
	}
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResult, error) {
	t, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return DeleteTaskResult{Code: CodeNotFound}, nil
		}
		return DeleteTaskResult{}, err
	}

	if err := m.repo.Delete(req.TaskID); err != nil {
		return DeleteTaskResult{}, err
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    t.ID,
			UserID:    t.AssignedUserID,
			DeletedAt: time.Now(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskDeleted event for task %d: %v", t.ID, err)
		}
	}

	return DeleteTaskResult{Deleted: true}, nil
}

// publishTaskCreated emits a TaskCreated event. Publishing is
// best-effort and never fails the write.
func (m *TaskModule) publishTaskCreated(t *domain.Task) {
	if m.eventBus == nil {
		return
	}
	event := events.TaskCreatedEvent{
		TaskID:    t.ID,
		Title:     t.Title,
		Status:    string(t.Status),
		UserID:    t.AssignedUserID,
		CreatedAt: t.CreatedAt,
	}
	if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
		log.Printf("[task] Warning: failed to publish TaskCreated event for task %d: %v", t.ID, err)
	}
}

// publishTaskOverdue emits a TaskOverdue event after the status policy
// forced the transition.
func (m *TaskModule) publishTaskOverdue(t *domain.Task) {
	if m.eventBus == nil {
		return
	}
	event := events.TaskOverdueEvent{
		TaskID: t.ID,
		Title:  t.Title,
		UserID: t.AssignedUserID,
	}
	if t.DueDate != nil {
		event.DueDate = t.DueDate.String()
	}
	if err := events.TaskOverdueV1.Publish(m.eventBus, event, nil); err != nil {
		log.Printf("[task] Warning: failed to publish TaskOverdue event for task %d: %v", t.ID, err)
	}
}

// toTaskResponse converts a domain Task to a TaskResponse.
func toTaskResponse(t *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.AssignedUser != nil {
		resp.AssignedUser = &user.UserResponse{
			ID:        t.AssignedUser.ID,
			Name:      t.AssignedUser.Name,
			Email:     t.AssignedUser.Email,
			CreatedAt: t.AssignedUser.CreatedAt,
			UpdatedAt: t.AssignedUser.UpdatedAt,
		}
	}
	return resp
}
