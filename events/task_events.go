package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// TaskCreatedEvent is emitted when a new task is persisted, whether
// through create or the upsert path of update.
type TaskCreatedEvent struct {
	TaskID    uint      `json:"task_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskCreatedV1 is the typed event definition for task creation.
// Subject: events.task.v1.task-created
var TaskCreatedV1 = helper.EventDefinition[TaskCreatedEvent](
	"task", "TaskCreated", "v1",
)

// TaskOverdueEvent is emitted when the status policy forces a task to
// Overdue during a write.
type TaskOverdueEvent struct {
	TaskID  uint   `json:"task_id"`
	Title   string `json:"title"`
	UserID  uint   `json:"user_id"`
	DueDate string `json:"due_date"`
}

// TaskOverdueV1 is the typed event definition for forced overdue
// transitions. Subject: events.task.v1.task-overdue
var TaskOverdueV1 = helper.EventDefinition[TaskOverdueEvent](
	"task", "TaskOverdue", "v1",
)

// TaskDeletedEvent is emitted when a task is deleted.
type TaskDeletedEvent struct {
	TaskID    uint      `json:"task_id"`
	UserID    uint      `json:"user_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// TaskDeletedV1 is the typed event definition for task deletion.
// Subject: events.task.v1.task-deleted
var TaskDeletedV1 = helper.EventDefinition[TaskDeletedEvent](
	"task", "TaskDeleted", "v1",
)
