package task

import "time"

// Status represents the state of a task. The set is closed: any other
// value is rejected before a task reaches the store.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusOverdue    Status = "Overdue"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

// Derive computes the status a task must be persisted with. A task whose
// due date falls strictly before today is forced to Overdue unless it is
// already Completed; otherwise the current status is kept unchanged.
// Applied before every create and update, never on read.
func Derive(current Status, due *Date, today time.Time) Status {
	if current != StatusCompleted && due != nil && due.Before(today) {
		return StatusOverdue
	}
	return current
}
