package task

import (
	"time"

	"gorm.io/gorm"

	"github.com/example/task-tracker/domain/user"
)

// Task is the core domain entity: a unit of work with a status, an
// optional due date and exactly one assigned user.
type Task struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Title          string         `gorm:"size:200;not null" json:"title"`
	Description    string         `gorm:"size:500" json:"description"`
	Status         Status         `gorm:"size:20;not null" json:"status"`
	DueDate        *Date          `json:"dueDate,omitempty"`
	AssignedUserID uint           `gorm:"not null;index" json:"-"`
	AssignedUser   *user.User     `gorm:"foreignKey:AssignedUserID" json:"assignedUser,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}
