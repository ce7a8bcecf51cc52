package task

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/example/task-tracker/domain/task"
)

// ErrNotFound is returned when a task is not found.
var ErrNotFound = errors.New("task not found")

// Repository provides access to task storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task to the database. Only the foreign key is
// written; the assigned user row itself is never touched.
func (r *Repository) Create(t *domain.Task) error {
	if err := r.db.Omit(clause.Associations).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID with the assigned user preloaded.
func (r *Repository) FindByID(id uint) (*domain.Task, error) {
	var t domain.Task
	if err := r.db.Preload("AssignedUser").First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

// FindAll retrieves all tasks with their assigned users preloaded.
func (r *Repository) FindAll() ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.Preload("AssignedUser").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return tasks, nil
}

// Save overwrites an existing task row.
func (r *Repository) Save(t *domain.Task) error {
	if err := r.db.Omit(clause.Associations).Save(t).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// Delete removes a task by ID.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&domain.Task{}, id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
