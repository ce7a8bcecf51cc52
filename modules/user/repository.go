package user

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	taskdomain "github.com/example/task-tracker/domain/task"
	domain "github.com/example/task-tracker/domain/user"
)

// ErrNotFound is returned when a user is not found.
var ErrNotFound = errors.New("user not found")

// Repository provides access to user storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new user to the database.
func (r *Repository) Create(u *domain.User) error {
	if err := r.db.Create(u).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by its ID.
func (r *Repository) FindByID(id uint) (*domain.User, error) {
	var u domain.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

// FindAll retrieves all users.
func (r *Repository) FindAll() ([]*domain.User, error) {
	var users []*domain.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

// Save overwrites an existing user row.
func (r *Repository) Save(u *domain.User) error {
	if err := r.db.Save(u).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// Exists checks if a user exists.
func (r *Repository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

// ExistsByAssignedUser reports whether any task row references the user.
func (r *Repository) ExistsByAssignedUser(userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&taskdomain.Task{}).Where("assigned_user_id = ?", userID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check assigned tasks: %w", err)
	}
	return count > 0, nil
}

// Delete removes a user by ID.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&domain.User{}, id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
