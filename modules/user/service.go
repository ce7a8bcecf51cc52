package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"

	domain "github.com/example/task-tracker/domain/user"
	"github.com/example/task-tracker/events"
)

// listUsers handles the list-users service request.
func (m *UserModule) listUsers(_ context.Context, _ ListUsersRequest, _ *mono.Msg) (ListUsersResult, error) {
	users, err := m.repo.FindAll()
	if err != nil {
		return ListUsersResult{}, fmt.Errorf("failed to list users: %w", err)
	}

	result := ListUsersResult{
		Users: make([]UserResponse, 0, len(users)),
		Total: len(users),
	}
	for _, u := range users {
		result.Users = append(result.Users, toUserResponse(u))
	}
	return result, nil
}

// getUser handles the get-user service request.
func (m *UserModule) getUser(_ context.Context, req GetUserRequest, _ *mono.Msg) (GetUserResult, error) {
	u, err := m.repo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return GetUserResult{Code: CodeNotFound}, nil
		}
		return GetUserResult{}, err
	}

	resp := toUserResponse(u)
	return GetUserResult{User: &resp}, nil
}

// createUser handles the create-user service request. Email format is
// deliberately not validated.
func (m *UserModule) createUser(_ context.Context, req CreateUserRequest, _ *mono.Msg) (CreateUserResult, error) {
	u := &domain.User{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := m.repo.Create(u); err != nil {
		return CreateUserResult{}, err
	}

	m.publishUserCreated(u)

	resp := toUserResponse(u)
	return CreateUserResult{User: &resp}, nil
}

// updateUser handles the update-user service request. When the target
// id exists its name and email are overwritten; when it does not, the
// input is stored as a fresh record (upsert-by-absence).
func (m *UserModule) updateUser(_ context.Context, req UpdateUserRequest, _ *mono.Msg) (UpdateUserResult, error) {
	existing, err := m.repo.FindByID(req.UserID)
	switch {
	case err == nil:
		existing.Name = req.Name
		existing.Email = req.Email
		if err := m.repo.Save(existing); err != nil {
			return UpdateUserResult{}, err
		}
		resp := toUserResponse(existing)
		return UpdateUserResult{User: &resp}, nil

	case errors.Is(err, ErrNotFound):
		u := &domain.User{
			Name:  req.Name,
			Email: req.Email,
		}
		if err := m.repo.Create(u); err != nil {
			return UpdateUserResult{}, err
		}
		m.publishUserCreated(u)
		resp := toUserResponse(u)
		return UpdateUserResult{User: &resp, Created: true}, nil

	default:
		return UpdateUserResult{}, err
	}
}

// deleteUser handles the delete-user service request. A user that is
// still referenced by at least one task is never deleted; the store
// does not enforce this on its own.
func (m *UserModule) deleteUser(_ context.Context, req DeleteUserRequest, _ *mono.Msg) (DeleteUserResult, error) {
	exists, err := m.repo.Exists(req.UserID)
	if err != nil {
		return DeleteUserResult{}, err
	}
	if !exists {
		return DeleteUserResult{Code: CodeNotFound}, nil
	}

	referenced, err := m.repo.ExistsByAssignedUser(req.UserID)
	if err != nil {
		return DeleteUserResult{}, err
	}
	if referenced {
		return DeleteUserResult{Code: CodeConflict}, nil
	}

	if err := m.repo.Delete(req.UserID); err != nil {
		return DeleteUserResult{}, err
	}

	if m.eventBus != nil {
		event := events.UserDeletedEvent{
			UserID:    req.UserID,
			DeletedAt: time.Now(),
		}
		if err := events.UserDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[user] Warning: failed to publish UserDeleted event for user %d: %v", req.UserID, err)
		}
	}

	return DeleteUserResult{Deleted: true}, nil
}

// validateUser handles the validate-user service request.
func (m *UserModule) validateUser(_ context.Context, req ValidateUserRequest, _ *mono.Msg) (ValidateUserResult, error) {
	exists, err := m.repo.Exists(req.UserID)
	if err != nil {
		return ValidateUserResult{}, err
	}
	return ValidateUserResult{Valid: exists}, nil
}

// publishUserCreated emits a UserCreated event. Publishing is
// best-effort and never fails the write.
func (m *UserModule) publishUserCreated(u *domain.User) {
	if m.eventBus == nil {
		return
	}
	event := events.UserCreatedEvent{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
	if err := events.UserCreatedV1.Publish(m.eventBus, event, nil); err != nil {
		log.Printf("[user] Warning: failed to publish UserCreated event for user %d: %v", u.ID, err)
	}
}

// toUserResponse converts a domain User to a UserResponse.
func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
