package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// ErrHasTasks is returned when a user cannot be deleted because tasks
// still reference it.
var ErrHasTasks = errors.New("user has assigned tasks")

// UserPort defines the interface for user operations (hexagonal port).
// Both the task module and the HTTP adapter consume it.
type UserPort interface {
	ListUsers(ctx context.Context) (*ListUsersResult, error)
	GetUser(ctx context.Context, userID uint) (*UserResponse, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	UpdateUser(ctx context.Context, req *UpdateUserRequest) (*UpdateUserResult, error)
	DeleteUser(ctx context.Context, userID uint) error
	ValidateUser(ctx context.Context, userID uint) (bool, error)
}

// userAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter that implements the UserPort.
type userAdapter struct {
	container mono.ServiceContainer
}

// NewUserAdapter creates a new adapter for user services.
// container is the ServiceContainer from the user module received via
// SetDependencyServiceContainer.
func NewUserAdapter(container mono.ServiceContainer) UserPort {
	if container == nil {
		panic("user adapter requires non-nil ServiceContainer")
	}
	return &userAdapter{container: container}
}

// ListUsers lists all users via the list-users service.
func (a *userAdapter) ListUsers(ctx context.Context) (*ListUsersResult, error) {
	req := ListUsersRequest{}
	var resp ListUsersResult
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-users", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-users service call failed: %w", err)
	}
	return &resp, nil
}

// GetUser retrieves a user by ID via the get-user service.
func (a *userAdapter) GetUser(ctx context.Context, userID uint) (*UserResponse, error) {
	req := GetUserRequest{UserID: userID}
	var resp GetUserResult
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-user", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-user service call failed: %w", err)
	}
	if resp.Code == CodeNotFound {
		return nil, ErrNotFound
	}
	return resp.User, nil
}

// CreateUser creates a new user via the create-user service.
func (a *userAdapter) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	var resp CreateUserResult
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-user", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create-user service call failed: %w", err)
	}
	return resp.User, nil
}

// UpdateUser updates or upsert-creates a user via the update-user service.
func (a *userAdapter) UpdateUser(ctx context.Context, req *UpdateUserRequest) (*UpdateUserResult, error) {
	var resp UpdateUserResult
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-user", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update-user service call failed: %w", err)
	}
	return &resp, nil
}

// DeleteUser deletes a user via the delete-user service.
func (a *userAdapter) DeleteUser(ctx context.Context, userID uint) error {
	req := DeleteUserRequest{UserID: userID}
	var resp DeleteUserResult
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete-user", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("delete-user service call failed: %w", err)
	}
	switch resp.Code {
	case CodeNotFound:
		return ErrNotFound
	case CodeConflict:
		return ErrHasTasks
	}
	return nil
}

// ValidateUser checks if a user exists via the validate-user service.
func (a *userAdapter) ValidateUser(ctx context.Context, userID uint) (bool, error) {
	req := ValidateUserRequest{UserID: userID}
	var resp ValidateUserResult
	if err := helper.CallRequestReplyService(
		ctx, a.container, "validate-user", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return false, fmt.Errorf("validate-user service call failed: %w", err)
	}
	return resp.Valid, nil
}
