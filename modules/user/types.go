package user

import "time"

// Service error codes. Rejections travel inside response payloads so
// they survive the request-reply boundary; the adapter maps them back
// to sentinel errors.
const (
	CodeNotFound = "not_found"
	CodeConflict = "conflict"
)

// UserResponse represents a user in responses.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetUserRequest is the request for getting a user.
type GetUserRequest struct {
	UserID uint `json:"user_id"`
}

// GetUserResult is the response for getting a user.
type GetUserResult struct {
	User *UserResponse `json:"user,omitempty"`
	Code string        `json:"code,omitempty"`
}

// ListUsersRequest is the request for listing users.
type ListUsersRequest struct{}

// ListUsersResult is the response for listing users.
type ListUsersResult struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// CreateUserRequest is the request for creating a user.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUserResult is the response for creating a user.
type CreateUserResult struct {
	User *UserResponse `json:"user,omitempty"`
	Code string        `json:"code,omitempty"`
}

// UpdateUserRequest is the request for updating a user. Only name and
// email are mutable.
type UpdateUserRequest struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// UpdateUserResult is the response for updating a user. Created reports
// whether the write fell through to the upsert path and stored a fresh
// record instead of overwriting an existing one.
type UpdateUserResult struct {
	User    *UserResponse `json:"user,omitempty"`
	Created bool          `json:"created"`
	Code    string        `json:"code,omitempty"`
}

// DeleteUserRequest is the request for deleting a user.
type DeleteUserRequest struct {
	UserID uint `json:"user_id"`
}

// DeleteUserResult is the response for deleting a user.
type DeleteUserResult struct {
	Deleted bool   `json:"deleted"`
	Code    string `json:"code,omitempty"`
}

// ValidateUserRequest is the request for validating a user reference.
type ValidateUserRequest struct {
	UserID uint `json:"user_id"`
}

// ValidateUserResult is the response for validating a user reference.
type ValidateUserResult struct {
	Valid bool `json:"valid"`
}
