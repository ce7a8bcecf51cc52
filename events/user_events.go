package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// UserCreatedEvent is emitted when a new user is persisted.
type UserCreatedEvent struct {
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreatedV1 is the typed event definition for user creation.
// Subject: events.user.v1.user-created
var UserCreatedV1 = helper.EventDefinition[UserCreatedEvent](
	"user", "UserCreated", "v1",
)

// UserDeletedEvent is emitted when a user is deleted.
type UserDeletedEvent struct {
	UserID    uint      `json:"user_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// UserDeletedV1 is the typed event definition for user deletion.
// Subject: events.user.v1.user-deleted
var UserDeletedV1 = helper.EventDefinition[UserDeletedEvent](
	"user", "UserDeleted", "v1",
)
