package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/google/uuid"

	"github.com/example/task-tracker/events"
)

// NotificationLog represents a logged notification.
type NotificationLog struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Channel   string    `json:"channel"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationModule handles notifications as a driven adapter. It
// subscribes to task and user domain events.
type NotificationModule struct {
	notifications []NotificationLog
	mu            sync.RWMutex
}

var _ mono.Module = (*NotificationModule)(nil)
var _ mono.EventConsumerModule = (*NotificationModule)(nil)

func NewModule() *NotificationModule {
	return &NotificationModule{
		notifications: make([]NotificationLog, 0),
	}
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskOverdueV1, m.handleTaskOverdue, m); err != nil {
		return fmt.Errorf("failed to register TaskOverdue consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.UserDeletedV1, m.handleUserDeleted, m); err != nil {
		return fmt.Errorf("failed to register UserDeleted consumer: %w", err)
	}

	log.Printf("[notification] Registered event consumers: TaskCreated, TaskOverdue, TaskDeleted, UserDeleted")
	return nil
}

func (m *NotificationModule) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task created: %d - %s", event.TaskID, event.Title)
	m.logNotification("task_created", fmt.Sprintf("New task '%s' created for user %d", event.Title, event.UserID))
	return nil
}

func (m *NotificationModule) handleTaskOverdue(_ context.Context, event events.TaskOverdueEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task overdue: %d - %s (due %s)", event.TaskID, event.Title, event.DueDate)
	m.logNotification("task_overdue", fmt.Sprintf("Task '%s' is past its due date %s", event.Title, event.DueDate))
	return nil
}

func (m *NotificationModule) handleTaskDeleted(_ context.Context, event events.TaskDeletedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task deleted: %d", event.TaskID)
	m.logNotification("task_deleted", fmt.Sprintf("Task %d deleted", event.TaskID))
	return nil
}

func (m *NotificationModule) handleUserDeleted(_ context.Context, event events.UserDeletedEvent, _ *mono.Msg) error {
	log.Printf("[notification] User deleted: %d", event.UserID)
	m.logNotification("user_deleted", fmt.Sprintf("User %d deleted", event.UserID))
	return nil
}

func (m *NotificationModule) logNotification(notificationType, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notifications = append(m.notifications, NotificationLog{
		ID:        uuid.New().String(),
		Type:      notificationType,
		Message:   message,
		Channel:   "event",
		Timestamp: time.Now(),
	})
}

func (m *NotificationModule) GetNotifications() []NotificationLog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]NotificationLog, len(m.notifications))
	copy(result, m.notifications)
	return result
}

func (m *NotificationModule) Start(_ context.Context) error {
	log.Println("[notification] Module started - listening for task and user events")
	return nil
}

func (m *NotificationModule) Stop(_ context.Context) error {
	log.Println("[notification] Module stopped")
	return nil
}
