package user

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/gorm"

	"github.com/example/task-tracker/events"
)

// UserModule provides user management services backed by the shared
// relational store.
type UserModule struct {
	db       *gorm.DB
	repo     *Repository
	eventBus mono.EventBus
}

// Compile-time interface checks.
var _ mono.Module = (*UserModule)(nil)
var _ mono.ServiceProviderModule = (*UserModule)(nil)
var _ mono.EventEmitterModule = (*UserModule)(nil)
var _ mono.HealthCheckableModule = (*UserModule)(nil)

// NewModule creates a new UserModule using the shared database handle.
func NewModule(db *gorm.DB) *UserModule {
	return &UserModule{
		db:   db,
		repo: NewRepository(db),
	}
}

// Name returns the module name.
func (m *UserModule) Name() string {
	return "user"
}

// SetEventBus receives the application event bus from the framework.
func (m *UserModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *UserModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.UserCreatedV1.ToBase(),
		events.UserDeletedV1.ToBase(),
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *UserModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "list-users", json.Unmarshal, json.Marshal, m.listUsers,
	); err != nil {
		return fmt.Errorf("failed to register list-users service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-user", json.Unmarshal, json.Marshal, m.getUser,
	); err != nil {
		return fmt.Errorf("failed to register get-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "create-user", json.Unmarshal, json.Marshal, m.createUser,
	); err != nil {
		return fmt.Errorf("failed to register create-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-user", json.Unmarshal, json.Marshal, m.updateUser,
	); err != nil {
		return fmt.Errorf("failed to register update-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-user", json.Unmarshal, json.Marshal, m.deleteUser,
	); err != nil {
		return fmt.Errorf("failed to register delete-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "validate-user", json.Unmarshal, json.Marshal, m.validateUser,
	); err != nil {
		return fmt.Errorf("failed to register validate-user service: %w", err)
	}

	log.Printf("[user] Registered services: list-users, get-user, create-user, update-user, delete-user, validate-user")
	return nil
}

// Start initializes the module.
func (m *UserModule) Start(_ context.Context) error {
	if m.eventBus == nil {
		log.Println("[user] Warning: eventBus not set, events will not be published")
	}
	log.Println("[user] Module started")
	return nil
}

// Stop shuts down the module. The shared database handle is closed by
// the application, not here.
func (m *UserModule) Stop(_ context.Context) error {
	log.Println("[user] Module stopped")
	return nil
}

// Health performs a health check against the underlying database.
func (m *UserModule) Health(ctx context.Context) mono.HealthStatus {
	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get sql.DB: %v", err),
		}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
	}
}
