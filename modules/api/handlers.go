package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/task-tracker/modules/task"
	"github.com/example/task-tracker/modules/user"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes(app *fiber.App) {
	// Health check endpoint
	app.Get("/health", m.healthHandler)

	// Task endpoints
	tareas := app.Group("/tareas")
	tareas.Get("/", m.listTasks)
	tareas.Post("/", m.createTask)
	tareas.Get("/:id", m.getTask)
	tareas.Put("/:id", m.updateTask)
	tareas.Delete("/:id", m.deleteTask)

	// User endpoints
	usuarios := app.Group("/usuarios")
	usuarios.Get("/", m.listUsers)
	usuarios.Post("/", m.createUser)
	usuarios.Get("/:id", m.getUser)
	usuarios.Put("/:id", m.updateUser)
	usuarios.Delete("/:id", m.deleteUser)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// parseID extracts the numeric id path parameter.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

// badRequest writes a 400 with the standard error envelope.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_request",
		Message: message,
	})
}

// taskError maps task service errors to HTTP responses. Anything
// unexpected becomes a 500 without detail.
func taskError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, task.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_status",
			Message: "Invalid task status",
		})
	case errors.Is(err, task.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "user_not_found",
			Message: "Assigned user not found",
		})
	case errors.Is(err, task.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "server_error",
			Message: "Internal Server Error",
		})
	}
}

// userError maps user service errors to HTTP responses.
func userError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "User not found",
		})
	case errors.Is(err, user.ErrHasTasks):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "conflict",
			Message: "User cannot be deleted because tasks are assigned to it",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "server_error",
			Message: "Internal Server Error",
		})
	}
}
