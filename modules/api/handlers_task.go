package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/example/task-tracker/modules/task"
)

// listTasks handles GET /tareas.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	result, err := m.taskPort.ListTasks(c.Context())
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(result.Tasks)
}

// getTask handles GET /tareas/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid task id")
	}

	resp, err := m.taskPort.GetTask(c.Context(), id)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(resp)
}

// createTask handles POST /tareas. On success it answers 201 with a
// Location header and an empty body.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := m.taskPort.CreateTask(c.Context(), &task.CreateTaskRequest{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		DueDate:        req.DueDate,
		AssignedUserID: req.AssignedUser.ID,
	})
	if err != nil {
		return taskError(c, err)
	}

	c.Location(fmt.Sprintf("/tareas/%d", resp.ID))
	return c.Status(fiber.StatusCreated).Send(nil)
}

// updateTask handles PUT /tareas/:id. Overwriting an existing task
// answers 200 with an empty body; a missing id falls through to the
// upsert path and answers 200 with the stored record.
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid task id")
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := m.taskPort.UpdateTask(c.Context(), &task.UpdateTaskRequest{
		TaskID:         id,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		DueDate:        req.DueDate,
		AssignedUserID: req.AssignedUser.ID,
	})
	if err != nil {
		return taskError(c, err)
	}

	if result.Created {
		return c.Status(fiber.StatusOK).JSON(result.Task)
	}
	return c.Status(fiber.StatusOK).Send(nil)
}

// deleteTask handles DELETE /tareas/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid task id")
	}

	if err := m.taskPort.DeleteTask(c.Context(), id); err != nil {
		return taskError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
