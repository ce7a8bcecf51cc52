package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/example/task-tracker/modules/user"
)

// listUsers handles GET /usuarios.
func (m *APIModule) listUsers(c *fiber.Ctx) error {
	result, err := m.userPort.ListUsers(c.Context())
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(result.Users)
}

// getUser handles GET /usuarios/:id.
func (m *APIModule) getUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid user id")
	}

	resp, err := m.userPort.GetUser(c.Context(), id)
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(resp)
}

// createUser handles POST /usuarios. On success it answers 201 with a
// Location header and an empty body. Email format is not validated.
func (m *APIModule) createUser(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := m.userPort.CreateUser(c.Context(), &user.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return userError(c, err)
	}

	c.Location(fmt.Sprintf("/usuarios/%d", resp.ID))
	return c.Status(fiber.StatusCreated).Send(nil)
}

// updateUser handles PUT /usuarios/:id with the same
// overwrite-or-upsert behavior as task updates.
func (m *APIModule) updateUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid user id")
	}

	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := m.userPort.UpdateUser(c.Context(), &user.UpdateUserRequest{
		UserID: id,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		return userError(c, err)
	}

	if result.Created {
		return c.Status(fiber.StatusOK).JSON(result.User)
	}
	return c.Status(fiber.StatusOK).Send(nil)
}

// deleteUser handles DELETE /usuarios/:id. A user that still has
// assigned tasks answers 409 and nothing is deleted.
func (m *APIModule) deleteUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid user id")
	}

	if err := m.userPort.DeleteUser(c.Context(), id); err != nil {
		return userError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
