package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/uktrade/help-desk-api/internal/api/dto"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

// UsersHandler exposes the Zendesk-shaped user endpoints.
type UsersHandler struct {
	factory ManagerFactory
}

// NewUsersHandler constructs handler.
func NewUsersHandler(factory ManagerFactory) *UsersHandler {
	return &UsersHandler{factory: factory}
}

// GetUser GET /api/v2/users/:id.
func (h *UsersHandler) GetUser(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := manager.GetUser(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.UserResponse{User: dto.NewUserView(user)})
}

// ListUsers GET /api/v2/users.
func (h *UsersHandler) ListUsers(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	users, err := manager.GetUsers(c.UserContext())
	if err != nil {
		return err
	}
	views := make([]dto.UserView, 0, len(users))
	for i := range users {
		views = append(views, dto.NewUserView(&users[i]))
	}
	return c.JSON(dto.UsersResponse{Users: views})
}

// Me GET /api/v2/users/me returns the caller's own backend identity.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	user, err := manager.GetOrCreateUser(c.UserContext(), nil)
	if err != nil {
		return err
	}
	return c.JSON(dto.UserResponse{User: dto.NewUserView(user)})
}

// SaveUser POST /api/v2/users. A payload with an id updates; one without
// creates, mirroring Zendesk's create-or-update call.
func (h *UsersHandler) SaveUser(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	updating := req.User.ID != nil
	user, err := manager.GetOrCreateUser(c.UserContext(), req.User.ToDomain())
	if err != nil {
		return err
	}
	status := fiber.StatusCreated
	if updating {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(dto.UserResponse{User: dto.NewUserView(user)})
}
