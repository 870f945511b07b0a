package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/uktrade/help-desk-api/internal/api/dto"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

// GroupsHandler exposes Zendesk group endpoints backed by Halo teams.
type GroupsHandler struct {
	factory ManagerFactory
}

// NewGroupsHandler constructs handler.
func NewGroupsHandler(factory ManagerFactory) *GroupsHandler {
	return &GroupsHandler{factory: factory}
}

// ListGroups GET /api/v2/groups.
func (h *GroupsHandler) ListGroups(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	teams, err := manager.GetTeams(c.UserContext())
	if err != nil {
		return err
	}
	views := make([]dto.GroupView, 0, len(teams))
	for i := range teams {
		views = append(views, dto.NewGroupView(&teams[i]))
	}
	return c.JSON(dto.GroupsResponse{Groups: views})
}

// CreateGroup POST /api/v2/groups.
func (h *GroupsHandler) CreateGroup(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	var req dto.GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Group.Name == "" {
		return apperrors.NewValidationError("group name required", nil)
	}
	team, err := manager.CreateTeam(c.UserContext(), req.Group.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.GroupResponse{Group: dto.NewGroupView(team)})
}
