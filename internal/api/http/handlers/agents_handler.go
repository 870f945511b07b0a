package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/uktrade/help-desk-api/internal/api/dto"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

// AgentsHandler exposes agent endpoints.
type AgentsHandler struct {
	factory ManagerFactory
}

// NewAgentsHandler constructs handler.
func NewAgentsHandler(factory ManagerFactory) *AgentsHandler {
	return &AgentsHandler{factory: factory}
}

// GetAgent GET /api/v2/agents/:id.
func (h *AgentsHandler) GetAgent(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	agent, err := manager.GetAgent(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.AgentResponse{Agent: dto.NewAgentView(agent)})
}

// ListAgents GET /api/v2/agents.
func (h *AgentsHandler) ListAgents(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	agents, err := manager.GetAgents(c.UserContext())
	if err != nil {
		return err
	}
	views := make([]dto.AgentView, 0, len(agents))
	for i := range agents {
		views = append(views, dto.NewAgentView(&agents[i]))
	}
	return c.JSON(dto.AgentsResponse{Agents: views})
}

// CreateAgent POST /api/v2/agents.
func (h *AgentsHandler) CreateAgent(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	var req dto.AgentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Agent.Name == "" {
		return apperrors.NewValidationError("agent name required", nil)
	}
	agent, err := manager.CreateAgent(c.UserContext(), req.Agent.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AgentResponse{Agent: dto.NewAgentView(agent)})
}
