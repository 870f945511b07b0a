package dto

import "github.com/uktrade/help-desk-api/internal/domain"

// GroupRequest is the Zendesk group envelope; groups map to Halo teams.
type GroupRequest struct {
	Group GroupPayload `json:"group"`
}

// GroupPayload is the Zendesk-shaped group body.
type GroupPayload struct {
	ID   *int   `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// ToDomain projects the payload.
func (p GroupPayload) ToDomain() *domain.Team {
	return &domain.Team{ID: p.ID, Name: p.Name}
}

// GroupResponse is the single-group envelope.
type GroupResponse struct {
	Group GroupView `json:"group"`
}

// GroupsResponse is the group listing envelope.
type GroupsResponse struct {
	Groups []GroupView `json:"groups"`
}

// GroupView is the Zendesk-shaped group.
type GroupView struct {
	ID   *int   `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// NewGroupView projects a canonical team.
func NewGroupView(team *domain.Team) GroupView {
	return GroupView{ID: team.ID, Name: team.Name}
}

// AgentRequest is the agent envelope.
type AgentRequest struct {
	Agent AgentPayload `json:"agent"`
}

// AgentPayload is the agent body.
type AgentPayload struct {
	ID    *int   `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// ToDomain projects the payload.
func (p AgentPayload) ToDomain() *domain.Agent {
	return &domain.Agent{ID: p.ID, Name: p.Name, Email: p.Email}
}

// AgentResponse is the single-agent envelope.
type AgentResponse struct {
	Agent AgentView `json:"agent"`
}

// AgentsResponse is the agent listing envelope.
type AgentsResponse struct {
	Agents []AgentView `json:"agents"`
}

// AgentView is the agent returned to callers.
type AgentView struct {
	ID    *int   `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// NewAgentView projects a canonical agent.
func NewAgentView(agent *domain.Agent) AgentView {
	return AgentView{ID: agent.ID, Name: agent.Name, Email: agent.Email}
}
