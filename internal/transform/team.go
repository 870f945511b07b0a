package transform

import (
	"github.com/uktrade/help-desk-api/internal/domain"
	"github.com/uktrade/help-desk-api/internal/halo"
)

// TeamToHalo builds the outbound team payload from a Zendesk group.
func TeamToHalo(team *domain.Team) halo.Team {
	payload := halo.Team{Name: team.Name}
	if team.ID != nil {
		id := *team.ID
		payload.ID = &id
	}
	return payload
}

// TeamFromHalo projects a backend team.
func TeamFromHalo(payload halo.Team) domain.Team {
	return domain.Team{ID: payload.ID, Name: payload.Name}
}

// AgentToHalo builds the outbound agent payload.
func AgentToHalo(agent *domain.Agent) halo.Agent {
	payload := halo.Agent{Name: agent.Name, Email: agent.Email}
	if agent.ID != nil {
		id := *agent.ID
		payload.ID = &id
	}
	return payload
}

// AgentFromHalo projects a backend agent.
func AgentFromHalo(payload halo.Agent) domain.Agent {
	return domain.Agent{ID: payload.ID, Name: payload.Name, Email: payload.Email}
}
