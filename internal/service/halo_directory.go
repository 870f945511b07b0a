package service

import (
	"context"
	"fmt"

	"github.com/uktrade/help-desk-api/internal/domain"
	"github.com/uktrade/help-desk-api/internal/events"
	"github.com/uktrade/help-desk-api/internal/halo"
	"github.com/uktrade/help-desk-api/internal/transform"
)

// Directory operations: users, agents and teams addressed straight through
// to Halo with a single transform on each side.

// GetUser fetches one backend user.
func (m *HaloManager) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	var payload halo.User
	if err := m.client.Get(ctx, fmt.Sprintf("Users/%d", userID), nil, &payload); err != nil {
		return nil, err
	}
	user := transform.UserFromHalo(payload)
	return &user, nil
}

// GetUsers lists backend users.
func (m *HaloManager) GetUsers(ctx context.Context) ([]domain.User, error) {
	var list halo.UserList
	if err := m.client.Get(ctx, "Users", nil, &list); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(list.Users))
	for _, payload := range list.Users {
		users = append(users, transform.UserFromHalo(payload))
	}
	return users, nil
}

// GetAgent fetches one agent.
func (m *HaloManager) GetAgent(ctx context.Context, agentID int) (*domain.Agent, error) {
	var payload halo.Agent
	if err := m.client.Get(ctx, fmt.Sprintf("Agent/%d", agentID), nil, &payload); err != nil {
		return nil, err
	}
	agent := transform.AgentFromHalo(payload)
	return &agent, nil
}

// GetAgents lists agents.
func (m *HaloManager) GetAgents(ctx context.Context) ([]domain.Agent, error) {
	var list halo.AgentList
	if err := m.client.Get(ctx, "Agent", nil, &list); err != nil {
		return nil, err
	}
	agents := make([]domain.Agent, 0, len(list.Agents))
	for _, payload := range list.Agents {
		agents = append(agents, transform.AgentFromHalo(payload))
	}
	return agents, nil
}

// CreateAgent creates an agent from a Zendesk-shaped agent payload.
func (m *HaloManager) CreateAgent(ctx context.Context, agent *domain.Agent) (*domain.Agent, error) {
	payload := transform.AgentToHalo(agent)
	var saved halo.Agent
	if err := m.client.Post(ctx, "Agent", []halo.Agent{payload}, &saved); err != nil {
		return nil, err
	}
	created := transform.AgentFromHalo(saved)
	m.publishEvent(ctx, events.Event{Type: events.EventAgentCreated, Payload: created})
	return &created, nil
}

// GetTeams lists teams.
func (m *HaloManager) GetTeams(ctx context.Context) ([]domain.Team, error) {
	var list halo.TeamList
	if err := m.client.Get(ctx, "Team", nil, &list); err != nil {
		return nil, err
	}
	teams := make([]domain.Team, 0, len(list.Teams))
	for _, payload := range list.Teams {
		teams = append(teams, transform.TeamFromHalo(payload))
	}
	return teams, nil
}

// CreateTeam creates a team from a Zendesk group payload.
func (m *HaloManager) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	payload := transform.TeamToHalo(team)
	var saved halo.Team
	if err := m.client.Post(ctx, "Team", []halo.Team{payload}, &saved); err != nil {
		return nil, err
	}
	created := transform.TeamFromHalo(saved)
	m.publishEvent(ctx, events.Event{Type: events.EventTeamCreated, Payload: created})
	return &created, nil
}
