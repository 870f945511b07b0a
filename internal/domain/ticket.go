package domain

import "time"

// TicketStatus enumerates the Zendesk-side ticket lifecycle states.
type TicketStatus string

const (
	TicketStatusNew     TicketStatus = "new"
	TicketStatusOpen    TicketStatus = "open"
	TicketStatusPending TicketStatus = "pending"
	TicketStatusOnHold  TicketStatus = "on-hold"
	TicketStatusSolved  TicketStatus = "solved"
	TicketStatusClosed  TicketStatus = "closed"
)

// TicketPriority enumerates Zendesk priorities. A priority only maps to a
// Halo code in combination with a ticket type.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityNormal TicketPriority = "normal"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketType enumerates Zendesk ticket types.
type TicketType string

const (
	TicketTypeIncident TicketType = "incident"
	TicketTypeProblem  TicketType = "problem"
	TicketTypeQuestion TicketType = "question"
	TicketTypeTask     TicketType = "task"
)

// Ticket is the canonical, protocol-agnostic ticket exchanged between the
// transformers and the orchestrator. It lives for a single request; ids and
// timestamps are Halo-assigned and only present after a round trip.
type Ticket struct {
	ID          *int
	ExternalID  string
	Subject     string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
	TicketType  TicketType
	Requester   *User
	AssigneeID  *int
	GroupID     *int
	Tags        []string
	Comment     *Comment
	Attachments []Attachment
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
	DueAt       *time.Time
}

// HasContent reports whether the ticket carries either a description or a
// comment. A ticket with neither is rejected before any backend call.
func (t *Ticket) HasContent() bool {
	if t == nil {
		return false
	}
	return t.Description != "" || (t.Comment != nil && t.Comment.Body != "")
}
