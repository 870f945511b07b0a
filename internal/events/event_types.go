package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated EventType = "ticket_created"
	EventTicketUpdated EventType = "ticket_updated"
	EventCommentAdded  EventType = "comment_added"
	EventUserCreated   EventType = "user_created"
	EventUserUpdated   EventType = "user_updated"
	EventTeamCreated   EventType = "team_created"
	EventAgentCreated  EventType = "agent_created"
	EventFileUploaded  EventType = "file_uploaded"
)

// Event records one proxied mutation for the audit trail. Tenant is the
// authenticated caller's Zendesk email.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Tenant    string      `json:"tenant"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketEventPayload carries ticket identity for ticket events.
type TicketEventPayload struct {
	TicketID *int   `json:"ticket_id,omitempty"`
	Subject  string `json:"subject,omitempty"`
}

// CommentEventPayload carries comment linkage for comment events.
type CommentEventPayload struct {
	TicketID  int  `json:"ticket_id"`
	CommentID *int `json:"comment_id,omitempty"`
	Public    bool `json:"public"`
}

// UserEventPayload carries user identity for user events.
type UserEventPayload struct {
	UserID *int   `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}

// UploadEventPayload carries upload metadata.
type UploadEventPayload struct {
	Filename string `json:"filename"`
	Size     int    `json:"size"`
	IsImage  bool   `json:"is_image"`
}
