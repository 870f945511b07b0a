// Package halo speaks the Halo REST API: wire types, bearer-token auth and a
// thin GET/POST client with structured error classification.
package halo

import "time"

// Ticket is the Halo wire shape for Tickets resources.
type Ticket struct {
	ID           *int       `json:"id,omitempty"`
	Summary      string     `json:"summary,omitempty"`
	Details      string     `json:"details,omitempty"`
	StatusID     *int       `json:"status_id,omitempty"`
	PriorityID   *int       `json:"priority_id,omitempty"`
	TicketTypeID *int       `json:"tickettype_id,omitempty"`
	UserID       *int       `json:"user_id,omitempty"`
	AgentID      *int       `json:"agent_id,omitempty"`
	TeamID       *int       `json:"team_id,omitempty"`
	Tags         string     `json:"tags,omitempty"`
	ThirdPartyID string     `json:"third_party_id,omitempty"`
	DateOccurred *time.Time `json:"dateoccurred,omitempty"`
	LastUpdate   *time.Time `json:"last_update,omitempty"`
	DeadlineDate *time.Time `json:"deadlinedate,omitempty"`

	Actions     []Action     `json:"actions,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// TicketPage is the paginated Tickets listing envelope.
type TicketPage struct {
	RecordCount int      `json:"record_count"`
	PageSize    int      `json:"page_size"`
	PageNo      int      `json:"page_no"`
	Tickets     []Ticket `json:"tickets"`
}

// Action is a ticket-attached event. Comments are actions whose outcome is
// "comment"; other outcomes (assignment, status change) pass through here
// untouched.
type Action struct {
	ID             *int   `json:"id,omitempty"`
	TicketID       int    `json:"ticket_id"`
	Outcome        string `json:"outcome"`
	Note           string `json:"note"`
	HiddenFromUser bool   `json:"hiddenfromuser"`
	WhoAgentID     *int   `json:"who_agentid,omitempty"`
}

// OutcomeComment marks an action as a comment.
const OutcomeComment = "comment"

// ActionList is the Actions listing envelope.
type ActionList struct {
	Actions []Action `json:"actions"`
}

// User is the Halo wire shape for Users resources.
type User struct {
	ID           *int   `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	EmailAddress string `json:"emailaddress,omitempty"`
	SiteID       *int   `json:"site_id,omitempty"`
}

// UserList is the Users listing/search envelope.
type UserList struct {
	Users []User `json:"users"`
}

// Agent is the Halo wire shape for Agent resources.
type Agent struct {
	ID    *int   `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// AgentList is the Agent listing envelope.
type AgentList struct {
	Agents []Agent `json:"agents"`
}

// Team is the Halo wire shape for Team resources.
type Team struct {
	ID   *int   `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// TeamList is the Team listing envelope.
type TeamList struct {
	Teams []Team `json:"teams"`
}

// Attachment is the upload payload and the stored-file record. Uploads carry
// the file as a base64 data URI in DataBase64.
type Attachment struct {
	ID         *int   `json:"id,omitempty"`
	Filename   string `json:"filename,omitempty"`
	IsImage    bool   `json:"isimage"`
	DataBase64 string `json:"data_base64,omitempty"`
}

// AttachmentList is the Attachment listing envelope.
type AttachmentList struct {
	Attachments []Attachment `json:"attachments"`
}
