// Package dto holds the Zendesk-shaped request and response bodies the
// proxy's clients speak, plus their projections to and from the canonical
// entities.
package dto

import (
	"time"

	"github.com/uktrade/help-desk-api/internal/domain"
)

// TicketRequest is the Zendesk create/update envelope.
type TicketRequest struct {
	Ticket TicketPayload `json:"ticket"`
}

// TicketPayload is the Zendesk-shaped ticket body.
type TicketPayload struct {
	ID          *int            `json:"id,omitempty"`
	ExternalID  string          `json:"external_id,omitempty"`
	Subject     string          `json:"subject,omitempty"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status,omitempty"`
	Priority    string          `json:"priority,omitempty"`
	Type        string          `json:"type,omitempty"`
	RequesterID *int            `json:"requester_id,omitempty"`
	Requester   *UserPayload    `json:"requester,omitempty"`
	AssigneeID  *int            `json:"assignee_id,omitempty"`
	GroupID     *int            `json:"group_id,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Comment     *CommentPayload `json:"comment,omitempty"`
}

// CommentPayload is the nested Zendesk comment body. Public defaults to
// true, matching Zendesk semantics.
type CommentPayload struct {
	ID       *int   `json:"id,omitempty"`
	TicketID *int   `json:"ticket_id,omitempty"`
	Body     string `json:"body,omitempty"`
	Public   *bool  `json:"public,omitempty"`
	AuthorID *int   `json:"author_id,omitempty"`
}

// ToDomain projects the payload onto a canonical ticket.
func (p TicketPayload) ToDomain() *domain.Ticket {
	ticket := &domain.Ticket{
		ID:          p.ID,
		ExternalID:  p.ExternalID,
		Subject:     p.Subject,
		Description: p.Description,
		Status:      domain.TicketStatus(p.Status),
		Priority:    domain.TicketPriority(p.Priority),
		TicketType:  domain.TicketType(p.Type),
		AssigneeID:  p.AssigneeID,
		GroupID:     p.GroupID,
		Tags:        p.Tags,
	}
	switch {
	case p.Requester != nil:
		requester := p.Requester.ToDomain()
		if requester.ID == nil {
			requester.ID = p.RequesterID
		}
		ticket.Requester = requester
	case p.RequesterID != nil:
		ticket.Requester = &domain.User{ID: p.RequesterID}
	}
	if p.Comment != nil {
		ticket.Comment = p.Comment.ToDomain()
	}
	return ticket
}

// ToDomain projects the comment payload.
func (p CommentPayload) ToDomain() *domain.Comment {
	public := true
	if p.Public != nil {
		public = *p.Public
	}
	return &domain.Comment{
		ID:       p.ID,
		TicketID: p.TicketID,
		Body:     p.Body,
		Public:   public,
		AuthorID: p.AuthorID,
	}
}

// TicketResponse is the single-ticket envelope.
type TicketResponse struct {
	Ticket TicketView `json:"ticket"`
}

// TicketsResponse is the listing envelope.
type TicketsResponse struct {
	Tickets []TicketView `json:"tickets"`
	Count   int          `json:"count"`
}

// TicketView is the Zendesk-shaped ticket returned to callers.
type TicketView struct {
	ID          *int             `json:"id,omitempty"`
	ExternalID  string           `json:"external_id,omitempty"`
	Subject     string           `json:"subject,omitempty"`
	Description string           `json:"description,omitempty"`
	Status      string           `json:"status,omitempty"`
	Priority    string           `json:"priority,omitempty"`
	Type        string           `json:"type,omitempty"`
	RequesterID *int             `json:"requester_id,omitempty"`
	AssigneeID  *int             `json:"assignee_id,omitempty"`
	GroupID     *int             `json:"group_id,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Comment     *CommentView     `json:"comment,omitempty"`
	Attachments []AttachmentView `json:"attachments,omitempty"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
	DueAt       *time.Time       `json:"due_at,omitempty"`
}

// CommentView is the Zendesk-shaped comment.
type CommentView struct {
	ID       *int   `json:"id,omitempty"`
	Body     string `json:"body"`
	Public   bool   `json:"public"`
	AuthorID *int   `json:"author_id,omitempty"`
}

// AttachmentView is the Zendesk-shaped attachment stub.
type AttachmentView struct {
	ID       *int   `json:"id,omitempty"`
	FileName string `json:"file_name,omitempty"`
	IsImage  bool   `json:"is_image"`
}

// NewTicketView projects a canonical ticket for the response body.
func NewTicketView(ticket *domain.Ticket) TicketView {
	view := TicketView{
		ID:          ticket.ID,
		ExternalID:  ticket.ExternalID,
		Subject:     ticket.Subject,
		Description: ticket.Description,
		Status:      string(ticket.Status),
		Priority:    string(ticket.Priority),
		Type:        string(ticket.TicketType),
		AssigneeID:  ticket.AssigneeID,
		GroupID:     ticket.GroupID,
		Tags:        ticket.Tags,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
		DueAt:       ticket.DueAt,
	}
	if ticket.Requester != nil {
		view.RequesterID = ticket.Requester.ID
	}
	if ticket.Comment != nil {
		comment := NewCommentView(*ticket.Comment)
		view.Comment = &comment
	}
	for _, attachment := range ticket.Attachments {
		view.Attachments = append(view.Attachments, AttachmentView{
			ID:       attachment.ID,
			FileName: attachment.Filename,
			IsImage:  attachment.IsImage,
		})
	}
	return view
}

// NewCommentView projects a canonical comment.
func NewCommentView(comment domain.Comment) CommentView {
	return CommentView{
		ID:       comment.ID,
		Body:     comment.Body,
		Public:   comment.Public,
		AuthorID: comment.AuthorID,
	}
}

// CommentsResponse is the comment listing envelope.
type CommentsResponse struct {
	Comments []CommentView `json:"comments"`
}
