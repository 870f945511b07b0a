// Package transform converts canonical entities to and from Halo wire
// shapes. Every function here is deterministic and touches no network; user
// resolution, which does, lives in the service layer.
package transform

import (
	"strings"

	"github.com/uktrade/help-desk-api/internal/domain"
	"github.com/uktrade/help-desk-api/internal/halo"
	"github.com/uktrade/help-desk-api/internal/mapping"
)

// tagDelimiter joins the canonical tag set into Halo's single tags string.
const tagDelimiter = ", "

// TicketToHalo builds the outbound ticket payload. requesterID is the Halo
// user id the service layer resolved beforehand (that resolution is a
// network flow, so it stays out of this package). An absent status, ticket
// type or priority yields no code rather than a guess; on an update an
// omitted field must leave the backend value alone.
func TicketToHalo(ticket *domain.Ticket, requesterID *int) (halo.Ticket, error) {
	payload := halo.Ticket{
		Summary:      ticket.Subject,
		Details:      ticket.Description,
		UserID:       requesterID,
		AgentID:      ticket.AssigneeID,
		TeamID:       ticket.GroupID,
		ThirdPartyID: ticket.ExternalID,
	}
	if payload.Details == "" && ticket.Comment != nil {
		// The backend models a ticket's description and its first comment as
		// the same thing.
		payload.Details = ticket.Comment.Body
	}
	if ticket.ID != nil {
		id := *ticket.ID
		payload.ID = &id
	}

	if ticket.Status != "" {
		statusID, err := mapping.Status.Code(ticket.Status)
		if err != nil {
			return halo.Ticket{}, err
		}
		payload.StatusID = &statusID
	}

	if ticket.TicketType != "" {
		typeID, err := mapping.TicketType.Code(ticket.TicketType)
		if err != nil {
			return halo.Ticket{}, err
		}
		payload.TicketTypeID = &typeID

		if ticket.Priority != "" && mapping.PriorityMapped(ticket.TicketType) {
			priorityID, err := mapping.PriorityCode(ticket.TicketType, ticket.Priority)
			if err != nil {
				return halo.Ticket{}, err
			}
			payload.PriorityID = &priorityID
		}
	}

	if len(ticket.Tags) > 0 {
		payload.Tags = strings.Join(ticket.Tags, tagDelimiter)
	}
	return payload, nil
}

// TicketFromHalo folds a Halo ticket back into the canonical shape. Missing
// optional fields become canonical absence, never zero sentinels. The ticket
// type is reconstructed before the priority because the priority reverse
// lookup is keyed by it; an unrecognized type code yields no priority.
func TicketFromHalo(payload halo.Ticket) (domain.Ticket, error) {
	ticket := domain.Ticket{
		ID:          payload.ID,
		Subject:     payload.Summary,
		Description: payload.Details,
		AssigneeID:  payload.AgentID,
		GroupID:     payload.TeamID,
		ExternalID:  payload.ThirdPartyID,
		CreatedAt:   payload.DateOccurred,
		UpdatedAt:   payload.LastUpdate,
		DueAt:       payload.DeadlineDate,
	}
	if payload.UserID != nil {
		ticket.Requester = &domain.User{ID: payload.UserID}
	}

	if payload.StatusID != nil {
		status, err := mapping.Status.Label(*payload.StatusID)
		if err != nil {
			return domain.Ticket{}, err
		}
		ticket.Status = status
	}

	if payload.TicketTypeID != nil {
		if ticketType, err := mapping.TicketType.Label(*payload.TicketTypeID); err == nil {
			ticket.TicketType = ticketType
		}
	}
	if ticket.TicketType != "" && payload.PriorityID != nil {
		if priority, err := mapping.PriorityLabel(ticket.TicketType, *payload.PriorityID); err == nil {
			ticket.Priority = priority
		}
	}

	// Tags live in a single comma-joined string on the backend, so a tag
	// containing a comma cannot survive the round trip. Splitting on the bare
	// comma and trimming tolerates both our own join and Halo's unspaced form.
	if payload.Tags != "" {
		for _, tag := range strings.Split(payload.Tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				ticket.Tags = append(ticket.Tags, tag)
			}
		}
	}

	for _, attachment := range payload.Attachments {
		ticket.Attachments = append(ticket.Attachments, AttachmentFromHalo(attachment))
	}
	return ticket, nil
}

// AttachmentFromHalo projects a stored-file record.
func AttachmentFromHalo(payload halo.Attachment) domain.Attachment {
	return domain.Attachment{
		ID:       payload.ID,
		Filename: payload.Filename,
		IsImage:  payload.IsImage,
	}
}
