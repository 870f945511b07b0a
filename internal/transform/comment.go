package transform

import (
	"github.com/uktrade/help-desk-api/internal/domain"
	"github.com/uktrade/help-desk-api/internal/halo"
)

// CommentToHalo builds an Actions payload for a comment on ticketID.
//
// Visibility is stored inverted on the backend: a public comment is one that
// is not hidden from the user. The negation happens exactly once here and
// exactly once in CommentFromHalo; applying it anywhere else silently flips
// comment visibility.
func CommentToHalo(comment *domain.Comment, ticketID int) halo.Action {
	action := halo.Action{
		TicketID:       ticketID,
		Outcome:        halo.OutcomeComment,
		Note:           comment.Body,
		HiddenFromUser: !comment.Public,
		WhoAgentID:     comment.AuthorID,
	}
	if comment.ID != nil {
		id := *comment.ID
		action.ID = &id
	}
	return action
}

// CommentFromHalo projects a comment-outcome action back to the canonical
// shape, undoing the visibility inversion.
func CommentFromHalo(action halo.Action) domain.Comment {
	comment := domain.Comment{
		ID:       action.ID,
		Body:     action.Note,
		Public:   !action.HiddenFromUser,
		AuthorID: action.WhoAgentID,
	}
	if action.TicketID != 0 {
		ticketID := action.TicketID
		comment.TicketID = &ticketID
	}
	return comment
}
