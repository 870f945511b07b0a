package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uktrade/help-desk-api/internal/domain"
	"github.com/uktrade/help-desk-api/internal/halo"
)

// The visibility bit is stored inverted on the backend. These tests pin the
// single-inversion contract in both directions for both values; a double
// inversion would silently flip comment visibility.
func TestCommentVisibilityInversion(t *testing.T) {
	for _, public := range []bool{true, false} {
		action := CommentToHalo(&domain.Comment{Body: "hi", Public: public}, 12)
		assert.Equal(t, !public, action.HiddenFromUser)
		assert.Equal(t, halo.OutcomeComment, action.Outcome)
		assert.Equal(t, 12, action.TicketID)

		back := CommentFromHalo(action)
		assert.Equal(t, public, back.Public)
	}
}

func TestCommentRoundTrip(t *testing.T) {
	author := 5
	original := &domain.Comment{Body: "note to self", Public: false, AuthorID: &author}

	back := CommentFromHalo(CommentToHalo(original, 3))
	assert.Equal(t, original.Body, back.Body)
	assert.Equal(t, original.Public, back.Public)
	assert.Equal(t, original.AuthorID, back.AuthorID)
	assert.Equal(t, 3, *back.TicketID)
}

func TestCommentToHaloCarriesID(t *testing.T) {
	commentID := 77
	action := CommentToHalo(&domain.Comment{ID: &commentID, Body: "edit"}, 3)
	assert.Equal(t, 77, *action.ID)
}
