package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	err := NewTicketNotFound(7)
	assert.True(t, HasCode(err, CodeTicketNotFound))
	assert.False(t, HasCode(err, CodeRecordNotFound))
	assert.False(t, HasCode(nil, CodeTicketNotFound))
	assert.False(t, HasCode(errors.New("plain"), CodeTicketNotFound))
}

func TestHasCodeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetching ticket: %w", NewRecordNotFound("Tickets/7"))
	assert.True(t, HasCode(wrapped, CodeRecordNotFound))
}

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewBackendError("halo returned 500", nil)
	converted := ToDomainError(original)
	assert.Equal(t, CodeBackendError, converted.Code)
	assert.Equal(t, http.StatusBadGateway, converted.HTTPStatus)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	converted := ToDomainError(errors.New("boom"))
	require.NotNil(t, converted)
	assert.Equal(t, CodeInternalError, converted.Code)
	assert.Equal(t, http.StatusInternalServerError, converted.HTTPStatus)

	assert.Nil(t, ToDomainError(nil))
}

func TestCommentErrorUnwraps(t *testing.T) {
	cause := NewBackendError("halo returned 500 for Actions", nil)
	err := &CommentError{TicketID: 42, Err: cause}

	assert.True(t, HasCode(err, CodeBackendError))
	assert.Contains(t, err.Error(), "42")

	var commentErr *CommentError
	require.ErrorAs(t, fmt.Errorf("create ticket: %w", err), &commentErr)
	assert.Equal(t, 42, commentErr.TicketID)
}

func TestUserResolutionFailedCarriesCause(t *testing.T) {
	cause := NewBackendTimeout(errors.New("deadline"))
	err := NewUserResolutionFailed(cause)
	assert.True(t, HasCode(err, CodeUserResolutionFailed))
	assert.ErrorIs(t, err, cause)
}
