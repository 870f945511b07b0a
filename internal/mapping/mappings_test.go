package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uktrade/help-desk-api/internal/domain"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

func TestStatusRoundTrip(t *testing.T) {
	for _, status := range Status.Labels() {
		code, err := Status.Code(status)
		require.NoError(t, err)

		back, err := Status.Label(code)
		require.NoError(t, err)
		assert.Equal(t, status, back)
	}
}

func TestStatusCodes(t *testing.T) {
	cases := map[domain.TicketStatus]int{
		domain.TicketStatusNew:     1,
		domain.TicketStatusOpen:    2,
		domain.TicketStatusPending: 3,
		domain.TicketStatusOnHold:  28,
		domain.TicketStatusSolved:  18,
		domain.TicketStatusClosed:  9,
	}
	for status, want := range cases {
		code, err := Status.Code(status)
		require.NoError(t, err)
		assert.Equal(t, want, code)
	}
}

func TestPriorityRoundTrip(t *testing.T) {
	priorities := []domain.TicketPriority{
		domain.TicketPriorityLow,
		domain.TicketPriorityNormal,
		domain.TicketPriorityHigh,
		domain.TicketPriorityUrgent,
	}
	for _, priority := range priorities {
		code, err := PriorityCode(domain.TicketTypeIncident, priority)
		require.NoError(t, err)

		back, err := PriorityLabel(domain.TicketTypeIncident, code)
		require.NoError(t, err)
		assert.Equal(t, priority, back)
	}
}

func TestPriorityUnmappedType(t *testing.T) {
	_, err := PriorityCode(domain.TicketTypeQuestion, domain.TicketPriorityHigh)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeMappingNotFound))

	_, err = PriorityLabel("escalation", 1)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeMappingNotFound))

	assert.False(t, PriorityMapped(domain.TicketTypeTask))
	assert.True(t, PriorityMapped(domain.TicketTypeIncident))
}

func TestTicketTypeRoundTrip(t *testing.T) {
	for _, ticketType := range TicketType.Labels() {
		code, err := TicketType.Code(ticketType)
		require.NoError(t, err)

		back, err := TicketType.Label(code)
		require.NoError(t, err)
		assert.Equal(t, ticketType, back)
	}
}

func TestServiceLookup(t *testing.T) {
	id, err := Service.Code("data_workspace")
	require.NoError(t, err)
	assert.Equal(t, 8, id)

	name, err := Service.Label(17)
	require.NoError(t, err)
	assert.Equal(t, "great", name)

	_, err = Service.Code("unknown_service")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeMappingNotFound))
}
