package mapping

import (
	"github.com/uktrade/help-desk-api/internal/domain"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

// Status maps Zendesk ticket statuses to Halo status ids.
var Status = NewBijection("status", map[domain.TicketStatus]int{
	domain.TicketStatusNew:     1,
	domain.TicketStatusOpen:    2,  // in progress
	domain.TicketStatusPending: 3,  // action required
	domain.TicketStatusOnHold:  28,
	domain.TicketStatusSolved:  18, // approved
	domain.TicketStatusClosed:  9,
})

// TicketType maps Zendesk ticket types to Halo ticket type ids.
var TicketType = NewBijection("ticket_type", map[domain.TicketType]int{
	domain.TicketTypeIncident: 1,
	domain.TicketTypeProblem:  2,
	domain.TicketTypeQuestion: 3,
	domain.TicketTypeTask:     4,
})

// priorityByType nests the priority bijection under the ticket type, since a
// Halo priority id means nothing without one. Only incident priorities are
// mapped today, matching the live Halo configuration.
var priorityByType = map[domain.TicketType]*Bijection[domain.TicketPriority, int]{
	domain.TicketTypeIncident: NewBijection("priority/incident", map[domain.TicketPriority]int{
		domain.TicketPriorityLow:    4,
		domain.TicketPriorityNormal: 3,
		domain.TicketPriorityHigh:   2,
		domain.TicketPriorityUrgent: 1,
	}),
}

// PriorityCode resolves a (ticket type, priority) pair to a Halo priority id.
// Absent or unmapped ticket types make the priority indeterminate.
func PriorityCode(ticketType domain.TicketType, priority domain.TicketPriority) (int, error) {
	table, ok := priorityByType[ticketType]
	if !ok {
		return 0, apperrors.NewMappingNotFound("priority", ticketType)
	}
	return table.Code(priority)
}

// PriorityLabel reverses PriorityCode for inbound payloads.
func PriorityLabel(ticketType domain.TicketType, code int) (domain.TicketPriority, error) {
	table, ok := priorityByType[ticketType]
	if !ok {
		return "", apperrors.NewMappingNotFound("priority", ticketType)
	}
	return table.Label(code)
}

// PriorityMapped reports whether any priority table exists for the type.
func PriorityMapped(ticketType domain.TicketType) bool {
	_, ok := priorityByType[ticketType]
	return ok
}
