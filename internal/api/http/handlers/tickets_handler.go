package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/uktrade/help-desk-api/internal/api/dto"
	"github.com/uktrade/help-desk-api/internal/domain"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

// TicketsHandler exposes the Zendesk-shaped ticket endpoints.
type TicketsHandler struct {
	factory ManagerFactory
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(factory ManagerFactory) *TicketsHandler {
	return &TicketsHandler{factory: factory}
}

// CreateTicket POST /api/v2/tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := manager.CreateTicket(c.UserContext(), req.Ticket.ToDomain())
	if err != nil {
		return ticketResult(c, fiber.StatusCreated, ticket, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TicketResponse{Ticket: dto.NewTicketView(ticket)})
}

// UpdateTicket PUT /api/v2/tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	payload := req.Ticket.ToDomain()
	payload.ID = &id

	ticket, err := manager.UpdateTicket(c.UserContext(), payload)
	if err != nil {
		return ticketResult(c, fiber.StatusOK, ticket, err)
	}
	return c.JSON(dto.TicketResponse{Ticket: dto.NewTicketView(ticket)})
}

// GetTicket GET /api/v2/tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ticket, err := manager.GetTicket(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.TicketResponse{Ticket: dto.NewTicketView(ticket)})
}

// ListTickets GET /api/v2/tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	tickets, err := manager.GetTickets(c.UserContext())
	if err != nil {
		return err
	}
	views := make([]dto.TicketView, 0, len(tickets))
	for i := range tickets {
		views = append(views, dto.NewTicketView(&tickets[i]))
	}
	return c.JSON(dto.TicketsResponse{Tickets: views, Count: len(views)})
}

// ListComments GET /api/v2/tickets/:id/comments.
func (h *TicketsHandler) ListComments(c *fiber.Ctx) error {
	manager, err := managerFor(c, h.factory)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	comments, err := manager.GetComments(c.UserContext(), id)
	if err != nil {
		return err
	}
	views := make([]dto.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, dto.NewCommentView(comment))
	}
	return c.JSON(dto.CommentsResponse{Comments: views})
}

// ticketResult renders a mutation outcome, distinguishing "nothing happened"
// from "ticket committed, comment missing". A CommentError still returns the
// ticket so callers learn the id that exists.
func ticketResult(c *fiber.Ctx, successStatus int, ticket *domain.Ticket, err error) error {
	var commentErr *apperrors.CommentError
	if errors.As(err, &commentErr) && ticket != nil {
		return c.Status(successStatus).JSON(fiber.Map{
			"ticket": dto.NewTicketView(ticket),
			"error": fiber.Map{
				"code":      "COMMENT_NOT_SAVED",
				"message":   "ticket was saved but its comment was not",
				"ticket_id": commentErr.TicketID,
			},
		})
	}
	return err
}
