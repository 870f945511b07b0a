package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/uktrade/help-desk-api/internal/domain"
	"github.com/uktrade/help-desk-api/internal/events"
	"github.com/uktrade/help-desk-api/internal/halo"
	"github.com/uktrade/help-desk-api/internal/transform"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

const defaultPageSize = 50

// HaloManager orchestrates multi-call Halo workflows for one tenant. It is
// built per request around a tenant-scoped client and holds no state of its
// own between calls.
type HaloManager struct {
	client     halo.Doer
	dispatcher events.Dispatcher
	logger     *zap.Logger
	tenant     string
	pageSize   int
}

// ManagerDependencies bundles collaborators for the manager.
type ManagerDependencies struct {
	Client     halo.Doer
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Tenant     string
	PageSize   int
}

// NewHaloManager constructs the manager.
func NewHaloManager(deps ManagerDependencies) *HaloManager {
	pageSize := deps.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HaloManager{
		client:     deps.Client,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		tenant:     deps.Tenant,
		pageSize:   pageSize,
	}
}

// GetOrCreateUser resolves the ticket requester against Halo. A nil user
// resolves to the authenticated caller's own identity. A user with an id is
// fetched, and re-posted as an update when an email is also supplied. A user
// without an id is created. Ending the sequence without a user is fatal for
// the enclosing operation.
func (m *HaloManager) GetOrCreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		var me halo.User
		if err := m.client.Get(ctx, "Users/me", nil, &me); err != nil {
			return nil, apperrors.NewUserResolutionFailed(err)
		}
		resolved := transform.UserFromHalo(me)
		return &resolved, nil
	}

	if !user.Resolvable() {
		return nil, apperrors.NewInvalidUser("user must carry an id or an email")
	}

	if user.ID != nil {
		var existing halo.User
		if err := m.client.Get(ctx, fmt.Sprintf("Users/%d", *user.ID), nil, &existing); err != nil {
			return nil, apperrors.NewUserResolutionFailed(err)
		}
		if user.Email == "" {
			resolved := transform.UserFromHalo(existing)
			return &resolved, nil
		}
		// Id plus email means update-by-id; the backend treats the re-post
		// as idempotent.
		return m.postUser(ctx, user, events.EventUserUpdated)
	}

	return m.postUser(ctx, user, events.EventUserCreated)
}

func (m *HaloManager) postUser(ctx context.Context, user *domain.User, eventType events.EventType) (*domain.User, error) {
	payload, err := transform.UserToHalo(user)
	if err != nil {
		return nil, err
	}
	var saved halo.User
	if err := m.client.Post(ctx, "Users", []halo.User{payload}, &saved); err != nil {
		return nil, apperrors.NewUserResolutionFailed(err)
	}
	if saved.ID == nil {
		return nil, apperrors.NewUserResolutionFailed(nil)
	}
	resolved := transform.UserFromHalo(saved)
	m.publishEvent(ctx, events.Event{
		Type:    eventType,
		Payload: events.UserEventPayload{UserID: resolved.ID, Email: resolved.Email},
	})
	return &resolved, nil
}

// CreateTicket realizes a Zendesk ticket creation as Halo calls: validate,
// resolve the requester, post the ticket, then post its comment as an
// action. The two posts are not transactional; when the comment post fails
// the created ticket is still returned alongside a CommentError.
func (m *HaloManager) CreateTicket(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	if !ticket.HasContent() {
		return nil, apperrors.NewInvalidTicketPayload("ticket must have a comment or a description")
	}
	normalizeFirstComment(ticket)
	// New tickets open in the new state unless the caller says otherwise.
	// Updates never get this default; there an omitted status means "leave
	// the backend value alone".
	if ticket.Status == "" {
		ticket.Status = domain.TicketStatusNew
	}

	requester, err := m.GetOrCreateUser(ctx, ticket.Requester)
	if err != nil {
		return nil, err
	}

	payload, err := transform.TicketToHalo(ticket, requester.ID)
	if err != nil {
		return nil, err
	}

	var saved halo.Ticket
	if err := m.client.Post(ctx, "Tickets", []halo.Ticket{payload}, &saved); err != nil {
		return nil, err
	}
	created, err := transform.TicketFromHalo(saved)
	if err != nil {
		return nil, err
	}
	created.Requester = requester

	m.publishEvent(ctx, events.Event{
		Type:    events.EventTicketCreated,
		Payload: events.TicketEventPayload{TicketID: created.ID, Subject: created.Subject},
	})

	if ticket.Comment != nil {
		if err := m.postComment(ctx, ticket.Comment, &created); err != nil {
			return &created, err
		}
	}
	return &created, nil
}

// UpdateTicket updates an existing ticket. A comment carrying its own id
// updates that action; a comment without one becomes a new action on the
// ticket. Same partial-success contract as CreateTicket.
func (m *HaloManager) UpdateTicket(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	if ticket.ID == nil {
		return nil, apperrors.NewTicketNotFound(0)
	}
	if ticket.Comment != nil && ticket.Comment.TicketID != nil && *ticket.Comment.TicketID != *ticket.ID {
		return nil, apperrors.NewInvalidTicketPayload(
			fmt.Sprintf("comment references ticket %d, not %d", *ticket.Comment.TicketID, *ticket.ID))
	}

	var requesterID *int
	if ticket.Requester != nil {
		requester, err := m.GetOrCreateUser(ctx, ticket.Requester)
		if err != nil {
			return nil, err
		}
		requesterID = requester.ID
	}

	payload, err := transform.TicketToHalo(ticket, requesterID)
	if err != nil {
		return nil, err
	}

	var saved halo.Ticket
	if err := m.client.Post(ctx, "Tickets", []halo.Ticket{payload}, &saved); err != nil {
		if apperrors.HasCode(err, apperrors.CodeRecordNotFound) {
			return nil, apperrors.NewTicketNotFound(*ticket.ID)
		}
		return nil, err
	}
	if saved.ID == nil {
		return nil, apperrors.NewTicketNotFound(*ticket.ID)
	}
	updated, err := transform.TicketFromHalo(saved)
	if err != nil {
		return nil, err
	}

	m.publishEvent(ctx, events.Event{
		Type:    events.EventTicketUpdated,
		Payload: events.TicketEventPayload{TicketID: updated.ID, Subject: updated.Subject},
	})

	if ticket.Comment != nil {
		if err := m.postComment(ctx, ticket.Comment, &updated); err != nil {
			return &updated, err
		}
	}
	return &updated, nil
}

// postComment posts a comment as an action on the saved ticket and merges
// the result back. Failures become CommentError so the caller still learns
// the ticket id that committed.
func (m *HaloManager) postComment(ctx context.Context, comment *domain.Comment, ticket *domain.Ticket) error {
	action := transform.CommentToHalo(comment, *ticket.ID)
	var saved halo.Action
	if err := m.client.Post(ctx, "Actions", []halo.Action{action}, &saved); err != nil {
		m.logger.Error("ticket saved but comment post failed",
			zap.Int("ticket_id", *ticket.ID),
			zap.Error(err),
		)
		return &apperrors.CommentError{TicketID: *ticket.ID, Err: err}
	}
	merged := transform.CommentFromHalo(saved)
	ticket.Comment = &merged

	m.publishEvent(ctx, events.Event{
		Type:    events.EventCommentAdded,
		Payload: events.CommentEventPayload{TicketID: *ticket.ID, CommentID: merged.ID, Public: merged.Public},
	})
	return nil
}

// GetTicket fetches one ticket with its attachments and folds in the most
// recent comment. Backend not-found signals never leak; they become
// TicketNotFound here.
func (m *HaloManager) GetTicket(ctx context.Context, ticketID int) (*domain.Ticket, error) {
	var payload halo.Ticket
	if err := m.client.Get(ctx, fmt.Sprintf("Tickets/%d", ticketID), nil, &payload); err != nil {
		if apperrors.HasCode(err, apperrors.CodeRecordNotFound) {
			return nil, apperrors.NewTicketNotFound(ticketID)
		}
		return nil, err
	}
	ticket, err := transform.TicketFromHalo(payload)
	if err != nil {
		return nil, err
	}

	var attachments halo.AttachmentList
	if err := m.client.Get(ctx, "Attachment", ticketParams(ticketID), &attachments); err != nil {
		return nil, err
	}
	ticket.Attachments = ticket.Attachments[:0]
	for _, attachment := range attachments.Attachments {
		ticket.Attachments = append(ticket.Attachments, transform.AttachmentFromHalo(attachment))
	}

	comments, err := m.GetComments(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if len(comments) > 0 {
		// Newest comment wins; older ones are only exposed via GetComments.
		ticket.Comment = &comments[0]
	}
	return &ticket, nil
}

// GetComments returns the ticket's comment actions newest first.
func (m *HaloManager) GetComments(ctx context.Context, ticketID int) ([]domain.Comment, error) {
	var actions halo.ActionList
	if err := m.client.Get(ctx, "Actions", ticketParams(ticketID), &actions); err != nil {
		return nil, err
	}
	comments := make([]domain.Comment, 0, len(actions.Actions))
	// Halo returns actions oldest first.
	for i := len(actions.Actions) - 1; i >= 0; i-- {
		if actions.Actions[i].Outcome != halo.OutcomeComment {
			continue
		}
		comments = append(comments, transform.CommentFromHalo(actions.Actions[i]))
	}
	return comments, nil
}

// GetTickets retrieves every ticket the tenant can see. The page count comes
// from the backend's own record_count, so the loop bound is fixed up front;
// remaining pages are fetched concurrently and reassembled in page order.
// Caller-facing pagination is layered on top by the HTTP layer.
func (m *HaloManager) GetTickets(ctx context.Context) ([]domain.Ticket, error) {
	first, err := m.fetchTicketPage(ctx, 1)
	if err != nil {
		return nil, err
	}

	pageSize := first.PageSize
	if pageSize <= 0 {
		pageSize = m.pageSize
	}
	pages := (first.RecordCount + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}

	pagePayloads := make([][]halo.Ticket, pages)
	pagePayloads[0] = first.Tickets

	group, groupCtx := errgroup.WithContext(ctx)
	for pageNo := 2; pageNo <= pages; pageNo++ {
		pageNo := pageNo
		group.Go(func() error {
			page, err := m.fetchTicketPage(groupCtx, pageNo)
			if err != nil {
				return err
			}
			pagePayloads[pageNo-1] = page.Tickets
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	tickets := make([]domain.Ticket, 0, first.RecordCount)
	for _, payloads := range pagePayloads {
		for _, payload := range payloads {
			ticket, err := transform.TicketFromHalo(payload)
			if err != nil {
				return nil, err
			}
			tickets = append(tickets, ticket)
		}
	}
	return tickets, nil
}

func (m *HaloManager) fetchTicketPage(ctx context.Context, pageNo int) (halo.TicketPage, error) {
	params := url.Values{
		"pageinate": {"true"},
		"page_size": {strconv.Itoa(m.pageSize)},
		"page_no":   {strconv.Itoa(pageNo)},
	}
	var page halo.TicketPage
	if err := m.client.Get(ctx, "Tickets", params, &page); err != nil {
		return halo.TicketPage{}, err
	}
	return page, nil
}

// UploadFile stores a file on the backend wrapped in Halo's base64 data-URI
// envelope. Image handling on the Halo side keys off a single content-type
// prefix check, not full sniffing.
func (m *HaloManager) UploadFile(ctx context.Context, filename string, data []byte, contentType string) (*domain.Upload, error) {
	if contentType == "" {
		contentType = "text/plain"
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	payload := halo.Attachment{
		Filename:   filename,
		IsImage:    isImageContentType(contentType),
		DataBase64: fmt.Sprintf("data:%s;base64,%s", contentType, encoded),
	}

	var saved halo.Attachment
	if err := m.client.Post(ctx, "Attachment", []halo.Attachment{payload}, &saved); err != nil {
		return nil, err
	}

	upload := &domain.Upload{
		Token:       uuid.NewString(),
		Filename:    filename,
		ContentType: contentType,
		Size:        len(data),
		IsImage:     payload.IsImage,
		HaloID:      saved.ID,
	}
	m.publishEvent(ctx, events.Event{
		Type:    events.EventFileUploaded,
		Payload: events.UploadEventPayload{Filename: filename, Size: len(data), IsImage: upload.IsImage},
	})
	return upload, nil
}

// normalizeFirstComment folds a description-only ticket into a synthetic
// first comment so exactly one of the two reaches the backend.
func normalizeFirstComment(ticket *domain.Ticket) {
	if ticket.Comment == nil && ticket.Description != "" {
		ticket.Comment = &domain.Comment{Body: ticket.Description, Public: true}
		ticket.Description = ""
	}
}

func isImageContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image")
}

func ticketParams(ticketID int) url.Values {
	return url.Values{"ticket_id": {strconv.Itoa(ticketID)}}
}

func (m *HaloManager) publishEvent(ctx context.Context, event events.Event) {
	if m.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Tenant == "" {
		event.Tenant = m.tenant
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = m.dispatcher.Publish(ctx, event)
}
