package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uktrade/help-desk-api/internal/domain"
	"github.com/uktrade/help-desk-api/internal/halo"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

// fakeBackend scripts Halo responses per method+path and records every call
// in order.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	onGet  map[string]func(params url.Values) (any, error)
	onPost map[string]func(payload any) (any, error)
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		onGet:  map[string]func(params url.Values) (any, error){},
		onPost: map[string]func(payload any) (any, error){},
	}
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeBackend) Get(_ context.Context, path string, params url.Values, out any) error {
	f.record("GET " + path)
	handler, ok := f.onGet[path]
	if !ok {
		return apperrors.NewRecordNotFound(path)
	}
	response, err := handler(params)
	if err != nil {
		return err
	}
	return roundTrip(response, out)
}

func (f *fakeBackend) Post(_ context.Context, path string, payload any, out any) error {
	f.record("POST " + path)
	handler, ok := f.onPost[path]
	if !ok {
		return apperrors.NewRecordNotFound(path)
	}
	response, err := handler(payload)
	if err != nil {
		return err
	}
	return roundTrip(response, out)
}

// roundTrip pushes the scripted response through JSON, the same way the real
// client decodes bodies.
func roundTrip(response, out any) error {
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(response)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func firstElement[T any](t *testing.T, payload any) T {
	t.Helper()
	var elems []T
	require.NoError(t, roundTrip(payload, &elems))
	require.Len(t, elems, 1)
	return elems[0]
}

func newTestManager(backend *fakeBackend, pageSize int) *HaloManager {
	return NewHaloManager(ManagerDependencies{
		Client:   backend,
		Tenant:   "helpdesk@example.com",
		PageSize: pageSize,
	})
}

func TestCreateTicketRejectsEmptyPayload(t *testing.T) {
	backend := newFakeBackend()
	manager := newTestManager(backend, 10)

	_, err := manager.CreateTicket(context.Background(), &domain.Ticket{Subject: "empty"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidTicketPayload))
	assert.Zero(t, backend.callCount(), "no backend call may happen for an invalid ticket")
}

func TestCreateTicketDescriptionBecomesFirstComment(t *testing.T) {
	backend := newFakeBackend()
	userID := 42
	backend.onGet["Users/me"] = func(url.Values) (any, error) {
		return halo.User{ID: &userID, Name: "Caller", EmailAddress: "caller@example.com"}, nil
	}

	var postedTicket halo.Ticket
	var postedAction halo.Action
	backend.onPost["Tickets"] = func(payload any) (any, error) {
		postedTicket = firstElement[halo.Ticket](t, payload)
		created := postedTicket
		id := 100
		created.ID = &id
		return created, nil
	}
	backend.onPost["Actions"] = func(payload any) (any, error) {
		postedAction = firstElement[halo.Action](t, payload)
		saved := postedAction
		id := 7
		saved.ID = &id
		return saved, nil
	}

	manager := newTestManager(backend, 10)
	ticket, err := manager.CreateTicket(context.Background(), &domain.Ticket{
		Subject:     "help",
		Description: "my description",
	})
	require.NoError(t, err)

	// A description-only ticket posts its text as the first comment action,
	// with the ticket details carrying the same body.
	assert.Equal(t, "my description", postedAction.Note)
	assert.Equal(t, "my description", postedTicket.Details)
	assert.Equal(t, 100, postedAction.TicketID)
	assert.False(t, postedAction.HiddenFromUser)
	require.NotNil(t, postedTicket.StatusID, "a created ticket without a status opens as new")
	assert.Equal(t, 1, *postedTicket.StatusID)

	require.NotNil(t, ticket.ID)
	assert.Equal(t, 100, *ticket.ID)
	require.NotNil(t, ticket.Comment)
	assert.Equal(t, "my description", ticket.Comment.Body)
	require.NotNil(t, ticket.Requester)
	assert.Equal(t, 42, *ticket.Requester.ID)
}

func TestCreateTicketPartialSuccess(t *testing.T) {
	backend := newFakeBackend()
	userID := 1
	backend.onGet["Users/me"] = func(url.Values) (any, error) {
		return halo.User{ID: &userID}, nil
	}
	backend.onPost["Tickets"] = func(payload any) (any, error) {
		ticket := firstElement[halo.Ticket](t, payload)
		id := 55
		ticket.ID = &id
		return ticket, nil
	}
	backend.onPost["Actions"] = func(any) (any, error) {
		return nil, apperrors.NewBackendError("halo returned 500 for Actions", nil)
	}

	manager := newTestManager(backend, 10)
	ticket, err := manager.CreateTicket(context.Background(), &domain.Ticket{
		Comment: &domain.Comment{Body: "hello", Public: true},
	})

	var commentErr *apperrors.CommentError
	require.ErrorAs(t, err, &commentErr)
	assert.Equal(t, 55, commentErr.TicketID)
	require.NotNil(t, ticket, "the created ticket must still be returned")
	assert.Equal(t, 55, *ticket.ID)
}

func TestGetOrCreateUserRequiresIdentity(t *testing.T) {
	backend := newFakeBackend()
	manager := newTestManager(backend, 10)

	_, err := manager.GetOrCreateUser(context.Background(), &domain.User{Name: "nobody"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidUser))
	assert.Zero(t, backend.callCount())
}

func TestGetOrCreateUserUpdatesWhenIDAndEmailGiven(t *testing.T) {
	backend := newFakeBackend()
	existingID := 9
	backend.onGet["Users/9"] = func(url.Values) (any, error) {
		return halo.User{ID: &existingID, Name: "Old Name"}, nil
	}
	backend.onPost["Users"] = func(payload any) (any, error) {
		user := firstElement[halo.User](t, payload)
		return user, nil
	}

	manager := newTestManager(backend, 10)
	user, err := manager.GetOrCreateUser(context.Background(), &domain.User{
		ID:    &existingID,
		Name:  "New Name",
		Email: "new@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, *user.ID)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, []string{"GET Users/9", "POST Users"}, backend.calls)
}

func TestGetOrCreateUserCreatesWithoutID(t *testing.T) {
	backend := newFakeBackend()
	backend.onPost["Users"] = func(payload any) (any, error) {
		user := firstElement[halo.User](t, payload)
		id := 31
		user.ID = &id
		return user, nil
	}

	manager := newTestManager(backend, 10)
	user, err := manager.GetOrCreateUser(context.Background(), &domain.User{Email: "fresh@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 31, *user.ID)
}

func TestGetOrCreateUserResolutionFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.onPost["Users"] = func(any) (any, error) {
		return nil, apperrors.NewBackendError("halo returned 500 for Users", nil)
	}

	manager := newTestManager(backend, 10)
	_, err := manager.GetOrCreateUser(context.Background(), &domain.User{Email: "x@example.com"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUserResolutionFailed))
}

func TestUpdateTicketRequiresID(t *testing.T) {
	backend := newFakeBackend()
	manager := newTestManager(backend, 10)

	_, err := manager.UpdateTicket(context.Background(), &domain.Ticket{Description: "x"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeTicketNotFound))
	assert.Zero(t, backend.callCount())
}

func TestUpdateTicketTranslatesBackendNotFound(t *testing.T) {
	backend := newFakeBackend()
	backend.onPost["Tickets"] = func(any) (any, error) {
		return nil, apperrors.NewRecordNotFound("Tickets")
	}

	manager := newTestManager(backend, 10)
	id := 404
	_, err := manager.UpdateTicket(context.Background(), &domain.Ticket{ID: &id, Description: "x"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeTicketNotFound))
	assert.False(t, apperrors.HasCode(err, apperrors.CodeRecordNotFound))
}

func TestUpdateTicketRejectsMismatchedCommentLinkage(t *testing.T) {
	backend := newFakeBackend()
	manager := newTestManager(backend, 10)

	ticketID, otherTicketID := 10, 11
	_, err := manager.UpdateTicket(context.Background(), &domain.Ticket{
		ID:      &ticketID,
		Comment: &domain.Comment{Body: "hi", TicketID: &otherTicketID},
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidTicketPayload))
	assert.Zero(t, backend.callCount())
}

func TestUpdateTicketLeavesOmittedStatusUntouched(t *testing.T) {
	backend := newFakeBackend()
	var postedTicket halo.Ticket
	backend.onPost["Tickets"] = func(payload any) (any, error) {
		postedTicket = firstElement[halo.Ticket](t, payload)
		return postedTicket, nil
	}

	manager := newTestManager(backend, 10)
	id := 21
	_, err := manager.UpdateTicket(context.Background(), &domain.Ticket{
		ID:          &id,
		Description: "just new details",
	})
	require.NoError(t, err)
	// An update that never mentions status must not post one; a status code
	// here would revert the ticket to that state on the backend.
	assert.Nil(t, postedTicket.StatusID)

	_, err = manager.UpdateTicket(context.Background(), &domain.Ticket{
		ID:     &id,
		Status: domain.TicketStatusSolved,
	})
	require.NoError(t, err)
	require.NotNil(t, postedTicket.StatusID)
	assert.Equal(t, 18, *postedTicket.StatusID)
}

func TestUpdateTicketUpdatesExistingComment(t *testing.T) {
	backend := newFakeBackend()
	backend.onPost["Tickets"] = func(payload any) (any, error) {
		return firstElement[halo.Ticket](t, payload), nil
	}
	var postedAction halo.Action
	backend.onPost["Actions"] = func(payload any) (any, error) {
		postedAction = firstElement[halo.Action](t, payload)
		return postedAction, nil
	}

	manager := newTestManager(backend, 10)
	ticketID, commentID := 10, 88
	_, err := manager.UpdateTicket(context.Background(), &domain.Ticket{
		ID:      &ticketID,
		Subject: "edit",
		Comment: &domain.Comment{ID: &commentID, Body: "revised", Public: true},
	})
	require.NoError(t, err)
	require.NotNil(t, postedAction.ID, "a comment with an id updates that action")
	assert.Equal(t, 88, *postedAction.ID)
	assert.Equal(t, 10, postedAction.TicketID)
}

func TestGetTicketNotFound(t *testing.T) {
	backend := newFakeBackend()
	manager := newTestManager(backend, 10)

	_, err := manager.GetTicket(context.Background(), 12345)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeTicketNotFound))
}

func TestGetTicketFoldsNewestComment(t *testing.T) {
	backend := newFakeBackend()
	ticketID := 5
	backend.onGet["Tickets/5"] = func(url.Values) (any, error) {
		return halo.Ticket{ID: &ticketID, Summary: "s"}, nil
	}
	backend.onGet["Attachment"] = func(url.Values) (any, error) {
		return halo.AttachmentList{}, nil
	}
	// Oldest first, comments interleaved with other outcomes.
	backend.onGet["Actions"] = func(params url.Values) (any, error) {
		assert.Equal(t, "5", params.Get("ticket_id"))
		return halo.ActionList{Actions: []halo.Action{
			{TicketID: 5, Outcome: "comment", Note: "first"},
			{TicketID: 5, Outcome: "assignment"},
			{TicketID: 5, Outcome: "comment", Note: "second"},
			{TicketID: 5, Outcome: "status change"},
			{TicketID: 5, Outcome: "comment", Note: "third"},
		}}, nil
	}

	manager := newTestManager(backend, 10)
	ticket, err := manager.GetTicket(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, ticket.Comment)
	assert.Equal(t, "third", ticket.Comment.Body)
}

func TestGetCommentsNewestFirst(t *testing.T) {
	backend := newFakeBackend()
	backend.onGet["Actions"] = func(url.Values) (any, error) {
		return halo.ActionList{Actions: []halo.Action{
			{TicketID: 2, Outcome: "comment", Note: "oldest"},
			{TicketID: 2, Outcome: "assignment"},
			{TicketID: 2, Outcome: "comment", Note: "newest"},
		}}, nil
	}

	manager := newTestManager(backend, 10)
	comments, err := manager.GetComments(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "newest", comments[0].Body)
	assert.Equal(t, "oldest", comments[1].Body)
}

func TestGetTicketsFetchesAllPages(t *testing.T) {
	backend := newFakeBackend()
	const recordCount = 25
	const pageSize = 10

	backend.onGet["Tickets"] = func(params url.Values) (any, error) {
		pageNo, err := strconv.Atoi(params.Get("page_no"))
		if err != nil {
			return nil, err
		}
		assert.Equal(t, "true", params.Get("pageinate"))

		start := (pageNo - 1) * pageSize
		count := pageSize
		if start+count > recordCount {
			count = recordCount - start
		}
		tickets := make([]halo.Ticket, 0, count)
		for i := 0; i < count; i++ {
			id := start + i + 1
			tickets = append(tickets, halo.Ticket{ID: &id, Summary: fmt.Sprintf("ticket %d", id)})
		}
		return halo.TicketPage{
			RecordCount: recordCount,
			PageSize:    pageSize,
			PageNo:      pageNo,
			Tickets:     tickets,
		}, nil
	}

	manager := newTestManager(backend, pageSize)
	tickets, err := manager.GetTickets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, backend.callCount(), "25 records at page size 10 is exactly 3 fetches")
	require.Len(t, tickets, recordCount)
	for i, ticket := range tickets {
		assert.Equal(t, i+1, *ticket.ID, "tickets must be assembled in page order")
	}
}

func TestUploadFileEncodesDataURI(t *testing.T) {
	backend := newFakeBackend()
	var posted halo.Attachment
	backend.onPost["Attachment"] = func(payload any) (any, error) {
		posted = firstElement[halo.Attachment](t, payload)
		saved := posted
		id := 12
		saved.ID = &id
		return saved, nil
	}

	manager := newTestManager(backend, 10)
	data := []byte("hello attachment")
	upload, err := manager.UploadFile(context.Background(), "notes.txt", data, "")
	require.NoError(t, err)

	encoded := base64.StdEncoding.EncodeToString(data)
	assert.Equal(t, "data:text/plain;base64,"+encoded, posted.DataBase64)
	assert.False(t, posted.IsImage)
	assert.NotEmpty(t, upload.Token)
	assert.Equal(t, 12, *upload.HaloID)
	assert.Equal(t, len(data), upload.Size)
}

func TestUploadFileFlagsImages(t *testing.T) {
	backend := newFakeBackend()
	var posted halo.Attachment
	backend.onPost["Attachment"] = func(payload any) (any, error) {
		posted = firstElement[halo.Attachment](t, payload)
		return posted, nil
	}

	manager := newTestManager(backend, 10)
	_, err := manager.UploadFile(context.Background(), "cat.png", []byte{1, 2, 3}, "image/png")
	require.NoError(t, err)
	assert.True(t, posted.IsImage)
}
