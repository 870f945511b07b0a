package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversInSubscriptionOrder(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var order []string
	dispatcher.Subscribe(EventTicketCreated, func(context.Context, Event) error {
		order = append(order, "first")
		return nil
	})
	dispatcher.Subscribe(EventTicketCreated, func(context.Context, Event) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventTicketCreated}))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDispatcherFailingHandlerDoesNotStopOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	failure := errors.New("handler broke")

	var delivered bool
	dispatcher.Subscribe(EventCommentAdded, func(context.Context, Event) error {
		return failure
	})
	dispatcher.Subscribe(EventCommentAdded, func(context.Context, Event) error {
		delivered = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventCommentAdded})
	assert.ErrorIs(t, err, failure)
	assert.True(t, delivered)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var hits int
	dispatcher.Subscribe(EventTicketCreated, func(context.Context, Event) error {
		hits++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventUserCreated}))
	assert.Zero(t, hits)
}
