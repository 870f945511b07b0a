package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/uktrade/help-desk-api/internal/events"
)

// AuditService writes a structured log line for every proxied mutation so
// the Zendesk-era audit trail survives the Halo migration.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to the mutation events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventTicketCreated,
		events.EventTicketUpdated,
		events.EventCommentAdded,
		events.EventUserCreated,
		events.EventUserUpdated,
		events.EventTeamCreated,
		events.EventAgentCreated,
		events.EventFileUploaded,
	} {
		a.dispatcher.Subscribe(eventType, a.record)
	}
}

func (a *AuditService) record(_ context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event_id", event.ID),
		zap.String("event", string(event.Type)),
		zap.String("tenant", event.Tenant),
		zap.Time("at", event.Timestamp),
		zap.Any("payload", event.Payload),
	)
	return nil
}
