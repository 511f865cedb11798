package observability

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/events"
)

// NewAuditLogger returns an event handler that writes one structured log
// line per domain event. Register it with Dispatcher.SubscribeAll.
func NewAuditLogger(logger *zap.Logger) events.EventHandler {
	return func(_ context.Context, event events.Event) error {
		logger.Info("domain event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.String("kind", string(event.Kind)),
			zap.Int("item_id", event.ItemID),
			zap.Int("actor_id", event.Actor.UserID),
			zap.String("actor", event.Actor.Name),
			zap.Any("payload", event.Payload))
		return nil
	}
}
