package observability

import (
	"context"

	"go.uber.org/zap"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/events"
)

var sessionEventTypes = []events.EventType{
	events.EventSessionRehydrated,
	events.EventSessionLogin,
	events.EventSessionLogout,
	events.EventCredentialDiscarded,
}

// RegisterAuditLog subscribes an audit trail for session lifecycle events, so
// logins, logouts and discarded credentials leave a record.
func RegisterAuditLog(dispatcher events.Dispatcher, logger *zap.Logger) {
	handler := func(_ context.Context, event events.Event) error {
		fields := []zap.Field{
			zap.String("event", string(event.Type)),
			zap.Time("occurred_at", event.OccurredAt),
		}
		if event.SubjectID != "" {
			fields = append(fields, zap.String("subject_id", event.SubjectID))
		}
		if event.Email != "" {
			fields = append(fields, zap.String("email", event.Email))
		}
		if event.Reason != "" {
			fields = append(fields, zap.String("reason", event.Reason))
		}
		logger.Info("session audit", fields...)
		return nil
	}

	for _, eventType := range sessionEventTypes {
		dispatcher.Subscribe(eventType, handler)
	}
}

// RegisterSessionMetrics counts session lifecycle transitions, so logins and
// discarded credentials show up alongside traffic counters.
func RegisterSessionMetrics(dispatcher events.Dispatcher, metrics *Metrics) {
	handler := func(_ context.Context, event events.Event) error {
		metrics.RecordSessionEvent(string(event.Type))
		return nil
	}

	for _, eventType := range sessionEventTypes {
		dispatcher.Subscribe(eventType, handler)
	}
}
