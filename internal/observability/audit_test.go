package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/events"
)

func TestAuditLogRecordsSessionEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	RegisterAuditLog(dispatcher, zap.New(core))

	_ = dispatcher.Publish(context.Background(), events.Event{
		Type:      events.EventCredentialDiscarded,
		SubjectID: "u-1",
		Reason:    "expired",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "session audit", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, string(events.EventCredentialDiscarded), fields["event"])
	require.Equal(t, "u-1", fields["subject_id"])
	require.Equal(t, "expired", fields["reason"])
}

func TestSessionMetricsCountEvents(t *testing.T) {
	metrics := NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	RegisterSessionMetrics(dispatcher, metrics)

	ctx := context.Background()
	_ = dispatcher.Publish(ctx, events.Event{Type: events.EventSessionLogin})
	_ = dispatcher.Publish(ctx, events.Event{Type: events.EventSessionLogin})
	_ = dispatcher.Publish(ctx, events.Event{Type: events.EventSessionLogout})

	require.EqualValues(t, 2, metrics.SessionEventCount(string(events.EventSessionLogin)))
	require.EqualValues(t, 1, metrics.SessionEventCount(string(events.EventSessionLogout)))
	require.Zero(t, metrics.SessionEventCount(string(events.EventSessionRehydrated)))
}
