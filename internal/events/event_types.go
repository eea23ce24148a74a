package events

import "time"

// EventType identifies a session lifecycle event.
type EventType string

const (
	EventSessionRehydrated   EventType = "session.rehydrated"
	EventSessionLogin        EventType = "session.login"
	EventSessionLogout       EventType = "session.logout"
	EventCredentialDiscarded EventType = "session.credential_discarded"
)

// Event describes a session lifecycle transition.
type Event struct {
	Type       EventType
	SubjectID  string
	Email      string
	Reason     string
	OccurredAt time.Time
}
