package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/events"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/token"
	apperrors "github.com/Sheryaar-Ansar/sufyanessence-admin/pkg/util"
)

// State enumerates the manager's lifecycle states.
type State string

const (
	StateUninitialized State = "UNINITIALIZED"
	StateLoading       State = "LOADING"
	StateAuthenticated State = "AUTHENTICATED"
	StateAnonymous     State = "ANONYMOUS"
)

// loginFallbackMessage surfaces when the backend rejects a login without a message.
const loginFallbackMessage = "Login failed"

// ErrLoginSuperseded is returned when a login completes after a logout has
// already invalidated it.
var ErrLoginSuperseded = errors.New("login superseded by logout")

// LoginTransport is the external collaborator issuing credentials.
type LoginTransport interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Manager is the sole owner of the current authenticated identity. It
// mediates login, logout and startup rehydration, and is the only writer of
// the credential slot.
type Manager struct {
	store      token.Store
	transport  LoginTransport
	dispatcher events.Dispatcher
	now        func() time.Time

	mu          sync.Mutex
	state       State
	session     domain.Session
	hasSession  bool
	generation  uint64
	initialized bool
}

// ManagerDependencies bundles collaborator requirements.
type ManagerDependencies struct {
	Store      token.Store
	Transport  LoginTransport
	Dispatcher events.Dispatcher
}

// NewManager builds an uninitialized manager.
func NewManager(deps ManagerDependencies) *Manager {
	return &Manager{
		store:      deps.Store,
		transport:  deps.Transport,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
		state:      StateUninitialized,
	}
}

// Initialize rehydrates the session from the persisted credential. It runs
// exactly once; later calls are no-ops. It always resolves to Authenticated
// or Anonymous — a malformed or expired stored credential is discarded and
// never escapes as an error.
func (m *Manager) Initialize(ctx context.Context) {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return
	}
	m.initialized = true
	m.state = StateLoading
	m.mu.Unlock()

	raw, err := m.store.Load()
	if err != nil {
		// Absent (or unreadable) slot: land on the login screen silently.
		m.resolve(StateAnonymous, domain.Session{})
		return
	}

	claims, err := Decode(raw)
	if err != nil {
		_ = m.store.Clear()
		m.resolve(StateAnonymous, domain.Session{})
		m.publish(ctx, events.Event{Type: events.EventCredentialDiscarded, Reason: "decode_failed"})
		return
	}
	if IsExpired(claims, m.now()) {
		_ = m.store.Clear()
		m.resolve(StateAnonymous, domain.Session{})
		m.publish(ctx, events.Event{
			Type:      events.EventCredentialDiscarded,
			SubjectID: claims.SubjectID,
			Email:     claims.Email,
			Reason:    "expired",
		})
		return
	}

	sess := domain.SessionFromClaims(claims)
	m.resolve(StateAuthenticated, sess)
	m.publish(ctx, events.Event{Type: events.EventSessionRehydrated, SubjectID: sess.ID, Email: sess.Email})
}

// Login exchanges credentials for a fresh token via the transport. On
// success the token is persisted and the derived session becomes current.
// On transport failure nothing is mutated and the error surfaces with the
// backend's message when it supplied one.
func (m *Manager) Login(ctx context.Context, email, password string) (domain.Session, error) {
	m.mu.Lock()
	gen := m.generation
	m.mu.Unlock()

	tokenStr, err := m.transport.Login(ctx, email, password)
	if err != nil {
		return domain.Session{}, apperrors.NewAuthFailed(loginErrorMessage(err), err)
	}

	claims, err := Decode(tokenStr)
	if err != nil {
		return domain.Session{}, apperrors.NewAuthFailed(loginFallbackMessage, err)
	}
	sess := domain.SessionFromClaims(claims)

	m.mu.Lock()
	if m.generation != gen {
		// A logout happened while this login was in flight.
		m.mu.Unlock()
		return domain.Session{}, ErrLoginSuperseded
	}
	if err := m.store.Save(tokenStr); err != nil {
		m.mu.Unlock()
		return domain.Session{}, apperrors.NewInternalError(err)
	}
	m.state = StateAuthenticated
	m.session = sess
	m.hasSession = true
	m.mu.Unlock()

	m.publish(ctx, events.Event{Type: events.EventSessionLogin, SubjectID: sess.ID, Email: sess.Email})
	return sess, nil
}

// Logout clears the credential slot and lands on Anonymous unconditionally.
// Idempotent and network-free. It also invalidates any login still in flight.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.generation++
	prev := m.session
	had := m.hasSession
	m.state = StateAnonymous
	m.session = domain.Session{}
	m.hasSession = false
	err := m.store.Clear()
	m.mu.Unlock()

	event := events.Event{Type: events.EventSessionLogout}
	if had {
		event.SubjectID = prev.ID
		event.Email = prev.Email
	}
	m.publish(ctx, event)
	return err
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Current returns the active session, if any.
func (m *Manager) Current() (domain.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, m.hasSession
}

func (m *Manager) resolve(state State, sess domain.Session) {
	m.mu.Lock()
	m.state = state
	m.session = sess
	m.hasSession = state == StateAuthenticated
	m.mu.Unlock()
}

func (m *Manager) publish(ctx context.Context, event events.Event) {
	if m.dispatcher == nil {
		return
	}
	event.OccurredAt = m.now()
	_ = m.dispatcher.Publish(ctx, event)
}

// loginErrorMessage prefers the backend-supplied rejection message.
func loginErrorMessage(err error) string {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) && domainErr.MessageFromBackend {
		return domainErr.Message
	}
	return loginFallbackMessage
}
