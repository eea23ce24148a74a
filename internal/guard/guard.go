// Package guard gates the back-office routes on the session manager's state.
package guard

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/session"
)

const sessionKey = "guard_session"

// LoginPath is the entry point anonymous or unprivileged callers land on.
const LoginPath = "/admin/login"

// Guard is a stateless projection of the session manager's state onto
// request handling. It holds no state of its own.
type Guard struct {
	sessions *session.Manager
}

// New constructs the guard.
func New(sessions *session.Manager) *Guard {
	return &Guard{sessions: sessions}
}

// RequireAdmin admits only an authenticated admin session. While the manager
// is still resolving, no decision is made yet and callers are told to retry.
// Anonymous or non-admin sessions are redirected to the login entry point
// with 303 See Other, so back-navigation does not return to the guarded page.
func (g *Guard) RequireAdmin(c *fiber.Ctx) error {
	switch g.sessions.State() {
	case session.StateUninitialized, session.StateLoading:
		c.Set("Retry-After", "1")
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "initializing",
		})
	case session.StateAuthenticated:
		sess, ok := g.sessions.Current()
		if !ok || !sess.IsAdmin() {
			return c.Redirect(LoginPath, http.StatusSeeOther)
		}
		c.Locals(sessionKey, sess)
		return c.Next()
	default:
		return c.Redirect(LoginPath, http.StatusSeeOther)
	}
}

// SessionFromContext retrieves the admitted session.
func SessionFromContext(c *fiber.Ctx) (domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return domain.Session{}, false
	}
	sess, ok := val.(domain.Session)
	return sess, ok
}
