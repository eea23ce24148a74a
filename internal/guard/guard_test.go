package guard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/session"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/token"
)

type memoryStore struct {
	mu    sync.Mutex
	value string
	set   bool
}

func (s *memoryStore) Save(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value, s.set = tok, true
	return nil
}

func (s *memoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", token.ErrNoToken
	}
	return s.value, nil
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value, s.set = "", false
	return nil
}

func mintToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":    "u-1",
		"email": "admin@sufyanessence.com",
		"role":  role,
		"exp":   exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)
	return signed
}

func guardedApp(g *Guard) *fiber.App {
	app := fiber.New()
	app.Get("/admin/dashboard", g.RequireAdmin, func(c *fiber.Ctx) error {
		sess, ok := SessionFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusInternalServerError, "missing session")
		}
		return c.JSON(fiber.Map{"email": sess.Email})
	})
	return app
}

func initializedManager(t *testing.T, stored string) *session.Manager {
	t.Helper()
	store := &memoryStore{}
	if stored != "" {
		require.NoError(t, store.Save(stored))
	}
	m := session.NewManager(session.ManagerDependencies{Store: store})
	m.Initialize(context.Background())
	return m
}

func TestGuardAllowsAdmin(t *testing.T) {
	m := initializedManager(t, mintToken(t, "admin", time.Now().Add(time.Hour)))
	app := guardedApp(New(m))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuardRedirectsAnonymous(t *testing.T) {
	m := initializedManager(t, "")
	app := guardedApp(New(m))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, LoginPath, resp.Header.Get("Location"))
}

func TestGuardRedirectsNonAdminRole(t *testing.T) {
	m := initializedManager(t, mintToken(t, "customer", time.Now().Add(time.Hour)))
	app := guardedApp(New(m))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, LoginPath, resp.Header.Get("Location"))
}

func TestGuardRedirectsExpiredCredential(t *testing.T) {
	m := initializedManager(t, mintToken(t, "admin", time.Now().Add(-10*time.Second)))
	app := guardedApp(New(m))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestGuardHoldsWhileUnresolved(t *testing.T) {
	// Manager constructed but never initialized: no access decision yet.
	m := session.NewManager(session.ManagerDependencies{Store: &memoryStore{}})
	app := guardedApp(New(m))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("Retry-After"))
}
