package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/session"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/token"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	sessions    *session.Manager
	redis       *token.RedisStore
}

// NewHealthHandler returns a new handler instance. redis may be nil when the
// file token driver is in use.
func NewHealthHandler(serviceName, version string, sessions *session.Manager, redis *token.RedisStore) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, sessions: sessions, redis: redis}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness: the session manager has resolved out of its
// startup check and the credential store is reachable.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	state := h.sessions.State()
	depStatus["session"] = string(state)
	if state == session.StateUninitialized || state == session.StateLoading {
		ready = false
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx); err != nil {
			depStatus["redis"] = err.Error()
			ready = false
		} else {
			depStatus["redis"] = "ok"
		}
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"ready":        ready,
		"dependencies": depStatus,
	})
}
