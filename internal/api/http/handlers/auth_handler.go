package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/api/dto"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/guard"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/session"
	apperrors "github.com/Sheryaar-Ansar/sufyanessence-admin/pkg/util"
)

// AuthHandler exposes the administrator login, logout and session endpoints.
type AuthHandler struct {
	sessions *session.Manager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login handles POST /admin/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	sess, err := h.sessions.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NewSessionResponse(sess)})
}

// Logout handles POST /admin/logout. Safe to call with no active session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c.UserContext()); err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.Status(http.StatusNoContent).Send(nil)
}

// Me handles GET /admin/me behind the guard.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess, ok := guard.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no active session")
	}
	return c.JSON(fiber.Map{"data": dto.NewSessionResponse(sess)})
}
