package dto

import (
	"time"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is the session projection returned to the admin UI.
type SessionResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// NewSessionResponse maps the domain session.
func NewSessionResponse(sess domain.Session) SessionResponse {
	return SessionResponse{
		ID:        sess.ID,
		Email:     sess.Email,
		Role:      sess.Role,
		ExpiresAt: sess.ExpiresAt,
	}
}
