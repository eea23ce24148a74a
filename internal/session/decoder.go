// Package session owns the administrator's authenticated identity: decoding
// the credential, the session state machine, and login/logout mediation.
package session

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"
)

// ErrDecode marks a credential whose payload cannot be parsed into the
// expected claim shape.
var ErrDecode = errors.New("credential not decodable")

// wireClaims mirrors the payload the backend embeds in issued tokens.
type wireClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Decode extracts and shape-checks the credential payload without contacting
// the backend. The signature is deliberately NOT verified here: issuance and
// true authorization are the backend's responsibility, and every forwarded
// request carries the raw token for the backend to re-validate. This gate is
// UX-only, not a security boundary.
func Decode(tokenStr string) (domain.Claims, error) {
	var wire wireClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, &wire); err != nil {
		return domain.Claims{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	subject := wire.ID
	if subject == "" {
		subject = wire.Subject
	}
	if subject == "" {
		return domain.Claims{}, fmt.Errorf("%w: missing subject", ErrDecode)
	}
	if wire.Role == "" {
		return domain.Claims{}, fmt.Errorf("%w: missing role", ErrDecode)
	}
	if wire.ExpiresAt == nil {
		return domain.Claims{}, fmt.Errorf("%w: missing expiry", ErrDecode)
	}

	claims := domain.Claims{
		SubjectID: subject,
		Email:     wire.Email,
		Role:      domain.Role(wire.Role),
		ExpiresAt: wire.ExpiresAt.Time,
	}
	if wire.IssuedAt != nil {
		claims.IssuedAt = wire.IssuedAt.Time
	}
	return claims, nil
}

// IsExpired reports whether claims are expired at the given instant.
// Expiry is exclusive: valid through ExpiresAt-1s, expired from ExpiresAt on.
func IsExpired(claims domain.Claims, now time.Time) bool {
	return claims.Expired(now)
}
