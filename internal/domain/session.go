package domain

import "time"

// Role enumerates subject roles carried in the credential.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Claims is the decoded credential payload. The shape is fixed and validated
// at decode time so a malformed payload fails early instead of surfacing as a
// nil dereference later.
type Claims struct {
	SubjectID string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the claims are expired at the given instant.
// The boundary is exclusive: a credential is valid up to ExpiresAt-1s and
// expired from ExpiresAt onward.
func (c Claims) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Session is the in-memory projection of valid claims. It is never persisted;
// only the raw credential is, and the session is rederived from it.
type Session struct {
	ID        string
	Email     string
	Role      Role
	ExpiresAt time.Time
}

// SessionFromClaims derives the session projection.
func SessionFromClaims(c Claims) Session {
	return Session{
		ID:        c.SubjectID,
		Email:     c.Email,
		Role:      c.Role,
		ExpiresAt: c.ExpiresAt,
	}
}

// IsAdmin reports whether the session grants back-office access.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
