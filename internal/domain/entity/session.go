package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a logged-in client. Each successful login or signup
// creates one; logout deletes it. The raw bearer token is never stored,
// only its SHA-256 hash for lookup.
type Session struct {
	ID        uuid.UUID // Token ID (the jti claim of the issued JWT).
	UserID    int64     // The account this session is bound to.
	TokenHash string    // SHA-256 hash of the raw bearer token.
	ExpiresAt time.Time // After this instant the session no longer authenticates.
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
