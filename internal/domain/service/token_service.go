package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionToken is a signed bearer credential bound to one session row.
type SessionToken struct {
	Token     string    // The signed JWT handed to the client.
	ID        uuid.UUID // Token ID (jti); doubles as the session primary key.
	Hash      string    // Lookup hash stored on the session row.
	ExpiresAt time.Time // Expiry baked into the token and the session row.
}

// TokenClaims is the verified content of a presented bearer token.
type TokenClaims struct {
	UserID    int64
	SessionID uuid.UUID
}

// TokenService signs and verifies the session tokens issued at login/signup.
// Verification is purely cryptographic; whether the session still exists is
// the session repository's business.
type TokenService interface {
	// Issue creates a signed token for the given user.
	Issue(userID int64) (*SessionToken, error)

	// Parse verifies a token string and extracts its claims.
	Parse(token string) (*TokenClaims, error)

	// Hash derives the session lookup hash for a raw token string.
	Hash(token string) string
}
