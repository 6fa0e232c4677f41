package repository

import (
	"context"
	"errors"

	"recipehub/internal/domain/entity"
)

// ErrSessionNotFound is returned when a session is not found.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the operations for session persistence.
// Sessions are looked up by the SHA-256 hash of the raw bearer token;
// the raw token never reaches the store.
type SessionRepository interface {
	// Create persists a new session, representing a logged-in client.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session record by its securely stored hash.
	FindByTokenHash(ctx context.Context, hash string) (*entity.Session, error)

	// DeleteByTokenHash deletes a session by its hash, effectively logging out.
	// Deleting an absent session returns ErrSessionNotFound.
	DeleteByTokenHash(ctx context.Context, hash string) error
}
