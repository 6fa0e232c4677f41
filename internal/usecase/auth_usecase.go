// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"recipehub/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user together with the session token.
type AuthOutput struct {
	User      *entity.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup creates a new non-admin user and opens a session for it.
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)

	// Login verifies credentials and opens a session. Any failure surfaces
	// as the same undifferentiated invalid-credentials error.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// CurrentUser resolves a presented token hash to the session's user.
	CurrentUser(ctx context.Context, tokenHash string) (*entity.User, error)

	// Logout deletes the session for the presented token hash.
	// A missing session is not an error.
	Logout(ctx context.Context, tokenHash string) error
}
