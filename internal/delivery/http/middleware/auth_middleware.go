// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys the auth middleware sets for downstream handlers.
const (
	// KeyUserID holds the authenticated user's ID as an int64.
	KeyUserID = "userID"
	// KeyTokenHash holds the session lookup hash of the presented token.
	KeyTokenHash = "tokenHash"
)

// AuthMiddleware validates bearer session tokens and exposes the caller's
// identity to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid bearer token. Requests without one are
// rejected before the handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrSessionInvalid.WithDetails("missing bearer token")
		}

		if err := m.resolve(c, token); err != nil {
			return err
		}

		return next(c)
	}
}

// OptionalAuthenticate resolves the caller's identity when a bearer token is
// presented, and lets anonymous requests through. A malformed or expired
// token is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if ok {
			if err := m.resolve(c, token); err != nil {
				return err
			}
		}

		return next(c)
	}
}

// HashOnly stores the session hash of any presented token without verifying
// it. Logout uses this so it never fails on a bad or expired credential.
func (m *AuthMiddleware) HashOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			c.Set(KeyTokenHash, m.tokenSvc.Hash(token))
		}

		return next(c)
	}
}

// resolve verifies the token and stores the caller identity on the context.
func (m *AuthMiddleware) resolve(c echo.Context, token string) error {
	claims, err := m.tokenSvc.Parse(token)
	if err != nil {
		return domainerrors.ErrSessionInvalid.WithDetails("invalid or expired token")
	}

	c.Set(KeyUserID, claims.UserID)
	c.Set(KeyTokenHash, m.tokenSvc.Hash(token))

	return nil
}

// UserID returns the authenticated user's ID, if the auth middleware ran.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(KeyUserID).(int64)
	return id, ok
}

// TokenHash returns the session hash of the presented token, if any.
func TokenHash(c echo.Context) (string, bool) {
	hash, ok := c.Get(KeyTokenHash).(string)
	return hash, ok && hash != ""
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}

	return token, true
}
