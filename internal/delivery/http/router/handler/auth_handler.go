package handler

import (
	"log/slog"
	"net/http"

	"recipehub/internal/delivery/http/middleware"
	"recipehub/internal/delivery/http/response"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the session lifecycle endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// Signup handles the account registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Signup(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Login handles the credential verification request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Authorized returns the user behind the presented session token.
func (h *AuthHandler) Authorized(c echo.Context) error {
	tokenHash, ok := middleware.TokenHash(c)
	if !ok {
		return domainerrors.ErrSessionInvalid
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), tokenHash)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Authorized")
}

// Logout clears the presented session. It succeeds even when no session
// exists, so repeated logouts are harmless.
func (h *AuthHandler) Logout(c echo.Context) error {
	if tokenHash, ok := middleware.TokenHash(c); ok {
		if err := h.uc.Logout(c.Request().Context(), tokenHash); err != nil {
			return errors.WithStack(err)
		}
	}

	return response.NoContent(c)
}
