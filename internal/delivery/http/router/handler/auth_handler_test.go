package handler

import (
	"net/http"
	"testing"
	"time"

	custommiddleware "recipehub/internal/delivery/http/middleware"
	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	mockUC "recipehub/internal/mocks/usecase"
	"recipehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Signup_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())
	e := newTestEcho()

	uc.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(&usecase.AuthOutput{
			User:      &entity.User{ID: 1, Email: "alice@example.com"},
			Token:     "signed.jwt.token",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	body := `{"first_name":"Alice","email":"alice@example.com","password":"longenough!"}`
	rec := serve(e, http.MethodPost, "/signup", body, nil, h.Signup)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
	// The password hash never leaks through the response.
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestAuthHandler_Signup_ConflictEnvelope(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())
	e := newTestEcho()

	uc.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, domainerrors.ErrEmailTaken)

	body := `{"first_name":"Alice","email":"alice@example.com","password":"longenough!"}`
	rec := serve(e, http.MethodPost, "/signup", body, nil, h.Signup)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_TAKEN")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())
	e := newTestEcho()

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	body := `{"email":"alice@example.com","password":"wrong!"}`
	rec := serve(e, http.MethodPost, "/login", body, nil, h.Login)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect Email or Password")
}

func TestAuthHandler_Authorized_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())
	e := newTestEcho()

	uc.EXPECT().
		CurrentUser(mock.Anything, "token_hash").
		Return(&entity.User{ID: 3, Email: "alice@example.com"}, nil)

	rec := serve(e, http.MethodGet, "/authorized", "", func(c echo.Context) {
		c.Set(custommiddleware.KeyTokenHash, "token_hash")
	}, h.Authorized)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
}

func TestAuthHandler_Logout_NoSessionStill204(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())
	e := newTestEcho()

	rec := serve(e, http.MethodDelete, "/logout", "", nil, h.Logout)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	uc.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}

func TestAuthHandler_Logout_WithToken(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())
	e := newTestEcho()

	uc.EXPECT().Logout(mock.Anything, "token_hash").Return(nil)

	rec := serve(e, http.MethodDelete, "/logout", "", func(c echo.Context) {
		c.Set(custommiddleware.KeyTokenHash, "token_hash")
	}, h.Logout)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
