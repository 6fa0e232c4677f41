package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/service"
	mockSvc "recipehub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	err := m.Authenticate(okHandler)(newAuthContext(""))

	require.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	err := m.Authenticate(okHandler)(newAuthContext("Basic abc123"))

	require.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	c := newAuthContext("Bearer raw-token")

	tokenSvc.EXPECT().
		Parse("raw-token").
		Return(&service.TokenClaims{UserID: 5, SessionID: uuid.New()}, nil)
	tokenSvc.EXPECT().Hash("raw-token").Return("token_hash")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	userID, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, int64(5), userID)
	hash, ok := TokenHash(c)
	require.True(t, ok)
	assert.Equal(t, "token_hash", hash)
}

func TestAuthMiddleware_OptionalAuthenticate_AnonymousPasses(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c := newAuthContext("")

	err := m.OptionalAuthenticate(okHandler)(c)

	require.NoError(t, err)
	_, ok := UserID(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_OptionalAuthenticate_BadTokenRejected(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().Parse("garbage").Return(nil, assert.AnError)

	err := m.OptionalAuthenticate(okHandler)(newAuthContext("Bearer garbage"))

	require.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

// HashOnly never rejects: a garbage token still produces a hash, so logout
// can always succeed.
func TestAuthMiddleware_HashOnly_GarbageToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	c := newAuthContext("Bearer garbage")

	tokenSvc.EXPECT().Hash("garbage").Return("garbage_hash")

	err := m.HashOnly(okHandler)(c)

	require.NoError(t, err)
	hash, ok := TokenHash(c)
	require.True(t, ok)
	assert.Equal(t, "garbage_hash", hash)
}
