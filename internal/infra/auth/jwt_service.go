package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"recipehub/config"
	"recipehub/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for a session and its token.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	sessionTTL := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		sessionTTL = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Access,
		sessionTTL: sessionTTL,
	}, nil
}

// Issue creates a signed session token for a given user.
// The jti claim is a fresh UUID that also keys the session row.
func (s *jwtService) Issue(userID int64) (*service.SessionToken, error) {
	tokenID := uuid.New()
	expiresAt := time.Now().Add(s.sessionTTL)

	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"jti": tokenID.String(),              // Token ID, doubles as session key
		"iat": time.Now().Unix(),             // Issued At
		"exp": expiresAt.Unix(),              // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}

	return &service.SessionToken{
		Token:     signed,
		ID:        tokenID,
		Hash:      HashToken(signed),
		ExpiresAt: expiresAt,
	}, nil
}

// Hash implements service.TokenService.
func (s *jwtService) Hash(token string) string {
	return HashToken(token)
}

// Parse verifies a token string and extracts the user and session identifiers.
func (s *jwtService) Parse(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims type")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("subject missing from token")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, errors.New("invalid subject in token")
	}

	jti, ok := claims["jti"].(string)
	if !ok {
		return nil, errors.New("token id missing from token")
	}
	sessionID, err := uuid.Parse(jti)
	if err != nil {
		return nil, errors.New("invalid token id in token")
	}

	return &service.TokenClaims{
		UserID:    userID,
		SessionID: sessionID,
	}, nil
}

// HashToken returns the hex-encoded SHA-256 digest of a raw bearer token.
// Sessions are stored and looked up by this hash so the raw credential
// never touches the database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
