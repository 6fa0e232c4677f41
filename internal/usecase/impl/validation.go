package impl

import (
	"strings"

	domainerrors "recipehub/internal/domain/errors"
)

// passwordSpecialChars is the set of symbols a password must contain
// at least one of.
const passwordSpecialChars = "!@#$%^&*"

const minPasswordLength = 8

// validateFirstName checks that a first name was provided.
func validateFirstName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("first name must not be empty")
	}

	return nil
}

// validateEmail checks the minimal shape of an email address.
func validateEmail(email string) error {
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email must not be empty")
	}
	if !strings.Contains(email, "@") {
		return domainerrors.ErrValidationFailed.WithDetails("email must contain an @ sign")
	}

	return nil
}

// validatePassword enforces the password strength policy: at least
// eight characters, with at least one special character.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters long")
	}
	if !strings.ContainsAny(password, passwordSpecialChars) {
		return domainerrors.ErrValidationFailed.WithDetails("password must contain at least one special character (!@#$%^&*)")
	}

	return nil
}
