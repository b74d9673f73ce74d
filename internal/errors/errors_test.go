package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "sponsor"}
		assert.Equal(t, "sponsor not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "sponsor"}
		err2 := &NotFoundError{Entity: "sponsor"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrSponsorNotFound, ErrSeasonNotFound))
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := fmt.Errorf("failed to get car: %w", ErrCarNotFound)
		assert.True(t, errors.Is(err, ErrCarNotFound))
		assert.True(t, IsNotFound(err))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrContactMessageNotFound))
		assert.False(t, IsNotFound(ErrInvalidCredentials))
		assert.False(t, IsNotFound(errors.New("boom")))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "image", Message: "image is required"}
		assert.Equal(t, "validation error: image - image is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "Invalid request body"}
		assert.Equal(t, "validation error: Invalid request body", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("tier", "invalid")))
		assert.True(t, IsValidation(fmt.Errorf("create sponsor: %w", ErrImageRequired)))
		assert.False(t, IsValidation(ErrSponsorNotFound))
	})
}

func TestAuthenticationErrors(t *testing.T) {
	t.Run("messages are client facing", func(t *testing.T) {
		assert.Equal(t, "Unauthorized", ErrUnauthorized.Error())
		assert.Equal(t, "Token invalid or expired", ErrTokenInvalid.Error())
		assert.Equal(t, "Invalid credentials", ErrInvalidCredentials.Error())
		assert.Equal(t, "Current password is incorrect", ErrCurrentPasswordIncorrect.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(fmt.Errorf("login: %w", ErrInvalidCredentials)))
		assert.False(t, IsAuthentication(ErrInvalidBody))
	})

	t.Run("sentinels are distinct", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTokenInvalid, ErrUnauthorized))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("bad config")
		assert.Equal(t, "bad config", err.Error())
		assert.True(t, IsConfiguration(err))
		assert.True(t, IsConfiguration(ErrJWTSecretMissing))
	})
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ErrInvalidBody, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("create: %w", NewValidationError("name", "name is required")), http.StatusBadRequest},
		{"authentication", ErrTokenInvalid, http.StatusUnauthorized},
		{"not found", ErrSeasonNotFound, http.StatusNotFound},
		{"store failure", errors.New("disk I/O error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	t.Run("not found is generic", func(t *testing.T) {
		assert.Equal(t, "Not found", PublicMessage(fmt.Errorf("get: %w", ErrSponsorNotFound), false))
	})

	t.Run("validation shows the message without prefix", func(t *testing.T) {
		assert.Equal(t, "Username and password required", PublicMessage(ErrMissingCredentials, false))
	})

	t.Run("authentication", func(t *testing.T) {
		assert.Equal(t, "Invalid credentials", PublicMessage(ErrInvalidCredentials, false))
	})

	t.Run("internal errors are masked", func(t *testing.T) {
		err := errors.New("database is locked")
		assert.Equal(t, "Internal server error", PublicMessage(err, false))
		assert.Equal(t, "database is locked", PublicMessage(err, true))
	})
}
