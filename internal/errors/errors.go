package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error. Message is safe to show to clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrAdminNotFound          = &NotFoundError{Entity: "admin"}
	ErrTeamMemberNotFound     = &NotFoundError{Entity: "team member"}
	ErrSponsorNotFound        = &NotFoundError{Entity: "sponsor"}
	ErrSeasonNotFound         = &NotFoundError{Entity: "season"}
	ErrGalleryImageNotFound   = &NotFoundError{Entity: "gallery image"}
	ErrNewsNotFound           = &NotFoundError{Entity: "news article"}
	ErrCarNotFound            = &NotFoundError{Entity: "car"}
	ErrCarSpecNotFound        = &NotFoundError{Entity: "car spec"}
	ErrAboutSlideNotFound     = &NotFoundError{Entity: "about slide"}
	ErrContactMessageNotFound = &NotFoundError{Entity: "contact message"}
)

// Authentication Errors
var (
	ErrUnauthorized             = &AuthenticationError{Message: "Unauthorized"}
	ErrTokenInvalid             = &AuthenticationError{Message: "Token invalid or expired"}
	ErrInvalidCredentials       = &AuthenticationError{Message: "Invalid credentials"}
	ErrCurrentPasswordIncorrect = &AuthenticationError{Message: "Current password is incorrect"}
)

// Request Errors
var (
	ErrInvalidID             = &ValidationError{Field: "id", Message: "Invalid id"}
	ErrInvalidBody           = &ValidationError{Message: "Invalid request body"}
	ErrMissingCredentials    = &ValidationError{Message: "Username and password required"}
	ErrContactFieldsRequired = &ValidationError{Message: "Name, email, and message are required"}
	ErrImageRequired         = &ValidationError{Field: "image", Message: "image is required"}
	ErrUnsupportedImage      = &ValidationError{Field: "image", Message: "Unsupported image type"}
	ErrImageTooLarge         = &ValidationError{Field: "image", Message: "Image is too large"}
)

// Configuration Errors
var (
	ErrJWTSecretMissing = &ConfigurationError{Message: "JWT_SECRET must be set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// ExposeDetailsKey is the gin context key telling error responders whether
// internal error messages may be shown to the client.
const ExposeDetailsKey = "expose_error_details"

// HTTPStatus maps err to the status code the API answers with
func HTTPStatus(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsAuthentication(err):
		return http.StatusUnauthorized
	case IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message shown to clients for err.
// Internal errors are masked unless verbose is set.
func PublicMessage(err error, verbose bool) string {
	if HTTPStatus(err) != http.StatusInternalServerError || verbose {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return "Not found"
		}
		var validation *ValidationError
		if errors.As(err, &validation) {
			return validation.Message
		}
		var authErr *AuthenticationError
		if errors.As(err, &authErr) {
			return authErr.Message
		}
		return err.Error()
	}
	return "Internal server error"
}
