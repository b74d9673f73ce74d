package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "zfast-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator creates a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validate runs struct validation and converts the first failure into a ValidationError
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.ErrInvalidBody
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s is required", field))
	case "oneof":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", ")))
	case "email":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be a valid email address", field))
	case "max":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	case "min":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
	default:
		return apperrors.NewValidationError(field, fmt.Sprintf("%s is invalid", field))
	}
}
