package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BindingErrors flattens a failed binding into field-to-message form for a
// response body. Non-validator errors yield nil so callers can fall back to
// a generic message.
func BindingErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	messages := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages[fieldErr.Field()] = messageForTag(fieldErr)
	}
	return messages
}

func messageForTag(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", err.Param())
	default:
		return fmt.Sprintf("failed %s validation", err.Tag())
	}
}
