package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the request validator with the custom rules used by
// the API layer.
func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("theatre_name", validateTheatreName)

	return validator
}

// validateTheatreName accepts names usable as opaque registry keys:
// printable text that is not blank after trimming. The name is never
// interpreted as a path or a filename, so no characters beyond control
// codes are reserved.
func validateTheatreName(fl validator.FieldLevel) bool {
	name := fl.Field().String()

	if strings.TrimSpace(name) == "" {
		return false
	}

	for _, ch := range name {
		if unicode.IsControl(ch) {
			return false
		}
	}

	return true
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "theatre_name":
		return "must be printable text and not blank"
	default:
		return "is invalid"
	}
}
