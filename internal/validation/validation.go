package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator and turns its output into
// per-field messages suitable for inline form rendering.
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance
func New() *Validator {
	validate := validator.New()

	// Use form field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns a *FieldErrors on failure
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return NewFieldErrors(err.(validator.ValidationErrors))
	}
	return nil
}

// FieldErrors maps form field names to user-facing messages
type FieldErrors struct {
	Fields map[string]string
}

// Error implements the error interface
func (e FieldErrors) Error() string {
	var messages []string
	for field, message := range e.Fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// For returns the message for a field, or "" when the field is valid
func (e FieldErrors) For(field string) string {
	return e.Fields[field]
}

// NewFieldErrors creates a FieldErrors from validator.ValidationErrors
func NewFieldErrors(errs validator.ValidationErrors) *FieldErrors {
	fields := make(map[string]string)

	for _, err := range errs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			fields[field] = fmt.Sprintf("%s is required", field)
		case "email":
			fields[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			fields[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			fields[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "eqfield":
			fields[field] = "passwords don't match"
		default:
			fields[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &FieldErrors{Fields: fields}
}

// AsFieldErrors extracts a *FieldErrors from an error chain, if present
func AsFieldErrors(err error) (*FieldErrors, bool) {
	var fe *FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
