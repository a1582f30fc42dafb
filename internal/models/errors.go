package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports input that breaks an event invariant.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("field %s %s", f.Field, f.Message))
	}

	return strings.Join(msgs, ", ")
}

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

func (f EventFields) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return err
	}

	vErr := &ValidationError{}
	for _, fe := range validateErrs {
		vErr.Fields = append(vErr.Fields, FieldError{Field: fe.Field(), Message: describe(fe)})
	}

	return vErr
}

// ValidateNotPast is the optional creation policy that refuses dates already gone.
func (f EventFields) ValidateNotPast(now time.Time) error {
	if f.Date.Before(now) {
		return NewValidationError("Date", "must not be in the past")
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "is a required field"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "http_url":
		return "must be an absolute http or https URL"
	default:
		return "is not valid"
	}
}
