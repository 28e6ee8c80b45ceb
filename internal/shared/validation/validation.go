// Package validation wraps go-playground/validator to structurally check
// inbound payloads. Every violated field is collected and reported together;
// validation never stops at the first bad field.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"salesdaily/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in violation field paths
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a struct and returns a ValidationError carrying
// one FieldViolation per violated field, or nil when the payload is valid.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewInternalError("payload validation failed")
	}

	violations := make([]errors.FieldViolation, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		violations = append(violations, errors.FieldViolation{
			Field:   fieldPath(fieldError),
			Message: fieldErrorMessage(fieldError),
		})
	}

	return errors.NewValidationError("validation failed", violations...)
}

// fieldPath strips the root struct name from the namespace so violations
// read as "visits[0].customer_id" rather than "CreateReportRequest.visits[0].customer_id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

// fieldErrorMessage returns a user-friendly message for a field validation error
func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at most %s item(s)", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "datetime":
		switch param {
		case "2006-01-02":
			return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
		case "15:04":
			return fmt.Sprintf("%s must be a time in HH:MM format", field)
		}
		return fmt.Sprintf("%s has an invalid date/time format", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}
