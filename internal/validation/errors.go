package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sebasr/greeting-service/internal/models"
)

// FieldError describes one failed rule
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Describe converts a validation error into per-field messages. It returns
// false when err is not a validator error.
func Describe(err error) ([]FieldError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return details, true
}

// Summary joins the per-field messages into one line.
func Summary(details []FieldError) string {
	parts := make([]string, 0, len(details))
	for _, d := range details {
		parts = append(parts, d.Message)
	}
	return strings.Join(parts, "; ")
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if isCollection(fe) {
			return fmt.Sprintf("%s must have at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		if isCollection(fe) {
			return fmt.Sprintf("%s must have at most %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case TagEducationLevel:
		return fmt.Sprintf("%s must be one of: %s", field, educationLevelList())
	case TagNotNumeric:
		return fmt.Sprintf("%s cannot be a number", field)
	case TagSingleAlphabet:
		return "name and surname must not mix Cyrillic and Latin letters"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func isCollection(fe validator.FieldError) bool {
	switch fe.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

func educationLevelList() string {
	levels := models.EducationLevels()
	names := make([]string, 0, len(levels))
	for _, l := range levels {
		names = append(names, string(l))
	}
	return strings.Join(names, ", ")
}
