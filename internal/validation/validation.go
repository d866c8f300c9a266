// Package validation registers the custom validation rules used by request
// models on gin's validator engine and turns validation failures into
// client-facing messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sebasr/greeting-service/internal/models"
)

// Custom tags
const (
	TagEducationLevel = "education_level"
	TagNotNumeric     = "not_numeric"
	TagSingleAlphabet = "single_alphabet"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the custom rules on binding.Validator. It is safe to call
// more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("binding validator is not go-playground/validator")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// RegisterOn installs the custom rules on v.
func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)

	if err := v.RegisterValidation(TagEducationLevel, validateEducationLevel); err != nil {
		return fmt.Errorf("failed to register %s: %w", TagEducationLevel, err)
	}
	if err := v.RegisterValidation(TagNotNumeric, validateNotNumeric); err != nil {
		return fmt.Errorf("failed to register %s: %w", TagNotNumeric, err)
	}
	v.RegisterStructValidation(validatePerson, models.Person{})

	return nil
}

// fieldName reports fields by their wire name: json first, then form.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func validateEducationLevel(fl validator.FieldLevel) bool {
	return models.EducationLevel(fl.Field().String()).IsValid()
}

func validateNotNumeric(fl validator.FieldLevel) bool {
	return !IsNumeric(fl.Field().String())
}

func validatePerson(sl validator.StructLevel) {
	p, ok := sl.Current().Interface().(models.Person)
	if !ok {
		return
	}
	if MixesAlphabets(p.Name + strings.Join(p.Surname, "")) {
		sl.ReportError(p.Name, "name", "Name", TagSingleAlphabet, "")
	}
}

// IsNumeric reports whether s is non-empty and made of numeric runes only.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// MixesAlphabets reports whether s contains both Cyrillic and Latin letters.
func MixesAlphabets(s string) bool {
	var cyrillic, latin bool
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic = true
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			latin = true
		}
		if cyrillic && latin {
			return true
		}
	}
	return false
}
