// utils/valid.go
package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// IsValidSlug reports whether s is a URL-safe slug: lowercase alphanumeric
// runs separated by single hyphens or underscores.
func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}

// RequestValidator adapts go-playground/validator for Echo's c.Validate.
type RequestValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator with the custom slug rule and
// json-tag field names for error messages.
func NewValidator() *RequestValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsValidSlug(fl.Field().String())
	})

	return &RequestValidator{validator: v}
}

// Validate implements echo.Validator.
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validator.Struct(i)
}

// ValidationMessage renders a validation error as a short message naming the
// offending field.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return "Field '" + fe.Field() + "' is required"
		}
		return "Invalid value for field '" + fe.Field() + "'"
	}
	return "Invalid request payload"
}
