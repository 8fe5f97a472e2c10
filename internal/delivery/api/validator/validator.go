// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator reporting json field names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validator: v}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// FieldErrors lists the failing fields of a validation error as field -> tag.
func FieldErrors(err error) map[string]string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = fe.Tag()
	}

	return out
}
