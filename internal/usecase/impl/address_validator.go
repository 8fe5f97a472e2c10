package impl

import (
	"reflect"
	"strconv"
	"strings"

	domainerrors "kedai/internal/domain/errors"
	"kedai/internal/errors"

	"github.com/go-playground/validator/v10"
)

const phoneDigitsTag = "phone_digits"

// newAddressValidator builds the form validator. Field names in errors are the json names.
func newAddressValidator(maxDigits int) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(phoneDigitsTag, func(fl validator.FieldLevel) bool {
		phone := fl.Field().String()
		if maxDigits > 0 && len(phone) > maxDigits {
			return false
		}

		return isDigits(phone)
	})

	return v
}

// toValidationError converts validator output into a user-facing ErrValidationFailed.
func toValidationError(err error, maxDigits int) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	var missing, invalid []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}

	fields := append(append([]string{}, missing...), invalid...)
	details := strings.Join(fields, ",")

	switch {
	case len(missing) > 0:
		return domainerrors.ErrValidationFailed.
			WithMessage("Please fill in " + strings.Join(missing, ", ")).
			WithDetails(details)
	case len(invalid) == 1 && invalid[0] == "phone":
		return domainerrors.ErrValidationFailed.
			WithMessage("Phone number must be at most " + strconv.Itoa(maxDigits) + " digits").
			WithDetails(details)
	default:
		return domainerrors.ErrValidationFailed.
			WithMessage("Invalid " + strings.Join(invalid, ", ")).
			WithDetails(details)
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
