// Package validate wraps go-playground/validator with a process-wide
// instance and translates the first failed rule into a message suitable
// for an API error response.
package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var global = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request payload against its `validate` tags.
// The returned error, if any, is safe to show to the client.
func Struct(v any) error {
	err := global.Struct(v)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return fmt.Errorf("invalid request payload")
	}

	fe := vErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "min":
		return fmt.Errorf("%s is below the minimum length of %s", field, fe.Param())
	case "max":
		return fmt.Errorf("%s exceeds the maximum length of %s", field, fe.Param())
	case "url":
		return fmt.Errorf("%s must be a valid URL", field)
	case "email":
		return fmt.Errorf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", field, fe.Param())
	case "datetime":
		return fmt.Errorf("%s must match the format %s", field, fe.Param())
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}
