package browse

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidationError is a local failure: the request it guards was never sent.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// IsValidation reports whether err is a local validation failure rather
// than a network or remote one.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validationErr(reason string) error {
	return &ValidationError{Reason: reason}
}

// checkStruct runs the validator tags of v and folds any failure into a
// ValidationError so callers only ever see the local taxonomy.
func checkStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			field := fields[0]
			return validationErr(field.Field() + " failed " + field.Tag() + " validation")
		}
		return validationErr(err.Error())
	}
	return nil
}
