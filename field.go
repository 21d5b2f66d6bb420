package valid

import (
	"errors"

	"github.com/fieldkit/valid/pkg/validator"
)

// ErrValidation is a sentinel matched by errors.Is for any ValidationError.
var ErrValidation = errors.New("validation failed")

// Check is a named, ready-to-run validation: invoking it yields the
// field name together with the evaluation Result. The closure hides the
// value's type, so checks over differently typed fields compose in a
// single Collect or First call.
type Check func() (field string, res validator.Result)

// Field binds a field name and a value to a validation.
func Field[T any](name string, value T, v validator.Validation[T]) Check {
	return func() (string, validator.Result) {
		return name, v.Evaluate(value)
	}
}

// Collect runs every check and aggregates all failures into a
// ValidationError. Returns nil when everything passes.
func Collect(checks ...Check) error {
	errs := NewValidationError()
	for _, check := range checks {
		if field, res := check(); !res.Valid {
			errs.Add(field, res.Message)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// First runs checks in order and stops at the first failure, returning a
// single-field ValidationError. Later checks are not evaluated. Returns
// nil when everything passes.
func First(checks ...Check) error {
	for _, check := range checks {
		if field, res := check(); !res.Valid {
			errs := NewValidationError()
			errs.Add(field, res.Message)
			return errs
		}
	}

	return nil
}

// ExtractValidationError extracts a ValidationError from an error chain.
func ExtractValidationError(err error) ValidationError {
	if err == nil {
		return nil
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationError
	return errors.As(err, &validationErr)
}
