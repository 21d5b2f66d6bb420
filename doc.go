// Package valid is the boundary layer over the validator combinator
// core: it attaches field names to validations, runs them against
// concrete values, and converts failures into a ValidationError that
// satisfies the error interface.
//
// The combinator core in pkg/validator never raises; it only produces
// Result values. This package is where a failing Result becomes a
// caller-visible error, and it offers both aggregation policies:
//
//	err := valid.Collect(
//	    valid.Field("email", form.Email, validator.NotEmpty().And(validator.Email())),
//	    valid.Field("age", form.Age, validator.Between(18, 120)),
//	)
//
// Collect evaluates every field and reports all failures at once; First
// stops at the first failing field, for call sites that want fail-fast
// behavior. Either way the returned error is a ValidationError, which
// can be detected with errors.Is(err, valid.ErrValidation) and unpacked
// with ExtractValidationError for per-field messages.
package valid
