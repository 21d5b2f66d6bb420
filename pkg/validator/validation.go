package validator

// Validation evaluates a value of type T and produces a Result. It is the
// single capability everything in this package composes: leaf checks are
// built with FromPredicate, compound checks with And and Or.
//
// A Validation never panics and never returns an error; invalidity is an
// ordinary Result value. Evaluation is pure as long as the supplied
// predicates are pure, which is the caller's obligation.
type Validation[T any] func(T) Result

// FromPredicate builds a leaf Validation from a boolean predicate and a
// fixed failure message. The message is reported verbatim when the
// predicate does not hold; no validation is applied to its content.
func FromPredicate[T any](predicate func(T) bool, message string) Validation[T] {
	return func(value T) Result {
		if predicate(value) {
			return OK()
		}
		return Fail(message)
	}
}

// Evaluate runs the validation against value.
func (v Validation[T]) Evaluate(value T) Result {
	return v(value)
}

// And combines two validations conjunctively. Evaluating the combination
// runs v first; an invalid Result is returned unchanged and other is not
// evaluated. When v passes, other's Result is returned. Composition order
// is therefore observable: the first failing operand is the one reported.
func (v Validation[T]) And(other Validation[T]) Validation[T] {
	return func(value T) Result {
		if res := v(value); !res.Valid {
			return res
		}
		return other(value)
	}
}

// Or combines two validations disjunctively. A valid Result from v is
// returned unchanged and other is not evaluated; otherwise other's
// Result is returned.
func (v Validation[T]) Or(other Validation[T]) Validation[T] {
	return func(value T) Result {
		if res := v(value); res.Valid {
			return res
		}
		return other(value)
	}
}

// All combines validations conjunctively, left to right, with the same
// short-circuit behavior as chained And calls. All of zero validations
// passes.
func All[T any](validations ...Validation[T]) Validation[T] {
	return func(value T) Result {
		for _, v := range validations {
			if res := v(value); !res.Valid {
				return res
			}
		}
		return OK()
	}
}

// Any combines validations disjunctively, left to right, with the same
// short-circuit behavior as chained Or calls. When none pass, the last
// failing Result is returned. Any of zero validations passes.
func Any[T any](validations ...Validation[T]) Validation[T] {
	return func(value T) Result {
		res := OK()
		for _, v := range validations {
			if res = v(value); res.Valid {
				return res
			}
		}
		return res
	}
}
