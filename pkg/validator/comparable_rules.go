package validator

import "fmt"

// NotZero validates that a comparable value is not its zero value.
func NotZero[T comparable]() Validation[T] {
	return FromPredicate(func(value T) bool {
		var zero T
		return value != zero
	}, "is required")
}

// OneOf validates that a value is one of the allowed values.
func OneOf[T comparable](allowed ...T) Validation[T] {
	return FromPredicate(func(value T) bool {
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}, fmt.Sprintf("must be one of: %v", allowed))
}

// NoneOf validates that a value is not one of the forbidden values.
func NoneOf[T comparable](forbidden ...T) Validation[T] {
	return FromPredicate(func(value T) bool {
		for _, f := range forbidden {
			if value == f {
				return false
			}
		}
		return true
	}, fmt.Sprintf("must not be one of: %v", forbidden))
}
