package validator

import "fmt"

// NotEmptySlice validates that a slice has at least one element.
func NotEmptySlice[T any]() Validation[[]T] {
	return FromPredicate(func(value []T) bool {
		return len(value) > 0
	}, "must not be empty")
}

// MinItems validates that a slice has at least min elements.
func MinItems[T any](min int) Validation[[]T] {
	return FromPredicate(func(value []T) bool {
		return len(value) >= min
	}, fmt.Sprintf("must have at least %d items", min))
}

// MaxItems validates that a slice has at most max elements.
func MaxItems[T any](max int) Validation[[]T] {
	return FromPredicate(func(value []T) bool {
		return len(value) <= max
	}, fmt.Sprintf("must have at most %d items", max))
}

// ItemsBetween validates that a slice's element count falls within
// [min, max]; the minimum bound is reported first.
func ItemsBetween[T any](min, max int) Validation[[]T] {
	return MinItems[T](min).And(MaxItems[T](max))
}

// Each validates every element of a slice with v, reporting the first
// failing element's position alongside its message.
func Each[T any](v Validation[T]) Validation[[]T] {
	return func(value []T) Result {
		for i, item := range value {
			if res := v(item); !res.Valid {
				return Fail(fmt.Sprintf("item %d: %s", i, res.Message))
			}
		}
		return OK()
	}
}
