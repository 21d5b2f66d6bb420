package validator

import "fmt"

// Numeric is the generic constraint used by the numeric rule factories.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min validates that a numeric value is greater than or equal to min.
func Min[T Numeric](min T) Validation[T] {
	return FromPredicate(func(value T) bool {
		return value >= min
	}, fmt.Sprintf("must be at least %v", min))
}

// Max validates that a numeric value is less than or equal to max.
func Max[T Numeric](max T) Validation[T] {
	return FromPredicate(func(value T) bool {
		return value <= max
	}, fmt.Sprintf("must be at most %v", max))
}

// Between validates that a numeric value falls within [min, max]. It is
// Min combined with Max, so a too-small value reports the minimum bound.
func Between[T Numeric](min, max T) Validation[T] {
	return Min(min).And(Max(max))
}

// Positive validates that a numeric value is greater than zero.
func Positive[T Numeric]() Validation[T] {
	return FromPredicate(func(value T) bool {
		var zero T
		return value > zero
	}, "must be positive")
}

// NonZero validates that a numeric value is not zero.
func NonZero[T Numeric]() Validation[T] {
	return FromPredicate(func(value T) bool {
		var zero T
		return value != zero
	}, "must not be zero")
}
