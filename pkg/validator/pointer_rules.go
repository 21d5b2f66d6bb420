package validator

// NotNil validates that a pointer is not nil.
func NotNil[T any]() Validation[*T] {
	return FromPredicate(func(value *T) bool {
		return value != nil
	}, "must not be nil")
}

// Deref applies a value validation to a pointer's referent. A nil
// pointer fails without invoking v, so a chain like
// NotNil[string]().And(Deref(MinLen(2))) never dereferences nil.
func Deref[T any](v Validation[T]) Validation[*T] {
	return func(value *T) Result {
		if value == nil {
			return Fail("must not be nil")
		}
		return v(*value)
	}
}
