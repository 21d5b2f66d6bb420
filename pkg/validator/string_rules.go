package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// NotEmpty validates that a string is not empty after trimming whitespace.
func NotEmpty() Validation[string] {
	return FromPredicate(func(value string) bool {
		return strings.TrimSpace(value) != ""
	}, "must not be empty")
}

// MinLen validates that a string is at least min bytes long.
func MinLen(min int) Validation[string] {
	return FromPredicate(func(value string) bool {
		return len(value) >= min
	}, fmt.Sprintf("must be at least %d characters long", min))
}

// MaxLen validates that a string is at most max bytes long.
func MaxLen(max int) Validation[string] {
	return FromPredicate(func(value string) bool {
		return len(value) <= max
	}, fmt.Sprintf("must be at most %d characters long", max))
}

// LenBetween validates that a string's length falls within [min, max].
// It is MinLen combined with MaxLen, so a too-short value reports the
// minimum bound.
func LenBetween(min, max int) Validation[string] {
	return MinLen(min).And(MaxLen(max))
}

// Contains validates that a string contains substr.
func Contains(substr string) Validation[string] {
	return FromPredicate(func(value string) bool {
		return strings.Contains(value, substr)
	}, fmt.Sprintf("must contain %q", substr))
}

// HasPrefix validates that a string starts with prefix.
func HasPrefix(prefix string) Validation[string] {
	return FromPredicate(func(value string) bool {
		return strings.HasPrefix(value, prefix)
	}, fmt.Sprintf("must start with %q", prefix))
}

// Matches validates that a string matches the given pattern.
func Matches(pattern *regexp.Regexp) Validation[string] {
	return FromPredicate(func(value string) bool {
		return pattern.MatchString(value)
	}, fmt.Sprintf("must match pattern %s", pattern.String()))
}
