package valid

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ValidationError represents field validation errors.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

// NewValidationError creates a new empty validation error.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Error implements the error interface.
// Returns a human-readable message summarizing validation failures,
// fields in sorted order for deterministic output.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, field := range e.Fields() {
		for _, message := range e[field] {
			parts = append(parts, fmt.Sprintf("%s: %s", field, message))
		}
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidation, so callers can detect
// validation failures with errors.Is without inspecting fields.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add adds an error message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Messages returns all error messages for a field.
func (e ValidationError) Messages(field string) []string {
	return e[field]
}

// Has checks if a field has any errors.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// Fields returns the failed field names in sorted order.
func (e ValidationError) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// IsEmpty returns true if there are no validation errors.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
