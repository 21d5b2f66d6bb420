package validator

// Result is the outcome of evaluating one value against one Validation.
// It is a plain immutable value: Valid reports whether the check held,
// and Message carries the failure reason when it did not. A valid Result
// has an empty Message.
type Result struct {
	Valid   bool
	Message string
}

// OK returns a passing Result.
func OK() Result {
	return Result{Valid: true}
}

// Fail returns a failing Result carrying message verbatim. An empty
// message is permitted.
func Fail(message string) Result {
	return Result{Message: message}
}
