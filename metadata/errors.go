package metadata

import "fmt"

// ValidationError reports caller input that failed a shape, type, or
// controlled-vocabulary check. It is always raised locally, before any
// request is made.
type ValidationError struct {
	// Field is the metadata key the failure is tied to, empty when the
	// failure concerns the mapping as a whole.
	Field Field

	// Reason describes what was wrong with the value.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "metadata: " + e.Reason
	}
	return fmt.Sprintf("metadata %q: %s", string(e.Field), e.Reason)
}

// Is enables errors.Is matching against the zero ValidationError.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

func errf(field Field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
