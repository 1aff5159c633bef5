package analysis

import "fmt"

// ValidationError indicates the request was rejected before scoring, such as
// a missing skill list. Distinct from an empty list, which is a valid input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
