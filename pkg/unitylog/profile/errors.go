package profile

import "fmt"

// ValidationError represents a schema-level validation error, raised when
// a profile file violates structural requirements (e.g., an unsupported
// version number).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// HintError represents an error specific to an individual wrapper hint.
type HintError struct {
	Index   int // 0-based index of the hint in the file
	Message string
}

func (e *HintError) Error() string {
	return fmt.Sprintf("wrapper_hints[%d]: %s", e.Index, e.Message)
}
