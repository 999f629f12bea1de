package unitylog

import (
	"errors"
	"fmt"
)

// ErrNotText is returned when the input buffer is not textual. Structural
// parse failures never produce an error; only this boundary contract
// violation does.
var ErrNotText = errors.New("unrecognized type in stream")

// notTextError labels a contract violation with the origin of the
// offending value (a file path, or "stdin").
func notTextError(source string) error {
	return fmt.Errorf("%w: %s given non-string info", ErrNotText, source)
}
