package sawscope

import "fmt"

// SetupError is returned when something the program can't run without fails to start: the
// audio device, the window or the terminal. It is always fatal.
type SetupError struct {
	Stage string
	Err   error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s setup failed: %v", e.Stage, e.Err)
}

// Cause returns the underlying error, for github.com/pkg/errors.Cause.
func (e *SetupError) Cause() error { return e.Err }

// Unwrap returns the underlying error, for the standard errors package.
func (e *SetupError) Unwrap() error { return e.Err }
