package cli

import "fmt"

// InputParseError is a task id that is not an integer.
type InputParseError struct {
	Input string
	Err   error
}

func (e *InputParseError) Error() string {
	return fmt.Sprintf("parse task id %q: %v", e.Input, e.Err)
}

func (e *InputParseError) Unwrap() error { return e.Err }
