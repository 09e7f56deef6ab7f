package game

import (
	"errors"
	"fmt"
)

var (
	// ErrExit is returned when the player asks to leave. Any exchange in
	// flight is abandoned without disclosure.
	ErrExit = errors.New("game exited")

	// ErrAlreadyRun is returned by Run on a session that has already started.
	ErrAlreadyRun = errors.New("session already run")
)

// InvalidSelectionError reports input that is not a number in the range the
// current prompt accepts.
type InvalidSelectionError struct {
	What     string
	Input    string
	Min, Max int
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("Invalid input %q. Please choose a %s between %d and %d.", e.Input, e.What, e.Min, e.Max)
}
