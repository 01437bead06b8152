package vocab

import (
	"errors"
)

var ErrMissingArgument = errors.New("missing argument")

// Returned by [Session.Execute] for any command name which is not recognized.
var ErrUnknownCommand = errors.New("unknown command")

// Returned by [Session.Execute] when the session should end. Not a failure.
var ErrQuit = errors.New("quit")

// A command was used incorrectly. The message is the exact text shown to the user.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func (e *UsageError) Is(target error) bool {
	return target == ErrMissingArgument
}

func missingArgument(msg string) error {
	return &UsageError{Message: msg}
}
