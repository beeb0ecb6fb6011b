package runner

import (
	"errors"
	"fmt"
)

// ErrCommandFailed matches every *CommandError via errors.Is
var ErrCommandFailed = errors.New("command failed")

// CommandError describes a command that exited with a non-zero code
type CommandError struct {
	Command  string
	Dir      string
	Stdout   string
	Stderr   string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf(
		"error running '%s' in '%s'\n  stdout '%s'\n  stderr '%s'\n  exit code %d",
		e.Command, e.Dir, e.Stdout, e.Stderr, e.ExitCode,
	)
}

func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}
