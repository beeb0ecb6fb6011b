package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// exitCodeNotFound mirrors the shell's exit code for a missing executable.
const exitCodeNotFound = 127

// Command describes a single external process invocation
type Command struct {
	Name    string   // executable to run
	Args    []string // arguments passed to the executable
	Dir     string   // working directory, current directory if empty
	Purpose string   // short description used in log messages

	// AllowFailure returns the raw result on a non-zero exit instead of a *CommandError
	AllowFailure bool
}

// String returns the command line as it would be typed in a shell
func (c Command) String() string {
	parts := append([]string{c.Name}, c.Args...)
	return strings.Join(parts, " ")
}

// Result holds the captured output of a finished command
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with code zero
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes external commands
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// ExecRunner runs commands as child processes
type ExecRunner struct {
	logger *zap.Logger
}

// New creates a runner that logs every invocation to logger
func New(logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{logger: logger}
}

// Run executes cmd and waits for it to finish.
// A non-zero exit returns a *CommandError unless cmd.AllowFailure is set.
// Cancelling ctx kills the process and returns the context error.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	dir := cmd.Dir
	if dir == "" {
		dir = "."
	}

	log := r.logger.With(
		zap.String("command", cmd.String()),
		zap.String("dir", dir),
	)
	if cmd.Purpose != "" {
		log = log.With(zap.String("purpose", cmd.Purpose))
	}
	log.Debug("Running command")

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = &stdout
	c.Stderr = &stderr

	result := &Result{}
	err := c.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("command %q interrupted: %w", cmd.String(), ctxErr)
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case errors.Is(err, exec.ErrNotFound):
		result.ExitCode = exitCodeNotFound
		stderr.WriteString(err.Error())
	default:
		return nil, fmt.Errorf("failed to execute %s: %w", cmd.Name, err)
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if result.Success() {
		log.Debug("Command finished", zap.Int("exit_code", result.ExitCode))
		return result, nil
	}

	cmdErr := &CommandError{
		Command:  cmd.String(),
		Dir:      dir,
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
		ExitCode: result.ExitCode,
	}
	log.Warn("Command failed",
		zap.Int("exit_code", result.ExitCode),
		zap.String("stderr", result.Stderr),
	)

	if cmd.AllowFailure {
		return result, nil
	}
	return nil, cmdErr
}
