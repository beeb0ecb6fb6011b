package eb

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/eessi/ebdev/internal/runner"
)

// Tool invokes the EasyBuild command line
type Tool struct {
	runner  runner.Runner
	command string
}

// New creates a Tool running the given eb executable
func New(r runner.Runner, command string) *Tool {
	if command == "" {
		command = "eb"
	}
	return &Tool{runner: r, command: command}
}

// CopyEasyconfig copies the easyconfig called name from the robot search path into dir.
// The result is returned even if eb fails, so callers can treat an unknown name as a soft failure.
func (t *Tool) CopyEasyconfig(ctx context.Context, name, dir string) (*runner.Result, error) {
	return t.runner.Run(ctx, runner.Command{
		Name:         t.command,
		Args:         []string{"--copy-ec", name, "."},
		Dir:          dir,
		Purpose:      "create eb",
		AllowFailure: true,
	})
}

// InjectChecksums updates the checksums of the easyconfig at path in place
func (t *Tool) InjectChecksums(ctx context.Context, path string) error {
	_, err := t.runner.Run(ctx, runner.Command{
		Name: t.command,
		Args: []string{
			"--detect-loaded-modules=purge",
			filepath.Base(path),
			"--inject-checksums",
			"--force",
		},
		Dir:     filepath.Dir(path),
		Purpose: "inject new checksums in easyconfig",
	})
	if err != nil {
		return fmt.Errorf("failed to inject checksums into %s: %w", path, err)
	}
	return nil
}
