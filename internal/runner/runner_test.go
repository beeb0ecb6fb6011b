package runner

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Run(t *testing.T) {
	testCases := []struct {
		desc         string
		cmd          Command
		expectResult *Result
		expectError  bool
	}{
		{
			desc:         "captures stdout and stderr",
			cmd:          Command{Name: "sh", Args: []string{"-c", "echo out; echo err >&2"}},
			expectResult: &Result{Stdout: "out\n", Stderr: "err\n", ExitCode: 0},
		},
		{
			desc:        "non-zero exit returns command error",
			cmd:         Command{Name: "sh", Args: []string{"-c", "exit 3"}},
			expectError: true,
		},
		{
			desc:         "non-zero exit with allow failure returns result",
			cmd:          Command{Name: "sh", Args: []string{"-c", "echo nope >&2; exit 3"}, AllowFailure: true},
			expectResult: &Result{Stderr: "nope\n", ExitCode: 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			r := New(nil)
			result, err := r.Run(context.Background(), tc.cmd)

			if tc.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrCommandFailed))
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectResult, result)
		})
	}
}

func TestExecRunner_RunInDir(t *testing.T) {
	dir := t.TempDir()

	result, err := New(nil).Run(context.Background(), Command{Name: "pwd", Dir: dir})
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, strings.TrimSpace(result.Stdout))
}

func TestExecRunner_FailureInWorkingDir(t *testing.T) {
	_, err := New(nil).Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "exit 2"}})

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, ".", cmdErr.Dir)
	assert.Equal(t, 2, cmdErr.ExitCode)
}

func TestExecRunner_MissingExecutable(t *testing.T) {
	r := New(nil)

	result, err := r.Run(context.Background(), Command{Name: "ebdev-no-such-binary", AllowFailure: true})
	require.NoError(t, err)
	assert.Equal(t, exitCodeNotFound, result.ExitCode)

	_, err = r.Run(context.Background(), Command{Name: "ebdev-no-such-binary"})
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, exitCodeNotFound, cmdErr.ExitCode)
}

func TestExecRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Run(ctx, Command{Name: "sleep", Args: []string{"5"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCommandError_Error(t *testing.T) {
	err := &CommandError{
		Command:  "curl -sSL https://example.invalid",
		Dir:      "/tmp",
		Stdout:   "",
		Stderr:   "could not resolve host",
		ExitCode: 6,
	}

	msg := err.Error()
	assert.Contains(t, msg, "curl -sSL https://example.invalid")
	assert.Contains(t, msg, "could not resolve host")
	assert.Contains(t, msg, "exit code 6")
}

func TestCommand_String(t *testing.T) {
	cmd := Command{Name: "eb", Args: []string{"--copy-ec", "LAMMPS.eb", "."}}
	assert.Equal(t, "eb --copy-ec LAMMPS.eb .", cmd.String())
}
