package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		desc        string
		level       string
		verbose     bool
		expectLevel zapcore.Level
		expectError bool
	}{
		{desc: "info level", level: "info", expectLevel: zapcore.InfoLevel},
		{desc: "verbose overrides level", level: "warn", verbose: true, expectLevel: zapcore.DebugLevel},
		{desc: "invalid level", level: "loud", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			logger, err := New(tc.level, tc.verbose)
			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tc.expectLevel))
			if tc.expectLevel > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tc.expectLevel-1))
			}
		})
	}
}

func TestRunID(t *testing.T) {
	id := RunID()
	assert.Len(t, id, 8)
	assert.NotEqual(t, id, RunID())
}
