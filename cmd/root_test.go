package cmd

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eessi/ebdev/internal/common"
)

type countingSyncer struct {
	syncs int
}

func (s *countingSyncer) Write(p []byte) (int, error) { return len(p), nil }

func (s *countingSyncer) Sync() error {
	s.syncs++
	return nil
}

func TestSyncLogger(t *testing.T) {
	ws := &countingSyncer{}
	logger := zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		ws,
		zap.InfoLevel,
	))

	failing := &cobra.Command{
		Use:           "failing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(common.WithApp(cmd.Context(), &common.App{Logger: logger}))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return assert.AnError
		},
	}
	failing.SetArgs([]string{})

	executed, err := failing.ExecuteContextC(context.Background())
	assert.ErrorIs(t, err, assert.AnError)

	syncLogger(executed)
	assert.Equal(t, 1, ws.syncs)
}

func TestSyncLogger_NoApp(t *testing.T) {
	assert.NotPanics(t, func() {
		syncLogger(nil)
		syncLogger(&cobra.Command{})
	})
}
