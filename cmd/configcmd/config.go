package configcmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eessi/ebdev/internal/common"
	"github.com/eessi/ebdev/internal/ui"
)

// Command prints the effective configuration
type Command struct {
	App *common.App
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after applying defaults and EBDEV_*
environment overrides. The GitHub token is redacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.App == nil {
				c.App = common.AppFromContext(cmd.Context())
			}
			return c.Run(cmd.Context())
		},
	}

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	data, err := c.App.Config.Marshal()
	if err != nil {
		return err
	}
	ui.Print(string(data))
	return nil
}
