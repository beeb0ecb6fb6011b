package placeholders

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eessi/ebdev/internal/common"
	"github.com/eessi/ebdev/internal/recipe"
	"github.com/eessi/ebdev/internal/ui"
)

// Command shows the placeholder easyconfigs available for generation
type Command struct {
	App *common.App
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "placeholders",
		Short: "List placeholder easyconfigs",
		Long: `List the placeholder easyconfigs in the placeholder directory.

A PR gets an easyconfig generated from a placeholder when the placeholder's
version matches the PR's base branch and its toolchain matches the one
requested.`,
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
	dir := c.App.Config.PlaceholderPath()

	placeholders, err := recipe.ListPlaceholders(dir)
	if err != nil {
		return err
	}

	ui.Header(dir)
	ui.Print(ui.RenderPlaceholderTable(placeholders))
	return nil
}
