package list

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eessi/ebdev/internal/common"
	"github.com/eessi/ebdev/internal/ui"
	"github.com/eessi/ebdev/internal/workspace"
)

// Command lists the generated workspaces
type Command struct {
	// Arguments
	Repo string

	// Clients (can be mocked in tests)
	App *common.App
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "list [repo]",
		Short: "List generated workspaces",
		Long: `List the workspaces under the develop base directory and the
easyconfigs and patches generated in each.

Example:
  ebdev list
  ebdev list laraPPr/lammps`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				c.Repo = args[0]
			}
			if c.App == nil {
				c.App = common.AppFromContext(cobraCmd.Context())
			}
			return c.Run(cobraCmd.Context())
		},
	}

	parent.AddCommand(command)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	root := c.App.Config.DevelopBaseDir

	workspaces, err := workspace.List(root, c.Repo)
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	entries := make([]ui.WorkspaceEntry, 0, len(workspaces))
	for _, ws := range workspaces {
		files, err := ws.Files()
		if err != nil {
			ui.Warningf("failed to read workspace %s: %v", ws.RecipeID, err)
			continue
		}
		entries = append(entries, ui.WorkspaceEntry{
			Repo:     ws.Repo,
			RecipeID: ws.RecipeID,
			Files:    files,
		})
	}

	ui.Print(ui.RenderWorkspaceTree(root, entries))
	return nil
}
