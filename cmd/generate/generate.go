package generate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eessi/ebdev/internal/common"
	"github.com/eessi/ebdev/internal/recipe"
	"github.com/eessi/ebdev/internal/ui"
	"github.com/eessi/ebdev/internal/workspace"
)

// ErrToolchainRequired is returned when a recipe policy needs a toolchain and none could be chosen
var ErrToolchainRequired = errors.New("toolchain required")

// Command generates the development artifacts for a pull request
type Command struct {
	// Arguments
	Repo      string
	PRNumber  int
	Toolchain string

	// Flags
	Commit          string
	InjectChecksums bool
	Timeout         time.Duration

	// Clients (can be mocked in tests)
	App *common.App

	// Interactive reports whether a toolchain may be picked with the fuzzy finder
	Interactive func() bool
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "generate <repo> <pr-number> [toolchain]",
		Short: "Generate a development easyconfig for a pull request",
		Long: `Generate the development artifacts for a pull request.

The PR's base branch names the software version (develop_2Aug2023_update2
builds version 2Aug2023_update2). For laraPPr/lammps an easyconfig is
generated from the matching placeholder, or copied with eb and patched.
Other repositories under development only get the commit's patch.

If the toolchain is omitted in a terminal, it can be picked from the
placeholders available for the PR's version.

Example:
  ebdev generate laraPPr/lammps 42 foss-2023a
  ebdev generate laraPPr/lammps 42 foss-2023a --commit abc123
  ebdev generate laraPPr/lammps 42`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid PR number %q: %w", args[1], err)
			}
			c.Repo = args[0]
			c.PRNumber = number
			if len(args) > 2 {
				c.Toolchain = args[2]
			}
			if c.App == nil {
				c.App = common.AppFromContext(cmd.Context())
			}
			return c.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&c.Commit, "commit", "", "Build this commit instead of the PR's latest commit")
	cmd.Flags().BoolVar(&c.InjectChecksums, "inject-checksums", false, "Run eb --inject-checksums on the generated easyconfig")
	cmd.Flags().DurationVar(&c.Timeout, "timeout", 0, "Abort if generation takes longer than this (0 disables)")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cfg := c.App.Config
	log := c.App.Logger.With(zap.String("repo", c.Repo), zap.Int("pr", c.PRNumber))

	if !cfg.IsDevelopmentRepo(c.Repo) {
		log.Info("Repository not configured for development builds")
		ui.Warning("There is no development set up for this repo")
		return nil
	}

	pr, err := c.App.GH.FetchPullRequest(ctx, c.Repo, c.PRNumber, c.Commit)
	if err != nil {
		return err
	}
	ui.Print(ui.RenderPullRequest(pr))

	toolchain, err := c.resolveToolchain(pr.Repo, pr.BaseBranch)
	if err != nil {
		return err
	}

	ws, err := workspace.Allocate(cfg.DevelopBaseDir, pr.Repo, pr.Number, pr.Commit)
	if err != nil {
		return err
	}
	log.Debug("Workspace allocated", zap.String("path", ws.Path))
	ui.Infof("Using workspace %s", ws.Path)

	outcome, err := c.App.Generator.Generate(ctx, ws, recipe.Request{
		Repo:            pr.Repo,
		Commit:          pr.Commit,
		BaseBranch:      pr.BaseBranch,
		Toolchain:       toolchain,
		InjectChecksums: c.InjectChecksums,
	})
	if err != nil {
		return fmt.Errorf("failed to generate easyconfig for PR #%d: %w", pr.Number, err)
	}

	ui.Print(ui.RenderOutcome(outcome))
	return nil
}

// resolveToolchain returns the toolchain given on the command line, or lets
// the user pick one when the repository's policy needs it
func (c *Command) resolveToolchain(repo, baseBranch string) (string, error) {
	if c.Toolchain != "" {
		return c.Toolchain, nil
	}

	lister, ok := c.App.Generator.PolicyFor(repo).(recipe.ToolchainLister)
	if !ok {
		return "", nil
	}

	interactive := ui.IsInteractive
	if c.Interactive != nil {
		interactive = c.Interactive
	}
	if !interactive() {
		return "", fmt.Errorf("%w: pass the toolchain for %s as the third argument", ErrToolchainRequired, repo)
	}

	toolchains, err := lister.Toolchains(baseBranch)
	if err != nil {
		return "", err
	}
	if len(toolchains) == 0 {
		return "", fmt.Errorf("%w: no placeholders for version %q of %s", ErrToolchainRequired, recipe.VersionFromBranch(baseBranch), repo)
	}

	toolchain := ui.SelectToolchain(toolchains, func(tc string) string {
		return lister.EasyconfigName(baseBranch, tc).String()
	})
	if toolchain == "" {
		return "", fmt.Errorf("%w: no toolchain selected", ErrToolchainRequired)
	}
	ui.Successf("Selected toolchain %s", toolchain)
	return toolchain, nil
}
