package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/eessi/ebdev/cmd/configcmd"
	"github.com/eessi/ebdev/cmd/generate"
	"github.com/eessi/ebdev/cmd/list"
	"github.com/eessi/ebdev/cmd/placeholders"
	"github.com/eessi/ebdev/internal/common"
	"github.com/eessi/ebdev/internal/config"
	"github.com/eessi/ebdev/internal/ui"
)

var (
	configPath string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ebdev",
	Short: "Development easyconfigs for pull requests",
	Long: `ebdev prepares development builds of pull requests for the build bot.

For a pull request on a repository under development it creates a workspace
<develop_base_dir>/<repo>/pr_<number>_cm_<commit> and fills it with an
easyconfig generated from a placeholder, an easyconfig copied with eb and
patched, or just the commit's patch.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.InitApp(configPath, verbose)
		if err != nil {
			return err
		}
		cmd.SetContext(common.WithApp(cmd.Context(), app))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	executed, err := rootCmd.ExecuteContextC(ctx)
	syncLogger(executed)
	if err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

// syncLogger flushes the logger of the app loaded for cmd, if any
func syncLogger(cmd *cobra.Command) {
	if cmd == nil || cmd.Context() == nil {
		return
	}
	if app := common.AppFromContext(cmd.Context()); app != nil && app.Logger != nil {
		_ = app.Logger.Sync()
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every external command")

	// Register all commands
	commands := []Command{
		&generate.Command{},
		&list.Command{},
		&placeholders.Command{},
		&configcmd.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
