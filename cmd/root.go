package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/devyntra/internal/cli/auth"
	"github.com/thenoetrevino/devyntra/internal/cli/project"
	"github.com/thenoetrevino/devyntra/internal/cli/tutorial"
)

var rootCmd = &cobra.Command{
	Use:   "devyntra",
	Short: "Devyntra - deploy your repositories from the terminal",
	Long: `Devyntra connects your repositories to the Devyntra platform.

Run without arguments to open the dashboard, or use the subcommands for
scripting. The auth and project subcommands accept --json and --quiet.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

func init() {
	rootCmd.AddCommand(auth.Commands()...)
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
