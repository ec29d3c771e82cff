package project

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/devyntra/internal/cli"
	projectservice "github.com/thenoetrevino/devyntra/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a repository for analysis",
		Long: `Register a GitHub repository as a project. Analysis starts right away;
watch its status with devyntra project list --watch.

Examples:
  # Human-readable output
  devyntra project create --name=api --repo-url=https://github.com/acme/api

  # JSON output for agents
  devyntra project create --name=api --repo-url=https://github.com/acme/api --json

  # Quiet mode for bash capture
  PROJECT_ID=$(devyntra project create --name=api --repo-url=https://github.com/acme/api --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Project name (required)")
	cmd.Flags().String("repo-url", "", "GitHub repository URL (required)")
	for _, name := range []string{"name", "repo-url"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "flag", name, "error", err)
		}
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	name, _ := cmd.Flags().GetString("name")
	repoURL, _ := cmd.Flags().GetString("repo-url")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	project, err := cliInstance.App.ProjectService.CreateProject(ctx, projectservice.CreateProjectRequest{
		Name:    name,
		RepoURL: repoURL,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(project)
	}

	fmt.Printf("✓ Project '%s' created (ID: %s)\n", project.Name, project.ID)
	fmt.Println("  Analysis has started.")
	return nil
}
