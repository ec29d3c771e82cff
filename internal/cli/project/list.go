package project

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/devyntra/internal/cli"
	"github.com/thenoetrevino/devyntra/internal/cli/styles"
	"github.com/thenoetrevino/devyntra/internal/models"
	"github.com/thenoetrevino/devyntra/internal/poller"
	projectservice "github.com/thenoetrevino/devyntra/internal/services/project"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your projects",
		Long: `List the projects of the logged in user with their analysis status.

Examples:
  # Human-readable list
  devyntra project list

  # Keep refreshing until interrupted
  devyntra project list --watch

  # One JSON document per refresh
  devyntra project list --watch --json
`,
		RunE: runList,
	}

	cmd.Flags().Bool("watch", false, "Refresh on an interval until interrupted")
	cmd.Flags().Duration("interval", poller.DefaultInterval, "Refresh interval for --watch")
	cmd.Flags().Int("count", 0, "Stop --watch after this many refreshes (0 = until interrupted)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	watch, _ := cmd.Flags().GetBool("watch")
	interval, _ := cmd.Flags().GetDuration("interval")
	count, _ := cmd.Flags().GetInt("count")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	svc := cliInstance.App.ProjectService
	if !watch {
		projects, err := svc.ListProjects(ctx)
		if err != nil {
			return cli.Fail(formatter, err)
		}
		return printProjects(formatter, projects, time.Time{})
	}

	if cliInstance.App.AuthService.Current() == nil {
		return cli.Fail(formatter, projectservice.ErrNotLoggedIn)
	}
	if interval <= 0 {
		return cli.Fail(formatter, &cli.ExitError{Code: cli.ExitUsage, Err: fmt.Errorf("--interval must be positive")})
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watchProjects(ctx, formatter, svc.ListProjects, interval, count)
}

// watchProjects prints every poll that is newer than the last one printed.
// A failed poll is reported and the next tick tries again.
func watchProjects(
	ctx context.Context,
	formatter *cli.OutputFormatter,
	fetch poller.FetchFunc[[]models.Project],
	interval time.Duration,
	count int,
) error {
	p := poller.New(fetch, poller.WithInterval(interval), poller.WithLogger(slog.Default()))
	if err := p.Start(ctx); err != nil {
		return cli.Fail(formatter, err)
	}
	defer p.Stop()

	var gate poller.Gate
	printed := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case r, ok := <-p.Results():
			if !ok {
				return nil
			}
			if !gate.Admit(r.Seq) {
				continue
			}

			if r.Err != nil {
				_ = cli.Fail(formatter, r.Err)
			} else if err := printProjects(formatter, r.Value, time.Now()); err != nil {
				return err
			}

			printed++
			if count > 0 && printed >= count {
				return nil
			}
		}
	}
}

// printProjects writes one listing. A non-zero at adds a timestamp header
// in human mode.
func printProjects(formatter *cli.OutputFormatter, projects []models.Project, at time.Time) error {
	if formatter.Quiet {
		for _, p := range projects {
			fmt.Println(p.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONLine(map[string]any{
			"success":  true,
			"projects": projects,
		})
	}

	if !at.IsZero() {
		fmt.Println(styles.SubtitleStyle.Render("-- " + at.Format("15:04:05") + " --"))
	}
	if len(projects) == 0 {
		fmt.Println("You haven't created any projects yet.")
		return nil
	}

	fmt.Printf("Found %d projects:\n\n", len(projects))
	for _, p := range projects {
		fmt.Print(styles.RenderProject(p))
	}
	return nil
}
