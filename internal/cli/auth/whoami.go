package auth

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/devyntra/internal/cli"
	projectservice "github.com/thenoetrevino/devyntra/internal/services/project"
)

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		RunE:  runWhoami,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	session := cliInstance.App.AuthService.Current()
	if session == nil {
		return cli.Fail(formatter, projectservice.ErrNotLoggedIn)
	}

	view := sessionView{UserID: session.User.ID, Email: session.User.Email, FullName: session.User.FullName}
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(view)
	}

	fmt.Println(session.User.Email)
	if session.User.FullName != "" {
		fmt.Printf("  %s\n", session.User.FullName)
	}
	return nil
}
