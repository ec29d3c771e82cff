package auth

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/devyntra/internal/cli"
)

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the locally stored session",
		RunE:  runLogout,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
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

	wasLoggedIn := cliInstance.App.AuthService.Current() != nil
	if err := cliInstance.App.AuthService.Logout(ctx); err != nil {
		return cli.Fail(formatter, err)
	}

	switch {
	case formatter.JSON:
		return formatter.Success(map[string]any{"was_logged_in": wasLoggedIn})
	case formatter.Quiet:
		return nil
	case wasLoggedIn:
		fmt.Println("✓ Logged out")
	default:
		fmt.Println("Not logged in")
	}
	return nil
}
