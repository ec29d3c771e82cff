package auth

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/devyntra/internal/cli"
	authservice "github.com/thenoetrevino/devyntra/internal/services/auth"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session locally",
		Long: `Log in to the Devyntra API. The session is stored locally and reused by
the dashboard and every other command until you log out.

Examples:
  devyntra login --email=dev@example.com --password=secret
  devyntra login --email=dev@example.com --password=secret --json
`,
		RunE: runLogin,
	}

	cmd.Flags().String("email", "", "Account email (required)")
	cmd.Flags().String("password", "", "Account password (required)")
	for _, name := range []string{"email", "password"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "flag", name, "error", err)
		}
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	session, err := cliInstance.App.AuthService.Login(ctx, authservice.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	view := sessionView{UserID: session.User.ID, Email: session.User.Email, FullName: session.User.FullName}
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(view)
	}

	fmt.Printf("✓ Logged in as %s\n", session.User.Email)
	return nil
}
