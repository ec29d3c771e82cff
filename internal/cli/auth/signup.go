package auth

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/devyntra/internal/cli"
	authservice "github.com/thenoetrevino/devyntra/internal/services/auth"
)

// SignupCmd returns the signup command
func SignupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Long: `Create a Devyntra account. When the backend returns a session you are
logged in right away; when it asks for email confirmation, confirm and then
run devyntra login.

Examples:
  devyntra signup --name="Ada Lovelace" --email=ada@example.com --password=secret
`,
		RunE: runSignup,
	}

	cmd.Flags().String("name", "", "Full name (required)")
	cmd.Flags().String("email", "", "Account email (required)")
	cmd.Flags().String("password", "", "Account password (required)")
	for _, name := range []string{"name", "email", "password"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "flag", name, "error", err)
		}
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSignup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	name, _ := cmd.Flags().GetString("name")
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

	result, err := cliInstance.App.AuthService.Signup(ctx, authservice.SignupRequest{
		FullName:        name,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON {
		data := map[string]any{
			"logged_in": result.Session != nil,
			"message":   result.Message,
			"workspace": result.Workspace,
		}
		return formatter.Success(data)
	}

	if result.Session == nil {
		if !formatter.Quiet {
			fmt.Println(result.Message)
		}
		return nil
	}

	if formatter.Quiet {
		fmt.Println(result.Session.User.ID)
		return nil
	}

	fmt.Printf("✓ Account created, logged in as %s\n", result.Session.User.Email)
	if result.Workspace != "" {
		fmt.Printf("  Workspace: %s\n", result.Workspace)
	}
	return nil
}
