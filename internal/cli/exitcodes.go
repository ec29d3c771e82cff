package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: storage errors, network errors, unexpected backend failures.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a backend response that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty required fields, mismatched passwords, or a 4xx
	// rejection of the submitted data by the backend.
	ExitValidation = 5

	// ExitUnauthenticated indicates no session or a rejected token.
	// Use for: commands that need a login, failed logins.
	ExitUnauthenticated = 6
)
