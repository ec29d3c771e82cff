package cli

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/devyntra/internal/api"
	authservice "github.com/thenoetrevino/devyntra/internal/services/auth"
	projectservice "github.com/thenoetrevino/devyntra/internal/services/project"
)

// ExitError carries the exit code a failed command should end the process with
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneral
}

// classification is how an error is reported and which code it exits with
type classification struct {
	code       string
	exit       int
	suggestion string
}

func classify(err error) classification {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return classification{"USAGE_ERROR", exitErr.Code, ""}
	}

	switch {
	case errors.Is(err, projectservice.ErrNotLoggedIn):
		return classification{"NOT_LOGGED_IN", ExitUnauthenticated, "Log in with: devyntra login --email <email> --password <password>"}
	case errors.Is(err, projectservice.ErrNameRequired),
		errors.Is(err, projectservice.ErrRepoURLRequired),
		errors.Is(err, authservice.ErrEmailRequired),
		errors.Is(err, authservice.ErrPasswordRequired),
		errors.Is(err, authservice.ErrNameRequired),
		errors.Is(err, authservice.ErrPasswordMismatch):
		return classification{"VALIDATION_ERROR", ExitValidation, ""}
	case errors.Is(err, api.ErrMissingToken):
		return classification{"INVALID_RESPONSE", ExitDataErr, ""}
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsUnauthorized():
			return classification{"UNAUTHORIZED", ExitUnauthenticated, "Your session may have expired. Log in again."}
		case apiErr.StatusCode == http.StatusNotFound:
			return classification{"NOT_FOUND", ExitNotFound, ""}
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			return classification{"REJECTED", ExitValidation, ""}
		default:
			return classification{"BACKEND_ERROR", ExitGeneral, "Check that the API is reachable at the configured api_url."}
		}
	}
	return classification{"ERROR", ExitGeneral, ""}
}

// Fail reports err through the formatter and returns it wrapped with its
// exit code, for a RunE to return
func Fail(f *OutputFormatter, err error) error {
	c := classify(err)
	message := err.Error()
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		message = apiErr.Message()
	}

	if fmtErr := f.ErrorWithSuggestion(c.code, message, c.suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ExitError{Code: c.exit, Err: err}
}
