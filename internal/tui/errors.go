package tui

import (
	"errors"

	"github.com/thenoetrevino/devyntra/internal/api"
)

// errorMessage is the text shown for err: the backend message for API
// errors, the error text otherwise
func errorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return err.Error()
}
