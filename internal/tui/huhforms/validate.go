package huhforms

import (
	"errors"
	"strings"
)

// required returns a huh validator rejecting blank input with message.
func required(message string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	}
}
