// Package auth holds the cli commands that manage the local session
//
// e.g., devyntra login ...
package auth

import (
	"github.com/spf13/cobra"
)

// Commands returns the top level session commands
func Commands() []*cobra.Command {
	return []*cobra.Command{
		LoginCmd(),
		SignupCmd(),
		LogoutCmd(),
		WhoamiCmd(),
	}
}

// sessionView is the JSON shape of a session; the token is never printed
type sessionView struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

func (s sessionView) GetID() string {
	return s.UserID
}
