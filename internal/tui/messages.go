package tui

import (
	"github.com/thenoetrevino/devyntra/internal/models"
	"github.com/thenoetrevino/devyntra/internal/poller"
	authservice "github.com/thenoetrevino/devyntra/internal/services/auth"
)

// sessionLoadedMsg reports the end of the persisted session check
type sessionLoadedMsg struct {
	err error
}

// pollResultMsg carries one project list poll, tagged with the generation
// of the poller that produced it
type pollResultMsg struct {
	generation uint64
	result     poller.Result[[]models.Project]
}

// pollClosedMsg reports that a poller's results channel was closed
type pollClosedMsg struct {
	generation uint64
}

type projectCreatedMsg struct {
	project *models.Project
	err     error
}

type loginDoneMsg struct {
	err error
}

type signupDoneMsg struct {
	email  string
	result *authservice.SignupResult
	err    error
}

type clipboardMsg struct {
	err error
}
