package project

import "errors"

// Domain errors for project service
var (
	// Validation errors
	ErrNameRequired    = errors.New("project name is required")
	ErrRepoURLRequired = errors.New("repository URL is required")

	// ErrNotLoggedIn is returned before any network call when there is no session
	ErrNotLoggedIn = errors.New("You must be logged in to create a project.")
)
