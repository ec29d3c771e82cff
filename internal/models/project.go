package models

import "strings"

// Project represents a repository registered with the Devyntra backend.
// Projects are owned by the backend; the client only reads them and creates new ones.
type Project struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	RepoURL        string  `json:"repo_url"`
	Status         string  `json:"status"`
	Language       *string `json:"language,omitempty"`
	Description    *string `json:"description,omitempty"`
	WorkspaceID    string  `json:"workspace_id,omitempty"`
	DockerfilePath *string `json:"dockerfile_path,omitempty"`
}

// GetID returns the project ID (used by quiet CLI output)
func (p Project) GetID() string {
	return p.ID
}

// LanguageOrEmpty returns the detected language or "" if analysis has not reported one
func (p Project) LanguageOrEmpty() string {
	if p.Language == nil {
		return ""
	}
	return *p.Language
}

// CanDeploy reports whether the deploy control should be offered for this project
func (p Project) CanDeploy() bool {
	return p.Status == StatusReadyToDeploy
}

// StatusLabel returns the human readable status, underscores replaced by spaces
func (p Project) StatusLabel() string {
	return strings.ReplaceAll(p.Status, "_", " ")
}
