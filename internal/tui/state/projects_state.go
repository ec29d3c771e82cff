package state

import (
	"github.com/thenoetrevino/devyntra/internal/models"
	"github.com/thenoetrevino/devyntra/internal/poller"
)

// ProjectsState holds the dashboard's project list as last reported by the
// poller, plus the cursor. Results from an older poll generation or with an
// older sequence number than the last applied one are rejected.
type ProjectsState struct {
	projects []models.Project
	loaded   bool
	err      string
	selected int

	generation uint64
	gate       poller.Gate
}

// NewProjectsState creates an empty, not yet loaded, project list.
func NewProjectsState() *ProjectsState {
	return &ProjectsState{projects: []models.Project{}}
}

// Reset clears the list for a fresh poll cycle and returns its generation.
func (s *ProjectsState) Reset() uint64 {
	s.generation++
	s.projects = []models.Project{}
	s.loaded = false
	s.err = ""
	s.selected = 0
	s.gate.Reset()
	return s.generation
}

// Generation returns the current poll generation.
func (s *ProjectsState) Generation() uint64 {
	return s.generation
}

// Apply records one poll outcome. errMsg is empty on success. It returns
// false when the result is stale and was ignored.
func (s *ProjectsState) Apply(generation, seq uint64, projects []models.Project, errMsg string) bool {
	if generation != s.generation {
		return false
	}
	if !s.gate.Admit(seq) {
		return false
	}

	s.loaded = true
	if errMsg != "" {
		s.err = errMsg
		return true
	}

	s.err = ""
	if projects == nil {
		projects = []models.Project{}
	}
	s.projects = projects
	s.clampSelection()
	return true
}

// Projects returns the current list.
func (s *ProjectsState) Projects() []models.Project {
	return s.projects
}

// Loaded reports whether any poll has completed in this generation.
func (s *ProjectsState) Loaded() bool {
	return s.loaded
}

// Error returns the message of the last failed poll, empty after a success.
func (s *ProjectsState) Error() string {
	return s.err
}

// Selected returns the cursor index.
func (s *ProjectsState) Selected() int {
	return s.selected
}

// SelectedProject returns the project under the cursor, nil for an empty list.
func (s *ProjectsState) SelectedProject() *models.Project {
	if s.selected < 0 || s.selected >= len(s.projects) {
		return nil
	}
	p := s.projects[s.selected]
	return &p
}

// MoveUp moves the cursor up one project, stopping at the top.
func (s *ProjectsState) MoveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

// MoveDown moves the cursor down one project, stopping at the bottom.
func (s *ProjectsState) MoveDown() {
	if s.selected < len(s.projects)-1 {
		s.selected++
	}
}

func (s *ProjectsState) clampSelection() {
	if s.selected >= len(s.projects) {
		s.selected = max(len(s.projects)-1, 0)
	}
}
