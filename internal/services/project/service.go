package project

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/devyntra/internal/api"
	"github.com/thenoetrevino/devyntra/internal/models"
)

// Service defines all project-related operations
type Service interface {
	// Read operations
	ListProjects(ctx context.Context) ([]models.Project, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name    string
	RepoURL string
}

// client defines the backend calls needed by the project service
// This interface is private to the service layer
type client interface {
	ListProjects(ctx context.Context, token string) ([]models.Project, error)
	CreateProject(ctx context.Context, token string, req api.CreateProjectRequest) (*models.Project, error)
}

// sessionSource yields the active session, nil when logged out
type sessionSource interface {
	Current() *models.Session
}

// service implements Service interface with a private client
type service struct {
	client   client
	sessions sessionSource
	logger   *slog.Logger
}

// NewService creates a new project service
func NewService(c client, sessions sessionSource, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		client:   c,
		sessions: sessions,
		logger:   logger,
	}
}

// ListProjects fetches the projects visible to the current session
func (s *service) ListProjects(ctx context.Context) ([]models.Project, error) {
	current := s.sessions.Current()
	if current == nil {
		return nil, ErrNotLoggedIn
	}
	return s.client.ListProjects(ctx, current.AccessToken)
}

// CreateProject validates the request and registers the repository
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.RepoURL = strings.TrimSpace(req.RepoURL)
	if err := validateCreateProject(req); err != nil {
		return nil, err
	}

	current := s.sessions.Current()
	if current == nil {
		return nil, ErrNotLoggedIn
	}

	project, err := s.client.CreateProject(ctx, current.AccessToken, api.CreateProjectRequest{
		Name:    req.Name,
		RepoURL: req.RepoURL,
	})
	if err != nil {
		s.logger.Warn("project creation failed", "name", req.Name, "error", err)
		return nil, err
	}

	s.logger.Info("project created", "id", project.ID, "name", project.Name)
	return project, nil
}

// validateCreateProject checks required fields only; the URL format is the backend's concern
func validateCreateProject(req CreateProjectRequest) error {
	if req.Name == "" {
		return ErrNameRequired
	}
	if req.RepoURL == "" {
		return ErrRepoURLRequired
	}
	return nil
}
