// Package auth signs users in and out against the backend and keeps the
// session store in step
package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/devyntra/internal/api"
	"github.com/thenoetrevino/devyntra/internal/models"
)

// Service defines all authentication operations
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*models.Session, error)
	Signup(ctx context.Context, req SignupRequest) (*SignupResult, error)
	Logout(ctx context.Context) error
	Current() *models.Session
}

// LoginRequest encapsulates credentials
type LoginRequest struct {
	Email    string
	Password string
}

// SignupRequest encapsulates a new account. ConfirmPassword is checked
// locally and never sent.
type SignupRequest struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// SignupResult reports what happened. Session is nil when the backend wants
// the email confirmed first, in which case Message says so.
type SignupResult struct {
	Session   *models.Session
	Message   string
	Workspace string
}

type client interface {
	Login(ctx context.Context, req api.LoginRequest) (*models.Session, error)
	Signup(ctx context.Context, req api.SignupRequest) (*api.SignupResult, error)
}

// sessionStore is the slice of the session manager the service drives
type sessionStore interface {
	Login(ctx context.Context, s *models.Session) error
	Logout(ctx context.Context) error
	Current() *models.Session
}

type service struct {
	client   client
	sessions sessionStore
	logger   *slog.Logger
}

// NewService creates a new auth service
func NewService(c client, sessions sessionStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{client: c, sessions: sessions, logger: logger}
}

// Login authenticates and stores the resulting session
func (s *service) Login(ctx context.Context, req LoginRequest) (*models.Session, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}

	session, err := s.client.Login(ctx, api.LoginRequest{Email: email, Password: req.Password})
	if err != nil {
		s.logger.Warn("login failed", "email", email, "error", err)
		return nil, err
	}
	if err := s.sessions.Login(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Signup creates an account, logging in straight away when the backend
// returns a session
func (s *service) Signup(ctx context.Context, req SignupRequest) (*SignupResult, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}

	res, err := s.client.Signup(ctx, api.SignupRequest{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		FullName: strings.TrimSpace(req.FullName),
	})
	if err != nil {
		s.logger.Warn("signup failed", "email", req.Email, "error", err)
		return nil, err
	}

	result := &SignupResult{Session: res.Session, Message: res.Message, Workspace: res.WorkspaceName}
	if res.Session == nil {
		s.logger.Info("signup awaiting confirmation", "email", req.Email)
		return result, nil
	}
	if err := s.sessions.Login(ctx, res.Session); err != nil {
		return nil, err
	}
	return result, nil
}

// Logout clears the stored session
func (s *service) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

// Current returns the active session, nil when logged out
func (s *service) Current() *models.Session {
	return s.sessions.Current()
}

func validateSignup(req SignupRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(req.Email) == "" {
		return ErrEmailRequired
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}
