package api

import "github.com/thenoetrevino/devyntra/internal/models"

// CreateProjectRequest is the body of POST /projects
type CreateProjectRequest struct {
	Name    string `json:"name"`
	RepoURL string `json:"repo_url"`
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /signup
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// SignupResult is what a signup produced. Session is nil when the backend
// requires email confirmation first; Message then explains what to do.
type SignupResult struct {
	Session       *models.Session
	Message       string
	WorkspaceName string
}

// authUser accepts both the flattened user shape and the auth provider's
// shape, which keeps the display name under user_metadata.
type authUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

func (u *authUser) toModel() models.User {
	if u == nil {
		return models.User{}
	}
	name := u.FullName
	if name == "" {
		name = u.UserMetadata.FullName
	}
	return models.User{ID: u.ID, Email: u.Email, FullName: name}
}

type authSession struct {
	AccessToken string    `json:"access_token"`
	User        *authUser `json:"user"`
}

// authResponse covers both a flat {access_token, user} body and a nested
// {user, session: {access_token, user}} body
type authResponse struct {
	AccessToken string       `json:"access_token"`
	User        *authUser    `json:"user"`
	Session     *authSession `json:"session"`
	Message     string       `json:"message"`
	Workspace   *struct {
		Name string `json:"name"`
	} `json:"workspace"`
}

// toSession builds the client session, or ErrMissingToken when there is no token
func (r *authResponse) toSession() (*models.Session, error) {
	token := r.AccessToken
	user := r.User
	if r.Session != nil {
		if token == "" {
			token = r.Session.AccessToken
		}
		if user == nil {
			user = r.Session.User
		}
	}
	if token == "" {
		return nil, ErrMissingToken
	}
	return &models.Session{AccessToken: token, User: user.toModel()}, nil
}
