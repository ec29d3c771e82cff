// Package api is the typed client for the Devyntra backend's REST surface
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/devyntra/internal/models"
)

// RequestIDHeader carries a per-request uuid so client and server logs line up
const RequestIDHeader = "X-Request-ID"

// DefaultTimeout bounds a single request when no HTTP client is supplied
const DefaultTimeout = 30 * time.Second

// Client talks to the backend. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// Option is a functional option for configuring a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger for the client
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the backend rooted at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("api base URL cannot be empty")
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base URL %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend root the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListProjects fetches the caller's projects. Any non-success response is
// reported with the generic fetch message.
func (c *Client) ListProjects(ctx context.Context, token string) ([]models.Project, error) {
	resp, body, err := c.do(ctx, http.MethodGet, "/projects", token, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &Error{StatusCode: resp.StatusCode, fallback: MsgFetchProjectsFailed}
	}

	projects := []models.Project{}
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

// CreateProject registers a repository. A non-success response surfaces the
// backend's detail verbatim when present.
func (c *Client) CreateProject(ctx context.Context, token string, req CreateProjectRequest) (*models.Project, error) {
	resp, body, err := c.do(ctx, http.MethodPost, "/projects", token, req)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &Error{StatusCode: resp.StatusCode, Detail: parseDetail(body), fallback: MsgCreateProjectFailed}
	}

	var project models.Project
	if err := json.Unmarshal(body, &project); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}
	return &project, nil
}

// Login exchanges credentials for a session
func (c *Client) Login(ctx context.Context, req LoginRequest) (*models.Session, error) {
	resp, body, err := c.do(ctx, http.MethodPost, "/login", "", req)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &Error{StatusCode: resp.StatusCode, Detail: parseDetail(body), fallback: MsgLoginFailed}
	}

	var auth authResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	return auth.toSession()
}

// Signup creates an account. The result has no session when the backend
// wants the address confirmed first.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*SignupResult, error) {
	resp, body, err := c.do(ctx, http.MethodPost, "/signup", "", req)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &Error{StatusCode: resp.StatusCode, Detail: parseDetail(body), fallback: MsgSignupFailed}
	}

	var auth authResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		return nil, fmt.Errorf("failed to decode signup response: %w", err)
	}

	result := &SignupResult{Message: auth.Message}
	if auth.Workspace != nil {
		result.WorkspaceName = auth.Workspace.Name
	}
	session, err := auth.toSession()
	if err == nil {
		result.Session = session
	} else if !errors.Is(err, ErrMissingToken) {
		return nil, err
	}
	return result, nil
}

// do sends one request and reads the whole body
func (c *Client) do(ctx context.Context, method, path, token string, payload any) (*http.Response, []byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)
	return resp, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
