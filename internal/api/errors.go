package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Generic messages shown when the backend gives no detail
const (
	MsgFetchProjectsFailed = "Failed to fetch projects"
	MsgCreateProjectFailed = "Failed to create project"
	MsgLoginFailed         = "Login failed"
	MsgSignupFailed        = "Signup failed"
)

// ErrMissingToken is returned when an auth response carries no access token
var ErrMissingToken = errors.New("auth response did not include an access token")

// Error is a non-success HTTP response from the backend
type Error struct {
	StatusCode int
	// Detail is the backend's explanation, empty when none was given or when
	// the operation deliberately reports a generic message
	Detail   string
	fallback string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message()
}

// Message is the text to show the user: the detail verbatim, else the generic message
func (e *Error) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.fallback != "" {
		return e.fallback
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsUnauthorized reports whether the backend rejected the bearer token
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// validationIssue is one entry of a FastAPI 422 detail list
type validationIssue struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// parseDetail extracts the "detail" field from an error body. FastAPI sends a
// string for HTTPException and a list of issues for request validation errors.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var issues []validationIssue
	if err := json.Unmarshal(envelope.Detail, &issues); err == nil {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			if issue.Msg == "" {
				continue
			}
			if field := issueField(issue.Loc); field != "" {
				msgs = append(msgs, field+": "+issue.Msg)
			} else {
				msgs = append(msgs, issue.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}

// issueField returns the last string element of a FastAPI location path
func issueField(loc []any) string {
	for i := len(loc) - 1; i >= 0; i-- {
		if s, ok := loc[i].(string); ok && s != "body" {
			return s
		}
	}
	return ""
}
