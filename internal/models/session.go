package models

// User is the identity the backend handed out at login
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// Session is the client-held proof of authentication.
// The access token is opaque and trusted until it is replaced.
type Session struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Identity returns a key that changes whenever a different session is in effect.
// Returns "" for a nil session.
func (s *Session) Identity() string {
	if s == nil {
		return ""
	}
	return s.User.ID + ":" + s.AccessToken
}
