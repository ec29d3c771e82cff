package session

import "errors"

var (
	// ErrNoSessionProvider is returned when a session accessor runs outside the
	// scope established by NewContext. It signals a wiring bug, not a logged out user.
	ErrNoSessionProvider = errors.New("session accessor used outside of a session provider")

	// ErrNilSession is returned by Login when handed no session at all
	ErrNilSession = errors.New("cannot log in with a nil session")
)
