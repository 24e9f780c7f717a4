package session

import "errors"

// Domain errors for session operations.
var (
	ErrNotLoggedIn = errors.New("not logged in")
)
