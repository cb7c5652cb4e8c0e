package common

import "errors"

var (
	// ErrNotLoggedIn is returned when no session token is stored locally.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrInvalidToken is returned for a role cookie that fails verification.
	ErrInvalidToken = errors.New("invalid token")
)
