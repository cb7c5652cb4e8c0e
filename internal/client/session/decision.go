// Package session decides whether a session token grants access to Chroma.
//
// Validator.Validate asks the API once and maps the answer to one of the
// AccessDecision variants. It never loops: retrying after a rate limit is
// the caller's choice, for which ValidateWithRetry offers a bounded helper.
package session

import "fmt"

// Role is the access level of a granted session.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole accepts the string form of a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), true
	default:
		return "", false
	}
}

// AccessDecision is one of Granted, Denied, RateLimited, Unreachable or
// Unknown.
type AccessDecision interface {
	isAccessDecision()
	fmt.Stringer
}

// Granted means the session is valid.
type Granted struct {
	Role Role
}

// Denied means the session is missing or invalid. RedirectTarget is where
// the user should log in, empty when the API did not say.
type Denied struct {
	RedirectTarget string
}

// RateLimited means the API asked to retry after the given delay.
type RateLimited struct {
	RetryAfterSeconds int
}

// Unreachable means no response was obtained.
type Unreachable struct {
	Err error
}

// Unknown covers every other outcome. Access must not be assumed.
type Unknown struct {
	Status int
	Err    error
}

func (Granted) isAccessDecision()     {}
func (Denied) isAccessDecision()      {}
func (RateLimited) isAccessDecision() {}
func (Unreachable) isAccessDecision() {}
func (Unknown) isAccessDecision()     {}

func (d Granted) String() string { return "granted (" + string(d.Role) + ")" }

func (d Denied) String() string {
	if d.RedirectTarget == "" {
		return "denied"
	}
	return "denied, login at " + d.RedirectTarget
}

func (d RateLimited) String() string {
	return fmt.Sprintf("rate limited, retry after %ds", d.RetryAfterSeconds)
}

func (d Unreachable) String() string { return fmt.Sprintf("unreachable: %v", d.Err) }

func (d Unknown) String() string {
	if d.Status == 0 {
		return fmt.Sprintf("unknown: %v", d.Err)
	}
	return fmt.Sprintf("unknown: status %d", d.Status)
}
