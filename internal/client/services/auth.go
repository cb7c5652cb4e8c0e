// Package services contains the application services behind the Chroma CLI:
// session login and logout, and album, photo and user operations.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/svsticky/chroma/internal/client/session"
	"github.com/svsticky/chroma/internal/common"
)

var (
	ErrEmptySession     = errors.New("empty session id")
	ErrLoginDenied      = errors.New("session denied")
	ErrLoginRateLimited = errors.New("rate limited")
	ErrLoginUnreachable = errors.New("server unreachable")
	ErrLoginUnknown     = errors.New("session could not be validated")
)

// LoginError carries the decision that refused a login. It matches one of
// the ErrLogin* sentinels with errors.Is.
type LoginError struct {
	Decision session.AccessDecision
}

func (e *LoginError) Error() string {
	return "login failed: " + e.Decision.String()
}

func (e *LoginError) Unwrap() error {
	switch d := e.Decision.(type) {
	case session.Denied:
		return ErrLoginDenied
	case session.RateLimited:
		return ErrLoginRateLimited
	case session.Unreachable:
		return fmt.Errorf("%w: %w", ErrLoginUnreachable, d.Err)
	default:
		return ErrLoginUnknown
	}
}

// Status describes the local session and what the API thinks of it.
// Decision is nil when there is no stored session.
type Status struct {
	LoggedIn   bool
	StoredRole session.Role
	Decision   session.AccessDecision
}

// AuthService manages the CLI session.
//
//   - Login validates a Koala session id once and stores it on success.
//   - Logout forgets the stored session.
//   - Status re-validates the stored session, retrying on rate limits.
type AuthService interface {
	Login(ctx context.Context, sessionID string) (session.Role, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (Status, error)
}

type authService struct {
	checker    session.Checker
	store      *TokenStore
	maxRetries int
}

func NewAuthService(checker session.Checker, store *TokenStore, maxRetries int) AuthService {
	return &authService{checker: checker, store: store, maxRetries: maxRetries}
}

func (a *authService) Login(ctx context.Context, sessionID string) (session.Role, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", ErrEmptySession
	}

	decision := a.checker.Validate(ctx, sessionID)
	granted, ok := decision.(session.Granted)
	if !ok {
		return "", &LoginError{Decision: decision}
	}

	if err := a.store.Save(ctx, sessionID, granted.Role); err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}
	return granted.Role, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) Status(ctx context.Context) (Status, error) {
	token, role, err := a.store.Load(ctx)
	if err != nil {
		return Status{}, err
	}
	if token == "" {
		return Status{}, common.ErrNotLoggedIn
	}

	decision := session.ValidateWithRetry(ctx, a.checker, token, a.maxRetries, session.DefaultMaxRetryWait)
	return Status{LoggedIn: true, StoredRole: role, Decision: decision}, nil
}
