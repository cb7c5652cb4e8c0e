package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/svsticky/chroma/internal/client/transport"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, transport.ErrUnreachable) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var se *transport.StatusError
	if !errors.As(err, &se) {
		return err
	}
	switch se.Status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrForbidden, err)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	default:
		return err
	}
}

func isNotFound(err error) bool {
	var se *transport.StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}
