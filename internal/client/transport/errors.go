package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrUnreachable is returned when no HTTP response could be obtained.
var ErrUnreachable = errors.New("api unreachable")

// StatusError reports a response that did not carry a message: a non-2xx
// status, a 204, or a 2xx without a body.
type StatusError struct {
	Status int
	Header http.Header
	Body   []byte

	op string
}

func (e *StatusError) Error() string {
	op := e.op
	if op == "" {
		op = "request"
	}
	return fmt.Sprintf("%s failed with status: %d", op, e.Status)
}

// UnauthorizedError is a 401. RedirectTarget is the Location header, empty
// when the server sent none.
type UnauthorizedError struct {
	RedirectTarget string
	*StatusError
}

func (e *UnauthorizedError) Error() string {
	if e.RedirectTarget == "" {
		return "unauthorized"
	}
	return "unauthorized, login at " + e.RedirectTarget
}

func (e *UnauthorizedError) Unwrap() error { return e.StatusError }

// RateLimitedError is a 429. RetryAfterSeconds comes from Retry-After and
// defaults to 1.
type RateLimitedError struct {
	RetryAfterSeconds int
	*StatusError
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %ds", e.RetryAfterSeconds)
}

func (e *RateLimitedError) Unwrap() error { return e.StatusError }

func newStatusError(op string, resp *Response) error {
	base := &StatusError{
		Status: resp.Status,
		Header: resp.Header,
		Body:   resp.Body,
		op:     op,
	}
	switch resp.Status {
	case http.StatusUnauthorized:
		return &UnauthorizedError{RedirectTarget: resp.Header.Get("Location"), StatusError: base}
	case http.StatusTooManyRequests:
		return &RateLimitedError{
			RetryAfterSeconds: ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
			StatusError:       base,
		}
	default:
		return base
	}
}

// MaxRetryAfterSeconds is the largest delay ParseRetryAfter reports.
const MaxRetryAfterSeconds = 60

// ParseRetryAfter interprets a Retry-After value given either as
// delta-seconds or as an HTTP date relative to now. Missing or unparsable
// values yield 1. Dates in the past yield 0. Larger delays are clamped to
// MaxRetryAfterSeconds.
func ParseRetryAfter(value string, now time.Time) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 1
	}
	n, err := strconv.Atoi(value)
	if err == nil {
		if n < 0 {
			return 1
		}
		return min(n, MaxRetryAfterSeconds)
	}
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(value, "-") {
			return 1
		}
		return MaxRetryAfterSeconds
	}
	if at, err := http.ParseTime(value); err == nil {
		d := at.Sub(now)
		if d <= 0 {
			return 0
		}
		if d > MaxRetryAfterSeconds*time.Second {
			return MaxRetryAfterSeconds
		}
		return int((d + time.Second - 1) / time.Second)
	}
	return 1
}
