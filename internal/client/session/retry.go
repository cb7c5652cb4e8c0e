package session

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

// retryUnit is the length of one Retry-After second.
var retryUnit = time.Second

var errRateLimited = errors.New("rate limited")

// DefaultMaxRetryWait bounds a single wait when no limit is given.
const DefaultMaxRetryWait = 10 * time.Second

// ValidateWithRetry calls Validate and, while the answer is RateLimited,
// waits the advertised delay and asks again, at most maxRetries more times.
// A delay longer than maxWait (DefaultMaxRetryWait when maxWait <= 0) is not
// waited for. The last decision is returned, which is RateLimited when
// retries ran out, the delay was too long, or ctx ended while waiting.
func ValidateWithRetry(ctx context.Context, c Checker, token string, maxRetries int, maxWait time.Duration) AccessDecision {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxRetryWait
	}
	limit := int(maxWait / time.Second)

	var decision AccessDecision
	backoff := retry.BackoffFunc(func() (time.Duration, bool) {
		limited, ok := decision.(RateLimited)
		if !ok || limited.RetryAfterSeconds < 0 || limited.RetryAfterSeconds > limit {
			return 0, true
		}
		return time.Duration(limited.RetryAfterSeconds) * retryUnit, false
	})

	err := retry.Do(ctx, retry.WithMaxRetries(uint64(maxRetries), backoff), func(ctx context.Context) error {
		decision = c.Validate(ctx, token)
		if _, ok := decision.(RateLimited); ok {
			return retry.RetryableError(errRateLimited)
		}
		return nil
	})
	if decision == nil {
		return Unknown{Err: err}
	}
	return decision
}
