package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	retryAttempts  = 3
	retryBaseDelay = 50 * time.Millisecond
)

// withRetry runs fn until it succeeds, fails with an error the classifier
// does not consider retryable, the attempts run out or ctx ends.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	backoff := retry.WithMaxRetries(retryAttempts-1, linearBackoff(retryBaseDelay))

	return retry.Do(ctx, backoff, func(context.Context) error {
		err := fn()
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}

// linearBackoff waits base, 2*base, 3*base and so on.
func linearBackoff(base time.Duration) retry.Backoff {
	var attempt time.Duration
	return retry.BackoffFunc(func() (time.Duration, bool) {
		attempt++
		return base * attempt, false
	})
}
