package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const defaultRetryDelay = 50 * time.Millisecond

// withRetry runs fn and repeats it with exponential backoff while the
// classifier reports the returned error as retryable. The error of the last
// attempt is returned unchanged.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	delay := db.retryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	backoff := retry.WithMaxRetries(db.retryAttempts, retry.NewExponential(delay))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).
				Str("func", "*DB.withRetry").
				Int("attempt", attempt).
				Msg("retryable database error")
			return retry.RetryableError(err)
		}

		return err
	})
}
