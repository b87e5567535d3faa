package retry

import (
	"context"
	"time"
)

// Policy describes how an operation is retried. The zero value means
// a single attempt with no retries.
type Policy struct {
	MaxAttempts int
	Backoff     time.Duration
	Multiplier  float64
	// Retryable decides whether an error is worth retrying.
	// A nil predicate retries every error.
	Retryable func(error) bool
}

// DefaultPolicy retries transient failures three times with a doubling backoff.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		Backoff:     500 * time.Millisecond,
		Multiplier:  2.0,
	}
}

// Do runs fn until it succeeds, the policy is exhausted, or ctx is done.
// The last error is returned when all attempts fail.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	backoff := p.Backoff
	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		if p.Multiplier > 1 {
			backoff = time.Duration(float64(backoff) * p.Multiplier)
		}
	}

	return err
}
