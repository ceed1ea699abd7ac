package retry

import (
	"context"
	"errors"
	"time"
)

// Policy describes how an external call is retried. The zero value runs the
// call exactly once.
type Policy struct {
	Attempts   int           // total attempts, including the first one
	BaseDelay  time.Duration // delay before the second attempt
	Multiplier float64       // growth factor applied per attempt; <1 means constant
	MaxDelay   time.Duration // cap for a single delay, 0 means uncapped
	Retryable  func(error) bool
}

// Common policies for the collaborators of the assistant.
var (
	// Completion API: two attempts after the first, 2s base.
	AIPolicy = Policy{Attempts: 3, BaseDelay: 2 * time.Second, Multiplier: 2, MaxDelay: 10 * time.Second}
	// Database reads.
	DatabasePolicy = Policy{Attempts: 3, BaseDelay: 500 * time.Millisecond, Multiplier: 2, MaxDelay: 5 * time.Second}
	// Default for anything else.
	DefaultPolicy = Policy{Attempts: 3, BaseDelay: time.Second, Multiplier: 2, MaxDelay: 30 * time.Second}
	// No retries.
	Once = Policy{Attempts: 1}
)

// permanent marks an error that must not be retried.
type permanent struct{ err error }

func (p permanent) Error() string { return p.err.Error() }
func (p permanent) Unwrap() error { return p.err }

// Permanent wraps err so Do returns it immediately without further attempts.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanent{err: err}
}

// Delay returns the wait before attempt n (n starts at 1 for the first retry).
func (p Policy) Delay(n int) time.Duration {
	if n <= 0 || p.BaseDelay <= 0 {
		return 0
	}
	d := float64(p.BaseDelay)
	if p.Multiplier > 1 {
		for i := 1; i < n; i++ {
			d *= p.Multiplier
			if p.MaxDelay > 0 && time.Duration(d) >= p.MaxDelay {
				return p.MaxDelay
			}
		}
	}
	if p.MaxDelay > 0 && time.Duration(d) > p.MaxDelay {
		return p.MaxDelay
	}
	return time.Duration(d)
}

// Do runs fn until it succeeds, returns a Permanent error, the policy's
// attempts are exhausted, or ctx is done. The last error is returned.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(p.Delay(attempt)):
			case <-ctx.Done():
				if lastErr != nil {
					return lastErr
				}
				return ctx.Err()
			}
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}

		var perm permanent
		if errors.As(err, &perm) {
			return perm.err
		}
		lastErr = err

		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
	}

	return lastErr
}

// DoValue is Do for calls that return a value.
func DoValue[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := p.Do(ctx, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}
