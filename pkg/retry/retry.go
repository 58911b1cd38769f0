package retry

import (
	"context"
	"time"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/pkg/apperr"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 1 * time.Second
)

type config struct {
	maxAttempts int
	baseDelay   time.Duration
}

type Option func(*config)

func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

func WithBaseDelay(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.baseDelay = d
		}
	}
}

// Do runs op up to maxAttempts times with exponential backoff between
// failures. A permanent error (see apperr.Permanent) is returned immediately
// without further attempts or delay. On exhaustion the error of the final
// attempt is returned verbatim. Each call is independent and safe to run
// concurrently with other calls.
func Do[T any](ctx context.Context, op func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	cfg := config{maxAttempts: DefaultMaxAttempts, baseDelay: DefaultBaseDelay}
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	var lastErr error

	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		lastErr = err

		if apperr.Permanent(err) {
			return zero, err
		}
		if attempt == cfg.maxAttempts {
			break
		}

		// baseDelay, 2x, 4x, ...
		delay := cfg.baseDelay << (attempt - 1)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	return zero, lastErr
}
