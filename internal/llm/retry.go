package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryProvider repeats a request after transient failures (Unavailable,
// RateLimited) with capped exponential backoff. Truncated and malformed
// answers would fail the same way again and are returned at once.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
	sleep func(context.Context, time.Duration) error
}

// WithRetry wraps p. Attempts are bounded by cfg.MaxAttempts and by ctx.
func WithRetry(p Provider, cfg RetryConfig) *RetryProvider {
	return &RetryProvider{inner: p, cfg: cfg, sleep: sleepCtx}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.cfg.MaxAttempts, 1)
	for attempt := 0; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		var e *Error
		if attempt == attempts-1 || ctx.Err() != nil || !errors.As(err, &e) || !e.Transient() {
			return nil, err
		}
		if serr := r.sleep(ctx, r.delay(attempt, e)); serr != nil {
			return nil, serr
		}
	}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

// delay is RetryAfter when the server asked for one, else InitialWait grown
// by Multiplier per attempt, capped at MaxWait, with ±20% jitter.
func (r *RetryProvider) delay(attempt int, e *Error) time.Duration {
	if e.RetryAfter > 0 {
		return e.RetryAfter
	}
	wait := float64(r.cfg.InitialWait)
	for range attempt {
		wait *= r.cfg.Multiplier
	}
	wait = min(wait, float64(r.cfg.MaxWait))
	return time.Duration(wait * (0.8 + 0.4*rand.Float64()))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
