package llm

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

// Retry wraps a Client with exponential backoff on rate-limit errors.
// Schedule: initial 2s, doubling per attempt, additive 0-1s jitter, at most
// 5 attempts. Non-rate-limit errors surface immediately.
type Retry struct {
	Client      Client
	Initial     time.Duration
	MaxAttempts int
	JitterMax   time.Duration

	// sleep is replaceable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRetry wraps client with the default backoff schedule.
func NewRetry(client Client) *Retry {
	return &Retry{
		Client:      client,
		Initial:     2 * time.Second,
		MaxAttempts: 5,
		JitterMax:   1 * time.Second,
		sleep:       sleepCtx,
	}
}

// Generate calls the underlying client, backing off on rate limits. On
// exhaustion the last rate-limit error is returned so the bus redelivers.
func (r *Retry) Generate(ctx context.Context, prompt string) (string, error) {
	sleep := r.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	delay := r.Initial
	var lastErr error
	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		text, err := r.Client.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		if !IsRateLimit(err) {
			return "", err
		}
		lastErr = err

		if attempt == r.MaxAttempts {
			break
		}

		wait := delay
		if r.JitterMax > 0 {
			wait += time.Duration(rand.Int64N(int64(r.JitterMax)))
		}
		slog.Warn("Model rate limited, backing off",
			"attempt", attempt, "wait", wait)
		if err := sleep(ctx, wait); err != nil {
			return "", err
		}
		delay *= 2
	}
	return "", fmt.Errorf("model backend rate limit not cleared after %d attempts: %w", r.MaxAttempts, lastErr)
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
