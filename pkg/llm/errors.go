package llm

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError signals a 429 from the model backend. It is the only error
// class the retry loop acts on.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("model backend rate limited (retry after %s)", e.RetryAfter)
	}
	return "model backend rate limited"
}

// IsRateLimit reports whether err is (or wraps) a RateLimitError.
func IsRateLimit(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}
