// Package llm is the model-backend boundary: a prompt goes in, text comes
// out. The backend's 429 is the only retryable failure class; everything
// else aborts the caller's invocation.
package llm

import (
	"context"
	"os"
	"time"
)

// Client is the minimal model-backend contract. Implementations must return
// a *RateLimitError for rate-limit failures so callers can back off.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds model-backend settings loaded from the environment.
type Config struct {
	Endpoint string
	Model    string
	APIKey   string
	Timeout  time.Duration
}

// LoadConfigFromEnv reads MODEL_ENDPOINT, MODEL_NAME, and MODEL_API_KEY.
func LoadConfigFromEnv() Config {
	cfg := Config{
		Endpoint: os.Getenv("MODEL_ENDPOINT"),
		Model:    os.Getenv("MODEL_NAME"),
		APIKey:   os.Getenv("MODEL_API_KEY"),
		Timeout:  60 * time.Second,
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	return cfg
}
