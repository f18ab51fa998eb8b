package config

import "time"

// QueueConfig contains bus dispatcher and worker pool configuration.
type QueueConfig struct {
	// WorkerCount is the number of dispatcher goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for scanning claimable messages.
	// LISTEN/NOTIFY wakes workers earlier; polling backstops missed
	// notifications.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// MaxAttempts is how many deliveries a message gets before it is
	// marked failed.
	MaxAttempts int `yaml:"max_attempts"`

	// HandlerTimeout is the wall-clock budget for one handler invocation.
	HandlerTimeout time.Duration `yaml:"handler_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// handlers during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MaxAttempts:             8,
		HandlerTimeout:          2 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}
