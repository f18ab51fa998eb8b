package config

import "time"

// RetentionConfig controls the sweeper for short-lived records.
type RetentionConfig struct {
	// CallContextTTL is the maximum age of call-context rows. The webhook
	// only needs them for the duration of a call.
	CallContextTTL time.Duration `yaml:"call_context_ttl"`

	// BusMessageRetention is how long delivered and failed bus messages
	// are kept for inspection before deletion.
	BusMessageRetention time.Duration `yaml:"bus_message_retention"`

	// SweepInterval is how often the sweeper runs. Zero disables it.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		CallContextTTL:      24 * time.Hour,
		BusMessageRetention: 7 * 24 * time.Hour,
		SweepInterval:       1 * time.Hour,
	}
}
