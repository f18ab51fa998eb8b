package config

// Config is the umbrella configuration object returned by Initialize()
// and passed into constructors throughout the application.
type Config struct {
	configPath string

	// Pipeline-wide defaults (confidence gate, duplicate window, jitter).
	Defaults *Defaults

	// Bus dispatcher and worker pool tuning.
	Queue *QueueConfig

	// Topic name overrides.
	Topics *Topics

	// Ordered service-center registry used by the scheduling stage.
	Centers *CenterRegistry

	// Operator notification settings (human-review alerts).
	Notifications *NotificationsConfig

	// Retention and sweep behavior for short-lived records.
	Retention *RetentionConfig
}

// ConfigPath returns the YAML file path this configuration was loaded from.
// Empty when running on built-in defaults.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	ServiceCenters int
	Topics         int
}

// Stats returns configuration statistics for logging.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Centers != nil {
		s.ServiceCenters = c.Centers.Len()
	}
	if c.Topics != nil {
		s.Topics = len(c.Topics.All())
	}
	return s
}
