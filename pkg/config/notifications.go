package config

// NotificationsConfig holds operator notification settings. Human-review
// creation posts to the configured Slack channel when enabled.
type NotificationsConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// IsEnabled resolves the tri-state Enabled flag. A channel with no explicit
// flag counts as enabled.
func (n *NotificationsConfig) IsEnabled() bool {
	if n == nil {
		return false
	}
	if n.Enabled != nil {
		return *n.Enabled
	}
	return n.Channel != ""
}

// DefaultNotificationsConfig returns the built-in notification defaults:
// disabled until a channel is configured.
func DefaultNotificationsConfig() *NotificationsConfig {
	return &NotificationsConfig{
		TokenEnv: "SLACK_BOT_TOKEN",
	}
}
