package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// FleetYAMLConfig represents the complete fleetsense.yaml file structure.
type FleetYAMLConfig struct {
	Defaults       *Defaults              `yaml:"defaults"`
	Queue          *QueueConfig           `yaml:"queue"`
	Topics         *Topics                `yaml:"topics"`
	ServiceCenters []*ServiceCenterConfig `yaml:"service_centers"`
	Notifications  *NotificationsConfig   `yaml:"notifications"`
	Retention      *RetentionConfig       `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// configPath may be empty, in which case the built-in defaults apply. A
// missing file at an explicitly configured path is an error; everything in
// the file is optional and merged over the defaults.
func Initialize(ctx context.Context, configPath string) (*Config, error) {
	log := slog.With("config_path", configPath)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"service_centers", stats.ServiceCenters,
		"topics", stats.Topics)

	return cfg, nil
}

func load(_ context.Context, configPath string) (*Config, error) {
	var fileCfg FleetYAMLConfig
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, NewLoadError(configPath, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath))
			}
			return nil, NewLoadError(configPath, err)
		}
		data = ExpandEnv(data)
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, NewLoadError(configPath, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
	}

	// Merge user values over built-in defaults; unset fields keep defaults.
	defaults := DefaultDefaults()
	if fileCfg.Defaults != nil {
		if err := mergo.Merge(defaults, fileCfg.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	queue := DefaultQueueConfig()
	if fileCfg.Queue != nil {
		if err := mergo.Merge(queue, fileCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	topics := DefaultTopics()
	if fileCfg.Topics != nil {
		if err := mergo.Merge(topics, fileCfg.Topics, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge topics: %w", err)
		}
	}

	retention := DefaultRetentionConfig()
	if fileCfg.Retention != nil {
		if err := mergo.Merge(retention, fileCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	notifications := DefaultNotificationsConfig()
	if fileCfg.Notifications != nil {
		notifications = fileCfg.Notifications
		if notifications.TokenEnv == "" {
			notifications.TokenEnv = "SLACK_BOT_TOKEN"
		}
	}

	centers := fileCfg.ServiceCenters
	if len(centers) == 0 {
		centers = DefaultCenters()
	}

	return &Config{
		configPath:    configPath,
		Defaults:      defaults,
		Queue:         queue,
		Topics:        topics,
		Centers:       NewCenterRegistry(centers),
		Notifications: notifications,
		Retention:     retention,
	}, nil
}

func validate(cfg *Config) error {
	v := &validator{cfg: cfg}
	return v.validateAll()
}
