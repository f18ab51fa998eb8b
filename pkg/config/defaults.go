package config

import "time"

// Defaults contains the pipeline-wide tunables. The confidence threshold and
// the duplicate window are contractual: downstream behavior (gating, at-most-one
// effect) is defined in terms of them.
type Defaults struct {
	// ConfidenceThreshold gates the critical stages (data_analysis,
	// diagnosis, rca). Decisions below it are parked for human review.
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`

	// DuplicateWindow is the quiet period within which a still-pending case
	// for the same subject counts as a duplicate trigger.
	DuplicateWindow time.Duration `yaml:"duplicate_window"`

	// JitterMax is the upper bound of the pre-model-call sleep that spreads
	// concurrent deliveries apart. Tests set it to 0.
	JitterMax time.Duration `yaml:"jitter_max"`

	// DefaultCountryCode is prepended to bare national phone numbers.
	DefaultCountryCode string `yaml:"default_country_code"`

	// TelemetryWindow is how many recent samples the anomaly and feedback
	// stages read per vehicle.
	TelemetryWindow int `yaml:"telemetry_window"`

	// PlanningHorizonDays bounds slot expansion for scheduling.
	PlanningHorizonDays int `yaml:"planning_horizon_days"`
}

// DefaultDefaults returns the built-in pipeline defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		ConfidenceThreshold: 0.85,
		DuplicateWindow:     30 * time.Second,
		JitterMax:           10 * time.Second,
		DefaultCountryCode:  "+91",
		TelemetryWindow:     10,
		PlanningHorizonDays: 30,
	}
}
