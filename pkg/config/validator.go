package config

import (
	"fmt"
	"regexp"
)

var hoursRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

type validator struct {
	cfg *Config
}

func (v *validator) validateAll() error {
	if err := v.validateDefaults(); err != nil {
		return err
	}
	if err := v.validateQueue(); err != nil {
		return err
	}
	if err := v.validateTopics(); err != nil {
		return err
	}
	return v.validateCenters()
}

func (v *validator) validateDefaults() error {
	d := v.cfg.Defaults
	if d.ConfidenceThreshold < 0 || d.ConfidenceThreshold > 1 {
		return NewValidationError("defaults.confidence_threshold", "must be in [0,1]")
	}
	if d.DuplicateWindow <= 0 {
		return NewValidationError("defaults.duplicate_window", "must be positive")
	}
	if d.JitterMax < 0 {
		return NewValidationError("defaults.jitter_max", "must be non-negative")
	}
	if d.TelemetryWindow < 1 {
		return NewValidationError("defaults.telemetry_window", "must be at least 1")
	}
	if d.PlanningHorizonDays < 1 {
		return NewValidationError("defaults.planning_horizon_days", "must be at least 1")
	}
	return nil
}

func (v *validator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue.worker_count", "must be at least 1")
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue.poll_interval", "must be positive")
	}
	if q.MaxAttempts < 1 {
		return NewValidationError("queue.max_attempts", "must be at least 1")
	}
	return nil
}

func (v *validator) validateTopics() error {
	seen := make(map[string]bool)
	for _, name := range v.cfg.Topics.All() {
		if name == "" {
			return NewValidationError("topics", "topic names must be non-empty")
		}
		if seen[name] {
			return NewValidationError("topics", fmt.Sprintf("duplicate topic name %q", name))
		}
		seen[name] = true
	}
	return nil
}

func (v *validator) validateCenters() error {
	if v.cfg.Centers.Len() == 0 {
		return NewValidationError("service_centers", "at least one service center is required")
	}
	seen := make(map[string]bool)
	for _, c := range v.cfg.Centers.Ordered() {
		if c.ID == "" {
			return NewValidationError("service_centers", "center id must be non-empty")
		}
		if seen[c.ID] {
			return NewValidationError("service_centers", fmt.Sprintf("duplicate center id %q", c.ID))
		}
		seen[c.ID] = true

		if _, err := c.Location(); err != nil {
			return NewValidationError(fmt.Sprintf("service_centers.%s.timezone", c.ID), err.Error())
		}
		if c.CapacityPerSlot < 1 {
			return NewValidationError(fmt.Sprintf("service_centers.%s.capacity_per_slot", c.ID), "must be at least 1")
		}
		open := 0
		for day, hours := range c.OperatingHours {
			if !weekdays[day] {
				return NewValidationError(
					fmt.Sprintf("service_centers.%s.operating_hours", c.ID),
					fmt.Sprintf("unknown weekday %q", day))
			}
			if hours.Closed() {
				continue
			}
			if !hoursRe.MatchString(hours.Open) || !hoursRe.MatchString(hours.Close) {
				return NewValidationError(
					fmt.Sprintf("service_centers.%s.operating_hours.%s", c.ID, day),
					"hours must be HH:MM")
			}
			if hours.Open >= hours.Close {
				return NewValidationError(
					fmt.Sprintf("service_centers.%s.operating_hours.%s", c.ID, day),
					"open must precede close")
			}
			open++
		}
		if open == 0 {
			return NewValidationError(
				fmt.Sprintf("service_centers.%s.operating_hours", c.ID),
				"center must be open at least one day")
		}
	}
	return nil
}
