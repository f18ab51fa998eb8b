package config

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DayHours is one day's operating window in the center's local time,
// "HH:MM" 24h clock. A zero value means closed that day.
type DayHours struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// Closed reports whether the day has no operating window.
func (d DayHours) Closed() bool {
	return d.Open == "" && d.Close == ""
}

// ServiceCenterConfig describes one service center in the registry.
// Registry order matters: the scheduler tries centers in order until one has
// capacity.
type ServiceCenterConfig struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`

	// OperatingHours keyed by lowercase weekday name (monday..sunday);
	// missing days are closed.
	OperatingHours map[string]DayHours `yaml:"operating_hours"`

	// CapacityPerSlot is how many concurrent bookings one hourly slot holds.
	CapacityPerSlot int `yaml:"capacity_per_slot"`

	// Parts stocked at this center.
	Parts []string `yaml:"parts"`
}

// Location resolves the center's timezone.
func (c *ServiceCenterConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("service center %s: invalid timezone %q: %w", c.ID, c.Timezone, err)
	}
	return loc, nil
}

// HasPart reports whether the center stocks the named part. An empty part
// name always matches; an empty stock list matches nothing.
func (c *ServiceCenterConfig) HasPart(part string) bool {
	if part == "" {
		return true
	}
	for _, p := range c.Parts {
		if strings.EqualFold(p, part) {
			return true
		}
	}
	return false
}

// CenterRegistry is the ordered service-center lookup.
type CenterRegistry struct {
	centers []*ServiceCenterConfig
	byID    map[string]*ServiceCenterConfig
}

// NewCenterRegistry builds a registry preserving the given order.
func NewCenterRegistry(centers []*ServiceCenterConfig) *CenterRegistry {
	r := &CenterRegistry{
		centers: centers,
		byID:    make(map[string]*ServiceCenterConfig, len(centers)),
	}
	for _, c := range centers {
		r.byID[c.ID] = c
	}
	return r
}

// Get retrieves a center by ID.
func (r *CenterRegistry) Get(id string) (*ServiceCenterConfig, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown service center: %s", id)
	}
	return c, nil
}

// Ordered returns the centers in registry order.
func (r *CenterRegistry) Ordered() []*ServiceCenterConfig {
	return r.centers
}

// Len returns the number of registered centers.
func (r *CenterRegistry) Len() int {
	return len(r.centers)
}

// IDs returns all center IDs, sorted.
func (r *CenterRegistry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultCenters returns the built-in registry used when the YAML file does
// not define one. Weekday business hours, one bay per slot.
func DefaultCenters() []*ServiceCenterConfig {
	weekdays := map[string]DayHours{
		"monday":    {Open: "09:00", Close: "18:00"},
		"tuesday":   {Open: "09:00", Close: "18:00"},
		"wednesday": {Open: "09:00", Close: "18:00"},
		"thursday":  {Open: "09:00", Close: "18:00"},
		"friday":    {Open: "09:00", Close: "18:00"},
		"saturday":  {Open: "10:00", Close: "14:00"},
	}
	return []*ServiceCenterConfig{
		{
			ID:              "center_001",
			Name:            "Central Service Hub",
			Timezone:        "Asia/Kolkata",
			OperatingHours:  weekdays,
			CapacityPerSlot: 2,
			Parts: []string{
				"coolant_pump", "coolant_fluid", "oil_filter", "engine_oil",
				"battery_pack", "brake_pads", "spark_plugs",
			},
		},
		{
			ID:              "center_002",
			Name:            "North Depot",
			Timezone:        "Asia/Kolkata",
			OperatingHours:  weekdays,
			CapacityPerSlot: 1,
			Parts: []string{
				"coolant_fluid", "oil_filter", "engine_oil", "battery_pack",
			},
		},
	}
}
