package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentFor(t *testing.T) {
	assert.Equal(t, "engine_coolant_system", ComponentFor("thermal_overheat", nil))
	assert.Equal(t, "engine_lubrication_system", ComponentFor("oil_overheat", nil))
	assert.Equal(t, "battery", ComponentFor("low_charge", nil))
	assert.Equal(t, "powertrain", ComponentFor("something_new", nil))

	t.Run("dtc prefix split", func(t *testing.T) {
		assert.Equal(t, "engine", ComponentFor("dtc_fault", []string{"P0301"}))
		assert.Equal(t, "transmission", ComponentFor("dtc_fault", []string{"P1778"}))
		assert.Equal(t, "powertrain", ComponentFor("dtc_fault", []string{"C1234"}))
		assert.Equal(t, "powertrain", ComponentFor("dtc_fault", nil))
	})
}

func TestFailureProbability(t *testing.T) {
	assert.InDelta(t, 0.2, FailureProbability(0), 1e-9)
	assert.InDelta(t, 0.7, FailureProbability(0.625), 1e-9)
	assert.InDelta(t, 1.0, FailureProbability(1), 1e-9)
	assert.InDelta(t, 1.0, FailureProbability(2), 1e-9)
}

func TestSeverityLabel(t *testing.T) {
	assert.Equal(t, "Low", SeverityLabel(0.29))
	assert.Equal(t, "Medium", SeverityLabel(0.3))
	assert.Equal(t, "Medium", SeverityLabel(0.69))
	assert.Equal(t, "High", SeverityLabel(0.7))
	assert.Equal(t, "High", SeverityLabel(1))
}

func TestEstimatedRulDays(t *testing.T) {
	// Severity 0.625 in the thermal band (7-30) lands mid-band.
	assert.Equal(t, 16, EstimatedRulDays("thermal_overheat", 0.625))

	// Full severity pins to the band floor, zero severity to the ceiling.
	assert.Equal(t, 1, EstimatedRulDays("oil_overheat", 1))
	assert.Equal(t, 180, EstimatedRulDays("low_charge", 0))

	// Unknown types get the moderate band.
	assert.Equal(t, 90, EstimatedRulDays("something_new", 0))
}

func TestClampRulDays(t *testing.T) {
	assert.Equal(t, 7, ClampRulDays("thermal_overheat", 2))
	assert.Equal(t, 30, ClampRulDays("thermal_overheat", 400))
	assert.Equal(t, 15, ClampRulDays("thermal_overheat", 15))
	assert.Equal(t, 30, ClampRulDays("something_new", -5))
}

func TestSlotTypeFor(t *testing.T) {
	assert.Equal(t, "urgent", SlotTypeFor(1))
	assert.Equal(t, "urgent", SlotTypeFor(6))
	assert.Equal(t, "normal", SlotTypeFor(7))
	assert.Equal(t, "normal", SlotTypeFor(29))
	assert.Equal(t, "delayed", SlotTypeFor(30))
	assert.Equal(t, "delayed", SlotTypeFor(180))
}
