package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/ent"
)

func coords(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

// healthyEvent returns a telemetry sample that fires no rule.
func healthyEvent() *ent.TelemetryEvent {
	lat, lon := coords(12.97, 77.59)
	return &ent.TelemetryEvent{
		Latitude:      lat,
		Longitude:     lon,
		SpeedKmph:     45,
		EngineRpm:     2200,
		CoolantTempC:  92,
		OilTempC:      105,
		FuelLevelPct:  60,
		BatterySocPct: 80,
		BatterySohPct: 95,
	}
}

func TestClassifyTelemetry(t *testing.T) {
	t.Run("empty window detects nothing", func(t *testing.T) {
		assert.False(t, ClassifyTelemetry(nil).Detected)
	})

	t.Run("healthy telemetry detects nothing", func(t *testing.T) {
		v := ClassifyTelemetry([]*ent.TelemetryEvent{healthyEvent()})
		assert.False(t, v.Detected)
		assert.Empty(t, v.Findings)
	})

	t.Run("coolant overheat", func(t *testing.T) {
		e := healthyEvent()
		e.CoolantTempC = 115

		v := ClassifyTelemetry([]*ent.TelemetryEvent{e})
		require.True(t, v.Detected)
		assert.Equal(t, "thermal_overheat", v.Primary.AnomalyType)
		assert.InDelta(t, 0.625, v.Primary.SeverityScore, 1e-9)
	})

	t.Run("coolant overheat outranks a single DTC", func(t *testing.T) {
		e := healthyEvent()
		e.CoolantTempC = 115
		e.DtcCodes = []string{"P0301"}

		v := ClassifyTelemetry([]*ent.TelemetryEvent{e})
		require.True(t, v.Detected)
		assert.Equal(t, "thermal_overheat", v.Primary.AnomalyType)
		assert.Len(t, v.Findings, 2)

		dtc, fired := v.Fired("dtc_fault")
		require.True(t, fired)
		assert.InDelta(t, 0.55, dtc.SeverityScore, 1e-9)
	})

	t.Run("oil overheat", func(t *testing.T) {
		e := healthyEvent()
		e.OilTempC = 150

		v := ClassifyTelemetry([]*ent.TelemetryEvent{e})
		require.True(t, v.Detected)
		assert.Equal(t, "oil_overheat", v.Primary.AnomalyType)
		assert.InDelta(t, 1.0, v.Primary.SeverityScore, 1e-9)
	})

	t.Run("battery degradation", func(t *testing.T) {
		e := healthyEvent()
		e.BatterySohPct = 56

		v := ClassifyTelemetry([]*ent.TelemetryEvent{e})
		require.True(t, v.Detected)
		assert.Equal(t, "battery_degradation", v.Primary.AnomalyType)
		assert.InDelta(t, 0.7, v.Primary.SeverityScore, 1e-9)
	})

	t.Run("zero SoH reading is a sensor gap, not degradation", func(t *testing.T) {
		e := healthyEvent()
		e.BatterySohPct = 0
		e.BatterySocPct = 50

		v := ClassifyTelemetry([]*ent.TelemetryEvent{e})
		assert.False(t, v.Detected)
	})

	t.Run("low charge", func(t *testing.T) {
		e := healthyEvent()
		e.BatterySocPct = 4

		v := ClassifyTelemetry([]*ent.TelemetryEvent{e})
		require.True(t, v.Detected)
		assert.Equal(t, "low_charge", v.Primary.AnomalyType)
		assert.InDelta(t, 0.8, v.Primary.SeverityScore, 1e-9)
	})

	t.Run("rpm spike", func(t *testing.T) {
		e := healthyEvent()
		e.EngineRpm = 7100

		v := ClassifyTelemetry([]*ent.TelemetryEvent{e})
		require.True(t, v.Detected)
		assert.Equal(t, "rpm_spike", v.Primary.AnomalyType)
		assert.InDelta(t, 0.7, v.Primary.SeverityScore, 1e-9)
	})

	t.Run("rpm stall needs the vehicle moving", func(t *testing.T) {
		stalled := healthyEvent()
		stalled.EngineRpm = 300
		stalled.SpeedKmph = 40

		v := ClassifyTelemetry([]*ent.TelemetryEvent{stalled})
		require.True(t, v.Detected)
		assert.Equal(t, "rpm_stall", v.Primary.AnomalyType)

		parked := healthyEvent()
		parked.EngineRpm = 300
		parked.SpeedKmph = 0
		assert.False(t, ClassifyTelemetry([]*ent.TelemetryEvent{parked}).Detected)
	})

	t.Run("dtc severity caps at 0.9", func(t *testing.T) {
		e := healthyEvent()
		e.DtcCodes = []string{"P0301", "P0302", "P0303", "P0304", "P0305", "P0306", "P0307", "P0308", "P0309", "P0420"}

		v := ClassifyTelemetry([]*ent.TelemetryEvent{e})
		require.True(t, v.Detected)
		assert.Equal(t, "dtc_fault", v.Primary.AnomalyType)
		assert.InDelta(t, 0.9, v.Primary.SeverityScore, 1e-9)
	})

	t.Run("sudden stop fires on consecutive samples", func(t *testing.T) {
		prev := healthyEvent()
		prev.SpeedKmph = 80
		cur := healthyEvent()
		cur.SpeedKmph = 0

		v := ClassifyTelemetry([]*ent.TelemetryEvent{prev, cur})
		require.True(t, v.Detected)
		assert.Equal(t, "speed_anomaly", v.Primary.AnomalyType)
		assert.InDelta(t, 0.9, v.Primary.SeverityScore, 1e-9)
	})

	t.Run("gps jump between samples", func(t *testing.T) {
		prev := healthyEvent()
		cur := healthyEvent()
		cur.Latitude, cur.Longitude = coords(13.05, 77.59) // ~9 km north

		v := ClassifyTelemetry([]*ent.TelemetryEvent{prev, cur})
		require.True(t, v.Detected)
		assert.Equal(t, "gps_anomaly", v.Primary.AnomalyType)
		assert.Greater(t, v.Primary.SeverityScore, 0.5)
	})

	t.Run("small movement is not a jump", func(t *testing.T) {
		prev := healthyEvent()
		cur := healthyEvent()
		cur.Latitude, cur.Longitude = coords(12.975, 77.59) // ~550 m

		assert.False(t, ClassifyTelemetry([]*ent.TelemetryEvent{prev, cur}).Detected)
	})

	t.Run("invalid coordinates on a single sample", func(t *testing.T) {
		e := healthyEvent()
		e.Latitude, e.Longitude = coords(123.0, 77.59)

		v := ClassifyTelemetry([]*ent.TelemetryEvent{e})
		require.True(t, v.Detected)
		assert.Equal(t, "gps_anomaly", v.Primary.AnomalyType)
		assert.InDelta(t, 0.9, v.Primary.SeverityScore, 1e-9)
	})

	t.Run("missing coordinates detect nothing", func(t *testing.T) {
		e := healthyEvent()
		e.Latitude, e.Longitude = nil, nil

		assert.False(t, ClassifyTelemetry([]*ent.TelemetryEvent{e}).Detected)
	})
}

func TestClampSeverity(t *testing.T) {
	assert.Equal(t, 0.05, clampSeverity(0.001))
	assert.Equal(t, 0.05, clampSeverity(-2))
	assert.Equal(t, 1.0, clampSeverity(3))
	assert.Equal(t, 0.6, clampSeverity(0.6))
}

func TestHaversineKm(t *testing.T) {
	// Bangalore to Chennai, roughly 290 km.
	km := haversineKm(12.9716, 77.5946, 13.0827, 80.2707)
	assert.InDelta(t, 290, km, 10)

	assert.Zero(t, haversineKm(12.9716, 77.5946, 12.9716, 77.5946))
}
