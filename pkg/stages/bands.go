package stages

import "math"

// rulBand is the remaining-useful-life range for one urgency class, in days.
type rulBand struct {
	lower, upper int
}

var (
	bandCritical = rulBand{1, 7}
	bandSerious  = rulBand{7, 30}
	bandModerate = rulBand{30, 90}
	bandLow      = rulBand{90, 180}
)

// urgencyBands maps each anomaly type to its RUL band.
var urgencyBands = map[string]rulBand{
	"oil_overheat":        bandCritical,
	"rpm_spike":           bandCritical,
	"thermal_overheat":    bandSerious,
	"dtc_fault":           bandSerious,
	"rpm_stall":           bandSerious,
	"battery_degradation": bandModerate,
	"speed_anomaly":       bandModerate,
	"gps_anomaly":         bandModerate,
	"low_charge":          bandLow,
}

// componentTable maps anomaly types to the affected subsystem. dtc_fault is
// resolved separately from the DTC prefix.
var componentTable = map[string]string{
	"thermal_overheat":    "engine_coolant_system",
	"oil_overheat":        "engine_lubrication_system",
	"battery_degradation": "battery",
	"low_charge":          "battery",
	"rpm_spike":           "engine",
	"rpm_stall":           "engine",
	"speed_anomaly":       "braking_system",
	"gps_anomaly":         "telematics_unit",
}

// ComponentFor resolves the affected subsystem for an anomaly type. DTC
// faults split on code prefix: P0xxx is engine, P1xxx transmission, anything
// else powertrain.
func ComponentFor(anomalyType string, dtcCodes []string) string {
	if anomalyType == "dtc_fault" {
		if len(dtcCodes) > 0 {
			switch {
			case len(dtcCodes[0]) >= 2 && dtcCodes[0][:2] == "P0":
				return "engine"
			case len(dtcCodes[0]) >= 2 && dtcCodes[0][:2] == "P1":
				return "transmission"
			}
		}
		return "powertrain"
	}
	if c, ok := componentTable[anomalyType]; ok {
		return c
	}
	return "powertrain"
}

// FailureProbability derives failure probability monotonically from the
// anomaly severity score.
func FailureProbability(severityScore float64) float64 {
	return clamp01(0.2 + 0.8*severityScore)
}

// SeverityLabel maps a failure probability onto the three-way severity label:
// Low below 0.3, Medium below 0.7, High at or above.
func SeverityLabel(failureProbability float64) string {
	switch {
	case failureProbability < 0.3:
		return "Low"
	case failureProbability < 0.7:
		return "Medium"
	default:
		return "High"
	}
}

// EstimatedRulDays derives remaining useful life from severity and the
// anomaly type's urgency band: the more severe, the closer to the band's
// lower edge. Floor 1 day.
func EstimatedRulDays(anomalyType string, severityScore float64) int {
	band, ok := urgencyBands[anomalyType]
	if !ok {
		band = bandModerate
	}
	days := int(math.Round(float64(band.upper) - clamp01(severityScore)*float64(band.upper-band.lower)))
	if days < 1 {
		days = 1
	}
	return days
}

// ClampRulDays forces a RUL value into the anomaly type's band (floor 1).
func ClampRulDays(anomalyType string, days int) int {
	band, ok := urgencyBands[anomalyType]
	if !ok {
		band = bandModerate
	}
	if days < band.lower {
		days = band.lower
	}
	if days > band.upper {
		days = band.upper
	}
	if days < 1 {
		days = 1
	}
	return days
}

// SlotTypeFor maps a RUL to the scheduling urgency: urgent under a week,
// normal up to a month, delayed beyond.
func SlotTypeFor(rulDays int) string {
	switch {
	case rulDays < 7:
		return "urgent"
	case rulDays < 30:
		return "normal"
	default:
		return "delayed"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
