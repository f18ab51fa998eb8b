package stages

import (
	"math"

	"github.com/fleetsense/fleetsense/ent"
)

// Detection thresholds. These are contractual: the anomaly stage's rule
// classifier is the authority the model output is validated against.
const (
	coolantOverheatC   = 110.0
	oilOverheatC       = 130.0
	sohDegradedPct     = 70.0
	socLowPct          = 10.0
	rpmSpikeThreshold  = 6500.0
	rpmStallThreshold  = 500.0
	stallMinSpeedKmph  = 5.0
	suddenStopFromKmph = 10.0
	gpsJumpKm          = 1.0
)

// Finding is one fired detection rule.
type Finding struct {
	AnomalyType   string
	SeverityScore float64
}

// Verdict is the classifier result over one telemetry window.
type Verdict struct {
	Detected bool
	// Primary is the highest-severity finding; zero value when !Detected.
	Primary Finding
	// Findings holds every rule that fired, highest severity first not
	// guaranteed; used to validate the model's pick.
	Findings []Finding
}

// Fired reports whether the named anomaly type is among the findings.
func (v Verdict) Fired(anomalyType string) (Finding, bool) {
	for _, f := range v.Findings {
		if f.AnomalyType == anomalyType {
			return f, true
		}
	}
	return Finding{}, false
}

// clampSeverity keeps severity scores inside (0,1] with a small floor so a
// boundary-grazing detection still registers.
func clampSeverity(s float64) float64 {
	if s > 1 {
		return 1
	}
	if s < 0.05 {
		return 0.05
	}
	return s
}

// ClassifyTelemetry runs the detection rules over a chronological telemetry
// window. Instantaneous rules look at the latest sample; transition rules
// (sudden stop, GPS jump) compare consecutive samples.
func ClassifyTelemetry(events []*ent.TelemetryEvent) Verdict {
	if len(events) == 0 {
		return Verdict{}
	}
	latest := events[len(events)-1]
	var findings []Finding
	add := func(anomalyType string, severity float64) {
		findings = append(findings, Finding{
			AnomalyType:   anomalyType,
			SeverityScore: clampSeverity(severity),
		})
	}

	if latest.CoolantTempC > coolantOverheatC {
		add("thermal_overheat", 0.5+(latest.CoolantTempC-coolantOverheatC)/40)
	}
	if latest.OilTempC > oilOverheatC {
		add("oil_overheat", 0.5+(latest.OilTempC-oilOverheatC)/40)
	}
	if latest.BatterySohPct > 0 && latest.BatterySohPct < sohDegradedPct {
		add("battery_degradation", 0.5+(sohDegradedPct-latest.BatterySohPct)/sohDegradedPct)
	}
	if latest.BatterySocPct < socLowPct {
		add("low_charge", 0.5+(socLowPct-latest.BatterySocPct)/20)
	}
	if latest.EngineRpm > rpmSpikeThreshold {
		add("rpm_spike", 0.5+(latest.EngineRpm-rpmSpikeThreshold)/3000)
	}
	if latest.EngineRpm > 0 && latest.EngineRpm < rpmStallThreshold && latest.SpeedKmph > stallMinSpeedKmph {
		add("rpm_stall", 0.5+(rpmStallThreshold-latest.EngineRpm)/1000)
	}
	if len(latest.DtcCodes) > 0 {
		add("dtc_fault", math.Min(0.5+0.05*float64(len(latest.DtcCodes)), 0.9))
	}

	if len(events) >= 2 {
		prev := events[len(events)-2]
		if prev.SpeedKmph > suddenStopFromKmph && latest.SpeedKmph == 0 {
			add("speed_anomaly", 0.5+prev.SpeedKmph/200)
		}
		if jump, bad := gpsFinding(prev, latest); bad {
			add("gps_anomaly", jump)
		}
	} else if invalidGPS(latest) {
		add("gps_anomaly", 0.9)
	}

	if len(findings) == 0 {
		return Verdict{}
	}
	primary := findings[0]
	for _, f := range findings[1:] {
		if f.SeverityScore > primary.SeverityScore {
			primary = f
		}
	}
	return Verdict{Detected: true, Primary: primary, Findings: findings}
}

func invalidGPS(e *ent.TelemetryEvent) bool {
	if e.Latitude == nil || e.Longitude == nil {
		return false
	}
	return math.Abs(*e.Latitude) > 90 || math.Abs(*e.Longitude) > 180
}

// gpsFinding returns a severity for invalid coordinates or an implausible
// jump (>1 km between consecutive samples).
func gpsFinding(prev, cur *ent.TelemetryEvent) (float64, bool) {
	if invalidGPS(cur) {
		return 0.9, true
	}
	if prev.Latitude == nil || prev.Longitude == nil || cur.Latitude == nil || cur.Longitude == nil {
		return 0, false
	}
	km := haversineKm(*prev.Latitude, *prev.Longitude, *cur.Latitude, *cur.Longitude)
	if km > gpsJumpKm {
		return 0.5 + km/20, true
	}
	return 0, false
}

// haversineKm is the great-circle distance between two coordinates.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
