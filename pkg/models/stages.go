package models

// Stage identifies one worker in the pipeline. The values are the
// agent_stage tags carried on bus envelopes; they are contractual strings.
type Stage string

const (
	StageDataAnalysis  Stage = "data_analysis"
	StageDiagnosis     Stage = "diagnosis"
	StageRca           Stage = "rca"
	StageScheduling    Stage = "scheduling"
	StageEngagement    Stage = "engagement"
	StageCommunication Stage = "communication"
	StageFeedback      Stage = "feedback"
	StageManufacturing Stage = "manufacturing"
)

// Valid reports whether s is a known stage tag.
func (s Stage) Valid() bool {
	switch s {
	case StageDataAnalysis, StageDiagnosis, StageRca, StageScheduling,
		StageEngagement, StageCommunication, StageFeedback, StageManufacturing:
		return true
	}
	return false
}

func (s Stage) String() string {
	return string(s)
}

// AnomalyTypes is the closed set of anomaly classifications.
var AnomalyTypes = []string{
	"thermal_overheat",
	"oil_overheat",
	"battery_degradation",
	"low_charge",
	"rpm_spike",
	"rpm_stall",
	"dtc_fault",
	"speed_anomaly",
	"gps_anomaly",
}

// ValidAnomalyType reports whether t belongs to the closed set.
func ValidAnomalyType(t string) bool {
	for _, a := range AnomalyTypes {
		if a == t {
			return true
		}
	}
	return false
}
