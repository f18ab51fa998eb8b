package models

import (
	"strings"

	"github.com/google/uuid"
)

// keyHexLen is the number of hex characters in a generated record key.
const keyHexLen = 10

func hexSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:keyHexLen]
}

// NewEventID mints a telemetry event key (evt_<hex>).
func NewEventID() string {
	return "evt_" + hexSuffix()
}

// NewCaseID mints an anomaly case key (case_<hex>), the subject key for the
// whole downstream pipeline.
func NewCaseID() string {
	return "case_" + hexSuffix()
}

// NewDiagnosisID mints a diagnosis case key.
func NewDiagnosisID() string {
	return "diagnosis_" + hexSuffix()
}

// NewRcaID mints an RCA case key.
func NewRcaID() string {
	return "rca_" + hexSuffix()
}

// NewSchedulingID mints a scheduling case key.
func NewSchedulingID() string {
	return "scheduling_" + hexSuffix()
}

// NewEngagementID mints an engagement case key.
func NewEngagementID() string {
	return "engagement_" + hexSuffix()
}

// NewBookingID mints a booking key.
func NewBookingID() string {
	return "booking_" + hexSuffix()
}

// NewCommunicationID mints a communication case key.
func NewCommunicationID() string {
	return "comm_" + hexSuffix()
}

// NewFeedbackID mints a feedback case key.
func NewFeedbackID() string {
	return "feedback_" + hexSuffix()
}

// NewManufacturingID mints a manufacturing case key.
func NewManufacturingID() string {
	return "manufacturing_" + hexSuffix()
}

// ReviewID builds the human-review key for a gated decision. Repeated gating
// of the same case+stage collapses onto one record.
func ReviewID(caseID string, stage Stage) string {
	return caseID + "_" + string(stage)
}
