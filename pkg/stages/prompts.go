package stages

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/pkg/services"
)

// Prompt builders. Each asks for a single JSON object so the response can be
// fence-stripped and extracted uniformly.

func telemetrySummary(events []*ent.TelemetryEvent) string {
	var b strings.Builder
	for _, e := range events {
		fmt.Fprintf(&b,
			"- %s speed=%.1fkm/h rpm=%.0f coolant=%.1fC oil=%.1fC soc=%.1f%% soh=%.1f%% dtc=%v\n",
			e.Timestamp.Format(time.RFC3339), e.SpeedKmph, e.EngineRpm,
			e.CoolantTempC, e.OilTempC, e.BatterySocPct, e.BatterySohPct, e.DtcCodes)
	}
	return b.String()
}

func anomalyPrompt(vehicleID string, events []*ent.TelemetryEvent, verdict Verdict) string {
	fired := make([]string, 0, len(verdict.Findings))
	for _, f := range verdict.Findings {
		fired = append(fired, fmt.Sprintf("%s (severity %.2f)", f.AnomalyType, f.SeverityScore))
	}
	return fmt.Sprintf(`You are a vehicle diagnostics analyst. Review the telemetry window for vehicle %s (oldest first):
%s
Rule-based screening fired: %s.
Decide whether an anomaly is present and, if several rules fired, which one dominates.
Respond with exactly one JSON object:
{"anomaly_detected": bool, "anomaly_type": string|null, "severity_score": number|null, "reasoning": string}
anomaly_type must be one of the fired rules above, or null when no anomaly is present.`,
		vehicleID, telemetrySummary(events), strings.Join(fired, ", "))
}

func diagnosisPrompt(anomaly *ent.AnomalyCase, events []*ent.TelemetryEvent) string {
	anomalyType := ""
	severity := 0.0
	if anomaly.AnomalyType != nil {
		anomalyType = string(*anomaly.AnomalyType)
	}
	if anomaly.SeverityScore != nil {
		severity = *anomaly.SeverityScore
	}
	return fmt.Sprintf(`You are a vehicle failure-mode analyst. An anomaly of type %q (severity %.2f) was detected on vehicle %s. Supporting telemetry:
%s
Estimate the failing component, failure probability and remaining useful life.
Respond with exactly one JSON object:
{"component": string, "failure_probability": number, "estimated_rul_days": integer, "severity": "Low"|"Medium"|"High", "reasoning": string}`,
		anomalyType, severity, anomaly.VehicleID, telemetrySummary(events))
}

func rcaPrompt(diagnosis *ent.DiagnosisCase, events []*ent.TelemetryEvent) string {
	return fmt.Sprintf(`You are a root-cause analyst. Diagnosis for vehicle %s: component %q, failure probability %.2f, estimated RUL %d days, severity %s. Supporting telemetry:
%s
Determine the most plausible root cause and remediation.
Respond with exactly one JSON object:
{"root_cause": string, "confidence": number, "recommended_action": string, "capa_type": "Corrective"|"Preventive"}`,
		diagnosis.VehicleID, diagnosis.Component, diagnosis.FailureProbability,
		diagnosis.EstimatedRulDays, diagnosis.Severity, telemetrySummary(events))
}

func schedulingPrompt(rca *ent.RcaCase, diagnosis *ent.DiagnosisCase, offers []SlotOffer) string {
	type offerView struct {
		Slot   string `json:"slot"`
		Center string `json:"service_center"`
	}
	views := make([]offerView, 0, len(offers))
	for _, o := range offers {
		views = append(views, offerView{
			Slot:   o.Start.Format(time.RFC3339),
			Center: o.Center.ID,
		})
	}
	offerJSON, _ := json.Marshal(views)
	return fmt.Sprintf(`You are a service scheduler. Vehicle %s needs %q on component %q (RUL %d days). Available appointment offers:
%s
Pick the best slot considering urgency.
Respond with exactly one JSON object:
{"best_slot": string, "service_center": string, "reasoning": string}
best_slot must be one of the offered ISO-8601 instants.`,
		rca.VehicleID, rca.RecommendedAction, diagnosis.Component,
		diagnosis.EstimatedRulDays, string(offerJSON))
}

func engagementPrompt(sc *ent.SchedulingCase, rca *ent.RcaCase, customerName string) string {
	name := customerName
	if name == "" {
		name = "the customer"
	}
	return fmt.Sprintf(`You are a service advisor calling %s about vehicle %s. Root cause: %s. Recommended action: %s. Proposed slot: %s at %s (fallbacks: %s).
Simulate a short realistic dialogue (4-8 turns) and the customer's final decision.
Respond with exactly one JSON object:
{"customer_decision": "confirmed"|"declined"|"no_response", "transcript": [{"speaker": "agent"|"customer", "text": string}]}`,
		name, sc.VehicleID, rca.RootCause, rca.RecommendedAction,
		sc.BestSlot.Format(time.RFC3339), sc.ServiceCenter,
		strings.Join(sc.FallbackSlots, ", "))
}

func feedbackPrompt(anomalyType, technicianNotes string, customerRating *int, events []*ent.TelemetryEvent) string {
	rating := "not provided"
	if customerRating != nil {
		rating = fmt.Sprintf("%d/5", *customerRating)
	}
	return fmt.Sprintf(`You are a service-quality evaluator. Original anomaly type: %q. Technician notes after service: %q. Customer rating: %s. Post-service telemetry:
%s
Judge whether the original detection was validated by the service outcome and score the customer effort.
Respond with exactly one JSON object:
{"cei_score": number, "validation_label": "Correct"|"Recurring"|"Incorrect", "reasoning": string}
cei_score is the Customer Effort Index in [1.0, 5.0].`,
		anomalyType, technicianNotes, rating, telemetrySummary(events))
}

func manufacturingPrompt(feedback *ent.FeedbackCase, anomalyType, component string, counts services.RecurrenceCounts) string {
	return fmt.Sprintf(`You are a manufacturing-quality engineer. A serviced issue on vehicle %s (anomaly type %q, component %q) was validated as %q with CEI %.1f. Fleet recurrence: %d on this vehicle, %d fleet-wide for this anomaly type, %d fleet-wide for this component.
Assess the manufacturing-quality impact.
Respond with exactly one JSON object:
{"issue": string, "capa_recommendation": string, "severity": "Low"|"Medium"|"High", "recurrence_cluster_size": integer}`,
		feedback.VehicleID, anomalyType, component, feedback.ValidationLabel,
		feedback.CeiScore, counts.Vehicle, counts.AnomalyType, counts.Component)
}

// callTurnPrompt generates one live-call utterance for the webhook dialog.
func callTurnPrompt(stage, customerName, vehicleID, rootCause, slot, customerInput string) string {
	name := customerName
	if name == "" {
		name = "the customer"
	}
	return fmt.Sprintf(`You are a service advisor on a live call with %s about vehicle %s (issue: %s, proposed slot: %s). Conversation stage: %s. The customer just said: %q.
Reply with the advisor's next utterance only, under 30 words, plain text, no JSON.`,
		name, vehicleID, rootCause, slot, stage, customerInput)
}
