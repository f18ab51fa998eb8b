package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/llm"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/services"
)

type anomalyWork struct {
	vehicleID string
	events    []*ent.TelemetryEvent
	verdict   Verdict
}

// NewAnomalyWorker builds the anomaly-detection stage runner. It consumes
// telemetry-ingested signals, classifies the vehicle's recent telemetry
// window, and opens at most one anomaly case per vehicle per quiet period.
func NewAnomalyWorker(deps Deps) *Runner {
	desc := Descriptor{
		Stage: models.StageDataAnalysis,

		Check: func(ctx context.Context, env bus.Envelope) (services.GateOutcome, string, error) {
			vehicleID := env.String("vehicle_id")
			if vehicleID == "" {
				return services.GateNone, "", fmt.Errorf("%w: envelope has no vehicle_id", bus.ErrNotRetryable)
			}
			outcome, existing, err := deps.Anomalies.ClassifyDuplicate(ctx, vehicleID, deps.Defaults.DuplicateWindow)
			if err != nil {
				return services.GateNone, "", err
			}
			id := ""
			if existing != nil {
				id = existing.ID
			}
			return outcome, id, nil
		},

		Prepare: func(ctx context.Context, env bus.Envelope) (*Work, error) {
			vehicleID := env.String("vehicle_id")
			events, err := deps.Telemetry.RecentForVehicle(ctx, vehicleID, deps.Defaults.TelemetryWindow)
			if err != nil {
				return nil, err
			}
			if len(events) == 0 {
				slog.Info("No telemetry for vehicle, skipping", "vehicle_id", vehicleID)
				return nil, fmt.Errorf("%w: no telemetry for %s", bus.ErrSkipped, vehicleID)
			}
			verdict := ClassifyTelemetry(events)
			return &Work{
				Prompt: anomalyPrompt(vehicleID, events, verdict),
				Data:   &anomalyWork{vehicleID: vehicleID, events: events, verdict: verdict},
			}, nil
		},

		Commit: func(ctx context.Context, env bus.Envelope, work *Work, response string) ([]Publication, error) {
			w := work.Data.(*anomalyWork)
			detected, anomalyType, severity := normaliseAnomaly(response, w.verdict)

			eventIDs := make([]string, 0, len(w.events))
			for _, e := range w.events {
				eventIDs = append(eventIDs, e.ID)
			}
			in := services.AnomalyCaseInput{
				VehicleID:         w.vehicleID,
				AnomalyDetected:   detected,
				TelemetryEventIDs: eventIDs,
			}
			if detected {
				in.AnomalyType = &anomalyType
				in.SeverityScore = &severity
			}
			created, err := deps.Anomalies.Create(ctx, in)
			if err != nil {
				return nil, fmt.Errorf("failed to commit anomaly case: %w", err)
			}
			if err := deps.Sink.MirrorAnomaly(ctx, created); err != nil {
				slog.Warn("Warehouse mirror failed", "case_id", created.ID, "error", err)
			}

			// A clean observation emits no event; the case record alone
			// carries the negative result.
			if !detected {
				return nil, nil
			}
			return []Publication{{
				Topic: deps.Topics.AnomalyDetected,
				Payload: map[string]any{
					"case_id":        created.ID,
					"vehicle_id":     created.VehicleID,
					"anomaly_type":   anomalyType,
					"severity_score": severity,
					"severity":       SeverityLabel(severity),
					"confidence":     1 - severity,
					"agent_stage":    string(models.StageDataAnalysis),
				},
			}}, nil
		},
	}
	return NewRunner(desc, deps)
}

// normaliseAnomaly reconciles the model's answer with the rule classifier.
// The model may only pick a rule that actually fired; anything else falls
// back to the classifier's verdict. Severity comes from the firing rule.
func normaliseAnomaly(response string, verdict Verdict) (bool, string, float64) {
	obj, err := llm.ExtractJSON(response)
	if err != nil {
		return verdict.Detected, verdict.Primary.AnomalyType, verdict.Primary.SeverityScore
	}

	detected, _ := obj["anomaly_detected"].(bool)
	if !detected && !verdict.Detected {
		return false, "", 0
	}
	if !verdict.Detected {
		// Model claims an anomaly no rule supports; the classifier wins.
		return false, "", 0
	}

	picked, _ := obj["anomaly_type"].(string)
	if f, ok := verdict.Fired(picked); ok {
		return true, f.AnomalyType, f.SeverityScore
	}
	return true, verdict.Primary.AnomalyType, verdict.Primary.SeverityScore
}
