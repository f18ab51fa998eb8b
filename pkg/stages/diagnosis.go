package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/anomalycase"
	"github.com/fleetsense/fleetsense/ent/diagnosiscase"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/llm"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/services"
)

type diagnosisWork struct {
	anomaly *ent.AnomalyCase
	events  []*ent.TelemetryEvent
}

// NewDiagnosisWorker builds the diagnosis stage runner. It consumes
// diagnosis-dispatch messages routed by the orchestrator, keyed on the
// anomaly case.
func NewDiagnosisWorker(deps Deps) *Runner {
	desc := Descriptor{
		Stage: models.StageDiagnosis,

		Check: func(ctx context.Context, env bus.Envelope) (services.GateOutcome, string, error) {
			caseID := env.String("case_id")
			if caseID == "" {
				return services.GateNone, "", fmt.Errorf("%w: envelope has no case_id", bus.ErrNotRetryable)
			}
			return classifyDownstream(ctx, deps, func(ctx context.Context) (record, error) {
				d, err := deps.Diagnoses.LatestForCase(ctx, caseID)
				if d == nil {
					return record{}, err
				}
				return record{
					found:     true,
					id:        d.ID,
					createdAt: d.CreatedAt,
					advanced:  d.Status != diagnosiscase.StatusPendingRca,
				}, err
			})
		},

		Prepare: func(ctx context.Context, env bus.Envelope) (*Work, error) {
			caseID := env.String("case_id")
			anomaly, err := deps.Anomalies.Get(ctx, caseID)
			if err != nil {
				return nil, skipNotFound(err)
			}
			if !anomaly.AnomalyDetected || anomaly.AnomalyType == nil {
				return nil, fmt.Errorf("%w: case %s carries no anomaly", bus.ErrSkipped, caseID)
			}
			if anomalyRankPast(anomaly.Status, anomalycase.StatusDiagnosing) {
				return nil, fmt.Errorf("%w: case %s already diagnosed", bus.ErrSkipped, caseID)
			}
			// Claim the case before the model call. A retried delivery finds
			// it at diagnosing, which still ranks below diagnosed, so the
			// retry reruns the model rather than skipping.
			if err := deps.Anomalies.AdvanceStatus(ctx, caseID, anomalycase.StatusDiagnosing); err != nil {
				return nil, err
			}
			events, err := deps.Telemetry.ByIDs(ctx, anomaly.TelemetryEventIds)
			if err != nil {
				return nil, err
			}
			return &Work{
				Prompt: diagnosisPrompt(anomaly, events),
				Data:   &diagnosisWork{anomaly: anomaly, events: events},
			}, nil
		},

		Commit: func(ctx context.Context, env bus.Envelope, work *Work, response string) ([]Publication, error) {
			w := work.Data.(*diagnosisWork)
			in := normaliseDiagnosis(response, w.anomaly, latestDtcCodes(w.events))

			created, err := deps.Diagnoses.Create(ctx, in)
			if err != nil {
				return nil, fmt.Errorf("failed to commit diagnosis: %w", err)
			}
			if err := deps.Anomalies.AdvanceStatus(ctx, w.anomaly.ID, anomalycase.StatusDiagnosed); err != nil {
				return nil, err
			}
			if err := deps.Sink.MirrorDiagnosis(ctx, created); err != nil {
				slog.Warn("Warehouse mirror failed", "diagnosis_id", created.ID, "error", err)
			}
			return []Publication{{
				Topic: deps.Topics.DiagnosisComplete,
				Payload: map[string]any{
					"diagnosis_id":        created.ID,
					"case_id":             created.CaseID,
					"vehicle_id":          created.VehicleID,
					"component":           created.Component,
					"failure_probability": created.FailureProbability,
					"estimated_rul_days":  created.EstimatedRulDays,
					"severity":            string(created.Severity),
					"agent_stage":         string(models.StageDiagnosis),
				},
			}}, nil
		},
	}
	return NewRunner(desc, deps)
}

// normaliseDiagnosis parses the model output and repairs every invariant:
// component forced through the mapping table, probability clamped, RUL held
// inside the anomaly type's urgency band, severity label re-derived from the
// probability. Model failures fall back to fully deterministic values.
func normaliseDiagnosis(response string, anomaly *ent.AnomalyCase, dtcs []string) services.DiagnosisCaseInput {
	anomalyType := string(*anomaly.AnomalyType)
	severityScore := *anomaly.SeverityScore

	in := services.DiagnosisCaseInput{
		CaseID:             anomaly.ID,
		VehicleID:          anomaly.VehicleID,
		Component:          ComponentFor(anomalyType, dtcs),
		FailureProbability: FailureProbability(severityScore),
		EstimatedRulDays:   EstimatedRulDays(anomalyType, severityScore),
		ContextEventIDs:    anomaly.TelemetryEventIds,
	}

	if obj, err := llm.ExtractJSON(response); err == nil {
		if fp, ok := obj["failure_probability"].(float64); ok {
			in.FailureProbability = clamp01(fp)
		}
		if rul, ok := obj["estimated_rul_days"].(float64); ok {
			in.EstimatedRulDays = ClampRulDays(anomalyType, int(rul))
		}
	}
	in.Severity = SeverityLabel(in.FailureProbability)
	return in
}

func anomalyRankPast(status, past anomalycase.Status) bool {
	rank := map[anomalycase.Status]int{
		anomalycase.StatusPendingDiagnosis: 0,
		anomalycase.StatusDiagnosing:       1,
		anomalycase.StatusDiagnosed:        2,
		anomalycase.StatusScheduled:        3,
		anomalycase.StatusEngaged:          4,
		anomalycase.StatusCompleted:        5,
	}
	return rank[status] > rank[past]
}
