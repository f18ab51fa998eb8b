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

type manufacturingWork struct {
	feedback    *ent.FeedbackCase
	anomalyType string
	component   string
	counts      services.RecurrenceCounts
}

// NewManufacturingWorker builds the quality-feedback-loop stage runner:
// validated issues are correlated fleet-wide and turned into a CAPA
// recommendation.
func NewManufacturingWorker(deps Deps) *Runner {
	desc := Descriptor{
		Stage: models.StageManufacturing,

		Check: func(ctx context.Context, env bus.Envelope) (services.GateOutcome, string, error) {
			feedbackID := env.String("feedback_id")
			if feedbackID == "" {
				return services.GateNone, "", fmt.Errorf("%w: envelope has no feedback_id", bus.ErrNotRetryable)
			}
			return classifyDownstream(ctx, deps, func(ctx context.Context) (record, error) {
				mc, err := deps.Manufacturing.LatestForFeedback(ctx, feedbackID)
				if mc == nil {
					return record{}, err
				}
				// Manufacturing records are terminal on creation.
				return record{found: true, id: mc.ID, createdAt: mc.CreatedAt, advanced: true}, err
			})
		},

		Prepare: func(ctx context.Context, env bus.Envelope) (*Work, error) {
			feedback, err := deps.Feedbacks.Get(ctx, env.String("feedback_id"))
			if err != nil {
				return nil, skipNotFound(err)
			}

			w := &manufacturingWork{
				feedback:    feedback,
				anomalyType: env.String("anomaly_type"),
			}
			if w.anomalyType == "" {
				if anomaly, err := deps.Anomalies.Get(ctx, feedback.CaseID); err == nil && anomaly.AnomalyType != nil {
					w.anomalyType = string(*anomaly.AnomalyType)
				}
			}
			if diagnosis, err := deps.Diagnoses.LatestForCase(ctx, feedback.CaseID); err == nil {
				w.component = diagnosis.Component
			}

			w.counts, err = deps.Manufacturing.Recurrence(ctx, feedback.VehicleID, w.anomalyType, w.component)
			if err != nil {
				return nil, err
			}

			return &Work{
				Prompt: manufacturingPrompt(feedback, w.anomalyType, w.component, w.counts),
				Data:   w,
			}, nil
		},

		Commit: func(ctx context.Context, env bus.Envelope, work *Work, response string) ([]Publication, error) {
			w := work.Data.(*manufacturingWork)
			in := normaliseManufacturing(response, w)

			created, err := deps.Manufacturing.Create(ctx, in)
			if err != nil {
				return nil, fmt.Errorf("failed to commit manufacturing case: %w", err)
			}
			if err := deps.Feedbacks.MarkManufacturingComplete(ctx, w.feedback.ID); err != nil {
				return nil, err
			}
			if err := deps.Sink.MirrorManufacturing(ctx, created); err != nil {
				slog.Warn("Warehouse mirror failed", "manufacturing_id", created.ID, "error", err)
			}
			return []Publication{{
				Topic: deps.Topics.ManufacturingDone,
				Payload: map[string]any{
					"manufacturing_id":        created.ID,
					"feedback_id":             created.FeedbackID,
					"case_id":                 created.CaseID,
					"vehicle_id":              created.VehicleID,
					"issue":                   created.Issue,
					"capa_recommendation":     created.CapaRecommendation,
					"severity":                string(created.Severity),
					"recurrence_cluster_size": created.RecurrenceClusterSize,
					"confidence":              0.90,
					"agent_stage":             string(models.StageManufacturing),
				},
			}}, nil
		},
	}
	return NewRunner(desc, deps)
}

// normaliseManufacturing parses the assessment. The cluster size is never
// below the observed recurrence counts: the model may only widen a cluster,
// not shrink the evidence.
func normaliseManufacturing(response string, w *manufacturingWork) services.ManufacturingCaseInput {
	issueSubject := w.component
	if issueSubject == "" {
		issueSubject = "powertrain"
	}
	in := services.ManufacturingCaseInput{
		FeedbackID:                 w.feedback.ID,
		CaseID:                     w.feedback.CaseID,
		VehicleID:                  w.feedback.VehicleID,
		Issue:                      fmt.Sprintf("Recurring %s condition on %s", w.anomalyType, issueSubject),
		CapaRecommendation:         fmt.Sprintf("Review %s supplier quality and field-service procedure", issueSubject),
		Severity:                   "Medium",
		RecurrenceClusterSize:      w.counts.Max(),
		VehicleRecurrenceCount:     w.counts.Vehicle,
		AnomalyTypeRecurrenceCount: w.counts.AnomalyType,
		ComponentRecurrenceCount:   w.counts.Component,
	}
	if obj, err := llm.ExtractJSON(response); err == nil {
		if issue, ok := obj["issue"].(string); ok && issue != "" {
			in.Issue = issue
		}
		if capa, ok := obj["capa_recommendation"].(string); ok && capa != "" {
			in.CapaRecommendation = capa
		}
		switch s, _ := obj["severity"].(string); s {
		case "Low", "Medium", "High":
			in.Severity = s
		}
		if size, ok := obj["recurrence_cluster_size"].(float64); ok && int(size) > in.RecurrenceClusterSize {
			in.RecurrenceClusterSize = int(size)
		}
	}
	return in
}
