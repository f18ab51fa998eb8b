package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/diagnosiscase"
	"github.com/fleetsense/fleetsense/ent/rcacase"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/llm"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/services"
)

type rcaWork struct {
	diagnosis *ent.DiagnosisCase
	events    []*ent.TelemetryEvent
}

// NewRcaWorker builds the root-cause-analysis stage runner, keyed on the
// diagnosis record.
func NewRcaWorker(deps Deps) *Runner {
	desc := Descriptor{
		Stage: models.StageRca,

		Check: func(ctx context.Context, env bus.Envelope) (services.GateOutcome, string, error) {
			diagnosisID := env.String("diagnosis_id")
			if diagnosisID == "" {
				return services.GateNone, "", fmt.Errorf("%w: envelope has no diagnosis_id", bus.ErrNotRetryable)
			}
			return classifyDownstream(ctx, deps, func(ctx context.Context) (record, error) {
				r, err := deps.Rcas.LatestForDiagnosis(ctx, diagnosisID)
				if r == nil {
					return record{}, err
				}
				return record{
					found:     true,
					id:        r.ID,
					createdAt: r.CreatedAt,
					advanced:  r.Status != rcacase.StatusPendingScheduling,
				}, err
			})
		},

		Prepare: func(ctx context.Context, env bus.Envelope) (*Work, error) {
			diagnosis, err := deps.Diagnoses.Get(ctx, env.String("diagnosis_id"))
			if err != nil {
				return nil, skipNotFound(err)
			}
			if diagnosis.Status != diagnosiscase.StatusPendingRca {
				return nil, fmt.Errorf("%w: diagnosis %s already analysed", bus.ErrSkipped, diagnosis.ID)
			}
			events, err := deps.Telemetry.ByIDs(ctx, diagnosis.ContextEventIds)
			if err != nil {
				return nil, err
			}
			return &Work{
				Prompt: rcaPrompt(diagnosis, events),
				Data:   &rcaWork{diagnosis: diagnosis, events: events},
			}, nil
		},

		Commit: func(ctx context.Context, env bus.Envelope, work *Work, response string) ([]Publication, error) {
			w := work.Data.(*rcaWork)
			in := normaliseRca(response, w.diagnosis)

			created, err := deps.Rcas.Create(ctx, in)
			if err != nil {
				return nil, fmt.Errorf("failed to commit rca: %w", err)
			}
			if err := deps.Diagnoses.AdvanceStatus(ctx, w.diagnosis.ID, diagnosiscase.StatusRcaComplete); err != nil {
				return nil, err
			}
			if err := deps.Sink.MirrorRca(ctx, created); err != nil {
				slog.Warn("Warehouse mirror failed", "rca_id", created.ID, "error", err)
			}
			return []Publication{{
				Topic: deps.Topics.RcaComplete,
				Payload: map[string]any{
					"rca_id":             created.ID,
					"diagnosis_id":       created.DiagnosisID,
					"case_id":            created.CaseID,
					"vehicle_id":         created.VehicleID,
					"root_cause":         created.RootCause,
					"confidence":         created.Confidence,
					"recommended_action": created.RecommendedAction,
					"capa_type":          string(created.CapaType),
					"agent_stage":        string(models.StageRca),
				},
			}}, nil
		},
	}
	return NewRunner(desc, deps)
}

// normaliseRca parses the model output. Confidence is clamped but otherwise
// trusted, low values included: low confidence routes to human review, which
// is how the system learns where the model is weak. Everything else gets a
// deterministic fallback.
func normaliseRca(response string, diagnosis *ent.DiagnosisCase) services.RcaCaseInput {
	in := services.RcaCaseInput{
		DiagnosisID:       diagnosis.ID,
		CaseID:            diagnosis.CaseID,
		VehicleID:         diagnosis.VehicleID,
		RootCause:         fmt.Sprintf("Suspected degradation of %s", diagnosis.Component),
		Confidence:        0.5,
		RecommendedAction: fmt.Sprintf("Inspect and service %s", diagnosis.Component),
		CapaType:          string(rcacase.CapaTypeCorrective),
	}

	obj, err := llm.ExtractJSON(response)
	if err != nil {
		return in
	}
	if rc, ok := obj["root_cause"].(string); ok && rc != "" {
		in.RootCause = rc
	}
	if c, ok := obj["confidence"].(float64); ok {
		in.Confidence = clamp01(c)
	}
	if ra, ok := obj["recommended_action"].(string); ok && ra != "" {
		in.RecommendedAction = ra
	}
	if capa, ok := obj["capa_type"].(string); ok {
		if capa == string(rcacase.CapaTypeCorrective) || capa == string(rcacase.CapaTypePreventive) {
			in.CapaType = capa
		}
	}
	return in
}
