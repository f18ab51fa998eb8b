// Package orchestrator is the routing brain of the pipeline. It consumes
// every completion topic, resolves the producing stage and its confidence,
// gates the critical stages behind human review, and republishes passing
// envelopes on the successor stage's dispatch topic. It makes no model calls.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/config"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/services"
	"github.com/fleetsense/fleetsense/pkg/warehouse"
)

// defaultConfidence is assumed for stages that define no confidence field.
const defaultConfidence = 0.90

// Notifier is told about new human-review records. Implementations must be
// safe to call concurrently; failures are the implementation's problem, the
// orchestrator does not retry notifications.
type Notifier interface {
	ReviewCreated(ctx context.Context, review *ent.HumanReview)
}

// Deps bundles the orchestrator's collaborators. Notifier may be nil.
type Deps struct {
	Pipeline  *services.PipelineService
	Anomalies *services.AnomalyService
	Diagnoses *services.DiagnosisService
	Rcas      *services.RcaService

	Sink      *warehouse.Sink
	Publisher *bus.Publisher
	Notifier  Notifier
	Defaults  *config.Defaults
	Topics    *config.Topics
}

// Orchestrator routes one completion event per Handle call.
type Orchestrator struct {
	deps Deps
	log  *slog.Logger
}

// New builds the orchestrator.
func New(deps Deps) *Orchestrator {
	if deps.Pipeline == nil {
		panic("orchestrator.New: pipeline service must not be nil")
	}
	if deps.Publisher == nil {
		panic("orchestrator.New: publisher must not be nil")
	}
	return &Orchestrator{
		deps: deps,
		log:  slog.With("component", "orchestrator"),
	}
}

// successors is the static routing table. Stages absent here are terminal.
var successors = map[models.Stage]models.Stage{
	models.StageDataAnalysis: models.StageDiagnosis,
	models.StageDiagnosis:    models.StageRca,
	models.StageRca:          models.StageScheduling,
	models.StageScheduling:   models.StageEngagement,
	models.StageFeedback:     models.StageManufacturing,
}

// gatedStages are the ones whose confidence is checked against the threshold.
var gatedStages = map[models.Stage]bool{
	models.StageDataAnalysis: true,
	models.StageDiagnosis:    true,
	models.StageRca:          true,
}

// Handle is the bus handler for every completion topic.
func (o *Orchestrator) Handle(ctx context.Context, raw []byte) error {
	env, err := bus.Decode(raw)
	if err != nil {
		o.log.Warn("Dropping undecodable message", "error", err)
		return err
	}

	stage, ok := inferStage(env)
	if !ok {
		return fmt.Errorf("%w: cannot infer producing stage", bus.ErrNotRetryable)
	}
	caseID := env.String("case_id")
	if caseID == "" {
		return fmt.Errorf("%w: envelope has no case_id", bus.ErrNotRetryable)
	}

	confidence := o.resolveConfidence(ctx, stage, env)
	log := o.log.With("case_id", caseID, "stage", string(stage), "confidence", confidence)

	if gatedStages[stage] && confidence < o.deps.Defaults.ConfidenceThreshold {
		review, err := o.deps.Pipeline.CreateReview(ctx, caseID, stage, confidence, env)
		if err != nil {
			return fmt.Errorf("failed to park decision for review: %w", err)
		}
		log.Warn("Confidence below threshold, routing stopped",
			"review_id", review.ID, "threshold", o.deps.Defaults.ConfidenceThreshold)
		if o.deps.Notifier != nil {
			o.deps.Notifier.ReviewCreated(ctx, review)
		}
		return o.recordState(ctx, caseID, stage, nil, confidence)
	}

	next, routed := successors[stage]
	if routed {
		out := env.Clone()
		out["agent_stage"] = string(next)
		topic := o.dispatchTopic(next)
		if err := o.deps.Publisher.Publish(ctx, topic, out); err != nil {
			return fmt.Errorf("failed to dispatch to %s: %w", topic, err)
		}
		log.Info("Routed to next stage", "next_stage", string(next))
		return o.recordState(ctx, caseID, stage, &next, confidence)
	}

	log.Info("Pipeline path complete")
	return o.recordState(ctx, caseID, stage, nil, confidence)
}

// recordState upserts the pipeline state and mirrors it best-effort.
func (o *Orchestrator) recordState(ctx context.Context, caseID string, stage models.Stage, next *models.Stage, confidence float64) error {
	if err := o.deps.Pipeline.UpsertState(ctx, caseID, stage, next, confidence); err != nil {
		return err
	}
	if o.deps.Sink == nil {
		return nil
	}
	state, err := o.deps.Pipeline.GetState(ctx, caseID)
	if err != nil {
		o.log.Warn("Pipeline state readback failed", "case_id", caseID, "error", err)
		return nil
	}
	if err := o.deps.Sink.MirrorPipelineState(ctx, state); err != nil {
		o.log.Warn("Warehouse mirror failed", "case_id", caseID, "error", err)
	}
	return nil
}

// dispatchTopic maps a successor stage to its input topic.
func (o *Orchestrator) dispatchTopic(stage models.Stage) string {
	t := o.deps.Topics
	switch stage {
	case models.StageDiagnosis:
		return t.DiagnosisDispatch
	case models.StageRca:
		return t.RcaDispatch
	case models.StageScheduling:
		return t.SchedulingDispatch
	case models.StageEngagement:
		return t.EngagementDispatch
	case models.StageManufacturing:
		return t.ManufacturingDispatch
	default:
		panic(fmt.Sprintf("no dispatch topic for stage %s", stage))
	}
}

// inferStage resolves the producing stage: the agent_stage tag when present
// and valid, otherwise the envelope's key structure. Key checks run from the
// end of the pipeline backwards because downstream envelopes carry their
// ancestors' keys too.
func inferStage(env bus.Envelope) (models.Stage, bool) {
	if tagged := models.Stage(env.String("agent_stage")); tagged.Valid() {
		return tagged, true
	}
	switch {
	case env.Has("manufacturing_id"):
		return models.StageManufacturing, true
	case env.Has("feedback_id"):
		return models.StageFeedback, true
	case env.Has("communication_id"):
		return models.StageCommunication, true
	case env.Has("engagement_id"):
		return models.StageEngagement, true
	case env.Has("scheduling_id"):
		return models.StageScheduling, true
	case env.Has("rca_id"):
		return models.StageRca, true
	case env.Has("diagnosis_id"):
		return models.StageDiagnosis, true
	case env.Has("anomaly_type") && env.Has("case_id"):
		return models.StageDataAnalysis, true
	}
	return "", false
}

// resolveConfidence prefers the envelope, then the producing case record,
// then the default. The diagnosis stage publishes no confidence of its own;
// its failure probability stands in for it, matching how downstream
// consumers have always read it.
func (o *Orchestrator) resolveConfidence(ctx context.Context, stage models.Stage, env bus.Envelope) float64 {
	if c, ok := env.Float("confidence"); ok {
		return c
	}
	switch stage {
	case models.StageDataAnalysis:
		if a, err := o.deps.Anomalies.Get(ctx, env.String("case_id")); err == nil && a.SeverityScore != nil {
			return 1 - *a.SeverityScore
		}
	case models.StageDiagnosis:
		if id := env.String("diagnosis_id"); id != "" {
			if d, err := o.deps.Diagnoses.Get(ctx, id); err == nil {
				return d.FailureProbability
			}
		}
	case models.StageRca:
		if id := env.String("rca_id"); id != "" {
			if r, err := o.deps.Rcas.Get(ctx, id); err == nil {
				return r.Confidence
			}
		}
	}
	return defaultConfidence
}
