// Package stages hosts the pipeline stage workers. Every AI-backed stage runs
// the same seven-step skeleton (decode, early duplicate gate, prerequisite
// fetch, prompt assembly, jittered model call, parse/normalise, final gate +
// commit + publish), parameterised by a per-stage Descriptor. The
// communication stage drives a live call instead of a model and has its own
// worker.
package stages

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/config"
	"github.com/fleetsense/fleetsense/pkg/llm"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/services"
	"github.com/fleetsense/fleetsense/pkg/warehouse"
)

// Deps bundles everything a stage worker touches. All fields are required
// unless a stage documents otherwise.
type Deps struct {
	Telemetry      *services.TelemetryService
	Vehicles       *services.VehicleService
	Anomalies      *services.AnomalyService
	Diagnoses      *services.DiagnosisService
	Rcas           *services.RcaService
	Schedulings    *services.SchedulingService
	Engagements    *services.EngagementService
	Bookings       *services.BookingService
	Communications *services.CommunicationService
	Feedbacks      *services.FeedbackService
	Manufacturing  *services.ManufacturingService

	Sink      *warehouse.Sink
	Model     *llm.Retry
	Publisher *bus.Publisher
	Defaults  *config.Defaults
	Topics    *config.Topics
	Centers   *config.CenterRegistry

	// Dialer is only required by the communication worker. Nil degrades that
	// stage to record-only behaviour.
	Dialer Dialer
}

// Work carries the assembled model input from Prepare to Commit.
type Work struct {
	Prompt string
	// Data is stage-specific context (upstream records, slot offers) that
	// Commit needs again after the model call.
	Data any
}

// Publication is one completion event to emit after a successful commit.
type Publication struct {
	Topic   string
	Payload map[string]any
}

// Descriptor parameterises the worker skeleton for one stage.
type Descriptor struct {
	Stage models.Stage

	// Check classifies the duplicate state for the envelope's subject and,
	// when a downstream record already exists, returns its key. It runs
	// three times per invocation (gates before work, before the model call,
	// and before commit).
	Check func(ctx context.Context, env bus.Envelope) (services.GateOutcome, string, error)

	// Prepare loads the upstream case and assembles the model input. It
	// returns an error wrapping bus.ErrSkipped when a prerequisite is
	// missing or the upstream status has already advanced.
	Prepare func(ctx context.Context, env bus.Envelope) (*Work, error)

	// Commit parses and normalises the model response, persists the stage
	// record, advances the upstream status, mirrors to the warehouse, and
	// returns the completion events to publish.
	Commit func(ctx context.Context, env bus.Envelope, work *Work, response string) ([]Publication, error)
}

// Runner executes the skeleton for one stage. It is a bus.Handler via Handle.
type Runner struct {
	desc      Descriptor
	model     *llm.Retry
	publisher *bus.Publisher
	jitterMax time.Duration
	log       *slog.Logger

	// replaceable in tests
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func(max time.Duration) time.Duration
}

// NewRunner creates a runner for the given descriptor.
func NewRunner(desc Descriptor, deps Deps) *Runner {
	if desc.Check == nil || desc.Prepare == nil || desc.Commit == nil {
		panic("NewRunner: descriptor must define Check, Prepare and Commit")
	}
	if deps.Model == nil {
		panic("NewRunner: model must not be nil")
	}
	if deps.Publisher == nil {
		panic("NewRunner: publisher must not be nil")
	}
	return &Runner{
		desc:      desc,
		model:     deps.Model,
		publisher: deps.Publisher,
		jitterMax: deps.Defaults.JitterMax,
		log:       slog.With("stage", string(desc.Stage)),
		sleep:     sleepCtx,
		jitter:    uniformJitter,
	}
}

// Handle processes one raw bus message through the seven-step skeleton.
func (r *Runner) Handle(ctx context.Context, raw []byte) error {
	env, err := bus.Decode(raw)
	if err != nil {
		r.log.Warn("Dropping undecodable message", "error", err)
		return err
	}

	// Gate A: cheap suppression before any heavy work.
	if skip, err := r.gate(ctx, env, "A"); err != nil || skip {
		return orSkipped(err, skip)
	}

	work, err := r.desc.Prepare(ctx, env)
	if err != nil {
		return err
	}

	// Spread concurrent deliveries apart, then re-check: another worker may
	// have committed during the window.
	if r.jitterMax > 0 {
		if err := r.sleep(ctx, r.jitter(r.jitterMax)); err != nil {
			return err
		}
	}
	if skip, err := r.gate(ctx, env, "B"); err != nil || skip {
		return orSkipped(err, skip)
	}

	response, err := r.model.Generate(ctx, work.Prompt)
	if err != nil {
		return fmt.Errorf("model call failed: %w", err)
	}

	// Gate C: last look before commit. A record older than the window is a
	// genuine new occurrence and passes.
	if skip, err := r.gate(ctx, env, "C"); err != nil || skip {
		return orSkipped(err, skip)
	}

	pubs, err := r.desc.Commit(ctx, env, work, response)
	if err != nil {
		return err
	}
	for _, p := range pubs {
		if err := r.publisher.Publish(ctx, p.Topic, p.Payload); err != nil {
			return fmt.Errorf("failed to publish %s: %w", p.Topic, err)
		}
	}
	return nil
}

func (r *Runner) gate(ctx context.Context, env bus.Envelope, label string) (bool, error) {
	outcome, existing, err := r.desc.Check(ctx, env)
	if err != nil {
		return false, fmt.Errorf("duplicate gate %s failed: %w", label, err)
	}
	if outcome.Duplicate() {
		r.log.Info("Duplicate suppressed",
			"gate", label, "outcome", string(outcome), "existing", existing)
		return true, nil
	}
	return false, nil
}

func orSkipped(err error, skip bool) error {
	if err != nil {
		return err
	}
	if skip {
		return bus.ErrSkipped
	}
	return nil
}

func uniformJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(max)))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
