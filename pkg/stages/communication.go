package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/communicationcase"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/masking"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/services"
)

// Dialer starts the outbound provider call and returns its correlator SID.
type Dialer interface {
	StartCall(ctx context.Context, to string) (string, error)
}

// CommunicationWorker drives the live-call stage. It does not run the model
// and needs no jitter: the expensive side effect is the provider call, and
// the duplicate gate in front of it is enough. The conversation itself is
// advanced later by the telephony webhook.
type CommunicationWorker struct {
	deps Deps
	log  *slog.Logger
}

// NewCommunicationWorker builds the live-call worker.
func NewCommunicationWorker(deps Deps) *CommunicationWorker {
	if deps.Publisher == nil {
		panic("NewCommunicationWorker: publisher must not be nil")
	}
	return &CommunicationWorker{
		deps: deps,
		log:  slog.With("stage", string(models.StageCommunication)),
	}
}

// Handle processes one communication-trigger message: resolve the phone,
// persist the case, place the call, and park the call context for the
// webhook. Terminal outcomes are published by the webhook, except when the
// call cannot be placed at all.
func (w *CommunicationWorker) Handle(ctx context.Context, raw []byte) error {
	env, err := bus.Decode(raw)
	if err != nil {
		w.log.Warn("Dropping undecodable message", "error", err)
		return err
	}
	engagementID := env.String("engagement_id")
	if engagementID == "" {
		return fmt.Errorf("%w: envelope has no engagement_id", bus.ErrNotRetryable)
	}

	outcome, existing, err := classifyDownstream(ctx, w.deps, func(ctx context.Context) (record, error) {
		cc, err := w.deps.Communications.LatestForEngagement(ctx, engagementID)
		if cc == nil {
			return record{}, err
		}
		terminal := cc.CallStatus == communicationcase.CallStatusCompleted ||
			cc.CallStatus == communicationcase.CallStatusFailed
		return record{found: true, id: cc.ID, createdAt: cc.CreatedAt, advanced: terminal}, err
	})
	if err != nil {
		return fmt.Errorf("duplicate gate failed: %w", err)
	}
	if outcome.Duplicate() {
		w.log.Info("Duplicate suppressed", "outcome", string(outcome), "existing", existing)
		return bus.ErrSkipped
	}

	eng, err := w.deps.Engagements.Get(ctx, engagementID)
	if err != nil {
		return skipNotFound(err)
	}

	phone, name := w.resolveContact(ctx, env, eng)
	if phone == "" {
		return fmt.Errorf("%w: no customer phone for engagement %s", bus.ErrSkipped, engagementID)
	}
	dialable, err := NormalizePhone(phone, w.deps.Defaults.DefaultCountryCode)
	if err != nil {
		return fmt.Errorf("%w: %v", bus.ErrNotRetryable, err)
	}

	in := services.CommunicationCaseInput{
		EngagementID:  engagementID,
		CaseID:        eng.CaseID,
		VehicleID:     eng.VehicleID,
		CustomerPhone: dialable,
	}
	if name != "" {
		in.CustomerName = &name
	}
	created, err := w.deps.Communications.Create(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to create communication case: %w", err)
	}
	if err := w.deps.Sink.MirrorCommunication(ctx, created); err != nil {
		w.log.Warn("Warehouse mirror failed", "communication_id", created.ID, "error", err)
	}

	if w.deps.Dialer == nil {
		w.log.Warn("Telephony not configured, closing case without call",
			"communication_id", created.ID)
		return w.failCall(ctx, created, eng)
	}

	sid, err := w.deps.Dialer.StartCall(ctx, dialable)
	if err != nil {
		w.log.Error("Outbound call failed to start",
			"communication_id", created.ID, "error", err)
		return w.failCall(ctx, created, eng)
	}
	if err := w.deps.Communications.AttachCall(ctx, created.ID, sid); err != nil {
		return err
	}
	ctxIn := services.CallContextInput{
		CallSid:         sid,
		CommunicationID: created.ID,
		EngagementID:    engagementID,
		CaseID:          eng.CaseID,
		VehicleID:       eng.VehicleID,
		CustomerPhone:   dialable,
		CustomerName:    name,
	}
	if err := w.deps.Communications.CreateCallContext(ctx, ctxIn); err != nil {
		return err
	}
	w.log.Info("Outbound call placed",
		"communication_id", created.ID, "call_sid", sid,
		"vehicle_id", eng.VehicleID, "customer_phone", masking.Phone(dialable))
	return nil
}

// resolveContact prefers the envelope, then the engagement record, then the
// vehicle record.
func (w *CommunicationWorker) resolveContact(ctx context.Context, env bus.Envelope, eng *ent.EngagementCase) (phone, name string) {
	phone = env.String("customer_phone")
	name = env.String("customer_name")
	if phone == "" && eng.CustomerPhone != nil {
		phone = *eng.CustomerPhone
	}
	if name == "" && eng.CustomerName != nil {
		name = *eng.CustomerName
	}
	if phone == "" || name == "" {
		if v, err := w.deps.Vehicles.Get(ctx, eng.VehicleID); err == nil {
			if phone == "" && v.OwnerPhone != nil {
				phone = *v.OwnerPhone
			}
			if name == "" && v.OwnerName != nil {
				name = *v.OwnerName
			}
		}
	}
	return phone, name
}

// failCall marks the case failed and publishes the terminal event the webhook
// will never get to emit.
func (w *CommunicationWorker) failCall(ctx context.Context, created *ent.CommunicationCase, eng *ent.EngagementCase) error {
	if err := w.deps.Communications.SetCallStatus(ctx, created.ID, communicationcase.CallStatusFailed); err != nil {
		return err
	}
	payload := map[string]any{
		"communication_id": created.ID,
		"engagement_id":    created.EngagementID,
		"case_id":          created.CaseID,
		"vehicle_id":       created.VehicleID,
		"outcome":          nil,
		"agent_stage":      string(models.StageCommunication),
	}
	if eng.BookingID != nil {
		payload["booking_id"] = *eng.BookingID
	}
	return w.deps.Publisher.Publish(ctx, w.deps.Topics.CommunicationDone, payload)
}
