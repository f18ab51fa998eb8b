package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/schedulingcase"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/llm"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/services"
)

type engagementWork struct {
	scheduling *ent.SchedulingCase
	rca        *ent.RcaCase
	phone      *string
	name       *string
}

// NewEngagementWorker builds the customer-engagement stage runner. The model
// simulates the outreach dialogue; a confirmed decision mints a booking on
// the proposed slot.
func NewEngagementWorker(deps Deps) *Runner {
	desc := Descriptor{
		Stage: models.StageEngagement,

		Check: func(ctx context.Context, env bus.Envelope) (services.GateOutcome, string, error) {
			schedulingID := env.String("scheduling_id")
			if schedulingID == "" {
				return services.GateNone, "", fmt.Errorf("%w: envelope has no scheduling_id", bus.ErrNotRetryable)
			}
			return classifyDownstream(ctx, deps, func(ctx context.Context) (record, error) {
				ec, err := deps.Engagements.LatestForScheduling(ctx, schedulingID)
				if ec == nil {
					return record{}, err
				}
				// Engagement records are terminal on creation.
				return record{found: true, id: ec.ID, createdAt: ec.CreatedAt, advanced: true}, err
			})
		},

		Prepare: func(ctx context.Context, env bus.Envelope) (*Work, error) {
			sc, err := deps.Schedulings.Get(ctx, env.String("scheduling_id"))
			if err != nil {
				return nil, skipNotFound(err)
			}
			if sc.Status != schedulingcase.StatusPendingEngagement {
				return nil, fmt.Errorf("%w: scheduling %s already engaged", bus.ErrSkipped, sc.ID)
			}
			rca, err := deps.Rcas.Get(ctx, sc.RcaID)
			if err != nil {
				return nil, skipNotFound(err)
			}

			w := &engagementWork{scheduling: sc, rca: rca}
			if p := env.String("customer_phone"); p != "" {
				w.phone = &p
			}
			// Vehicle record fills in whatever the envelope did not carry.
			if v, err := deps.Vehicles.Get(ctx, sc.VehicleID); err == nil {
				if w.phone == nil {
					w.phone = v.OwnerPhone
				}
				w.name = v.OwnerName
			}

			name := ""
			if w.name != nil {
				name = *w.name
			}
			return &Work{Prompt: engagementPrompt(sc, rca, name), Data: w}, nil
		},

		Commit: func(ctx context.Context, env bus.Envelope, work *Work, response string) ([]Publication, error) {
			w := work.Data.(*engagementWork)
			decision, transcript := normaliseEngagement(response)

			in := services.EngagementCaseInput{
				SchedulingID:     w.scheduling.ID,
				RcaID:            w.rca.ID,
				CaseID:           w.scheduling.CaseID,
				VehicleID:        w.scheduling.VehicleID,
				CustomerPhone:    w.phone,
				CustomerName:     w.name,
				CustomerDecision: decision,
				Transcript:       transcript,
			}
			if decision == "confirmed" {
				booking, err := deps.Bookings.Create(ctx, services.BookingInput{
					CaseID:        w.scheduling.CaseID,
					VehicleID:     w.scheduling.VehicleID,
					ServiceCenter: w.scheduling.ServiceCenter,
					ScheduledSlot: w.scheduling.BestSlot,
					Status:        "confirmed",
				})
				if err != nil {
					return nil, fmt.Errorf("failed to mint booking: %w", err)
				}
				in.BookingID = &booking.ID
			}

			created, err := deps.Engagements.Create(ctx, in)
			if err != nil {
				return nil, fmt.Errorf("failed to commit engagement: %w", err)
			}
			if err := deps.Schedulings.MarkEngagementComplete(ctx, w.scheduling.ID); err != nil {
				return nil, err
			}
			if err := deps.Sink.MirrorEngagement(ctx, created); err != nil {
				slog.Warn("Warehouse mirror failed", "engagement_id", created.ID, "error", err)
			}

			payload := map[string]any{
				"engagement_id":     created.ID,
				"scheduling_id":     created.SchedulingID,
				"case_id":           created.CaseID,
				"vehicle_id":        created.VehicleID,
				"customer_decision": decision,
				"confidence":        0.9,
				"agent_stage":       string(models.StageEngagement),
			}
			if in.BookingID != nil {
				payload["booking_id"] = *in.BookingID
			}
			pubs := []Publication{{Topic: deps.Topics.EngagementComplete, Payload: payload}}

			// A known phone number triggers the live outbound call.
			if w.phone != nil && *w.phone != "" {
				trigger := map[string]any{
					"engagement_id":  created.ID,
					"case_id":        created.CaseID,
					"vehicle_id":     created.VehicleID,
					"customer_phone": *w.phone,
					"agent_stage":    string(models.StageCommunication),
				}
				if w.name != nil {
					trigger["customer_name"] = *w.name
				}
				pubs = append(pubs, Publication{Topic: deps.Topics.CommunicationTrigger, Payload: trigger})
			}
			return pubs, nil
		},
	}
	return NewRunner(desc, deps)
}

// normaliseEngagement extracts the customer decision and transcript from the
// simulated dialogue. Anything outside the closed decision set reads as
// no_response.
func normaliseEngagement(response string) (string, []models.DialogueTurn) {
	decision := "no_response"
	var transcript []models.DialogueTurn

	obj, err := llm.ExtractJSON(response)
	if err != nil {
		return decision, transcript
	}
	switch d, _ := obj["customer_decision"].(string); d {
	case "confirmed", "declined", "no_response":
		decision = d
	}
	if turns, ok := obj["transcript"].([]any); ok {
		for _, t := range turns {
			m, ok := t.(map[string]any)
			if !ok {
				continue
			}
			speaker, _ := m["speaker"].(string)
			text, _ := m["text"].(string)
			if text == "" {
				continue
			}
			if speaker != "agent" && speaker != "customer" {
				speaker = "agent"
			}
			transcript = append(transcript, models.DialogueTurn{Speaker: speaker, Text: text})
		}
	}
	return decision, transcript
}
