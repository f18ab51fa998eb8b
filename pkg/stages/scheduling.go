package stages

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/rcacase"
	"github.com/fleetsense/fleetsense/ent/schedulingcase"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/llm"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/services"
)

// minSlotOffers is best_slot plus the required two fallbacks.
const minSlotOffers = 3

type schedulingWork struct {
	rca       *ent.RcaCase
	diagnosis *ent.DiagnosisCase
	offers    []SlotOffer
}

// NewSchedulingWorker builds the appointment-planning stage runner. Slot
// availability is computed deterministically from the center registry; the
// model only picks among offered slots.
func NewSchedulingWorker(deps Deps) *Runner {
	desc := Descriptor{
		Stage: models.StageScheduling,

		Check: func(ctx context.Context, env bus.Envelope) (services.GateOutcome, string, error) {
			rcaID := env.String("rca_id")
			if rcaID == "" {
				return services.GateNone, "", fmt.Errorf("%w: envelope has no rca_id", bus.ErrNotRetryable)
			}
			return classifyDownstream(ctx, deps, func(ctx context.Context) (record, error) {
				sc, err := deps.Schedulings.LatestForRca(ctx, rcaID)
				if sc == nil {
					return record{}, err
				}
				return record{
					found:     true,
					id:        sc.ID,
					createdAt: sc.CreatedAt,
					advanced:  sc.Status != schedulingcase.StatusPendingEngagement,
				}, err
			})
		},

		Prepare: func(ctx context.Context, env bus.Envelope) (*Work, error) {
			rca, err := deps.Rcas.Get(ctx, env.String("rca_id"))
			if err != nil {
				return nil, skipNotFound(err)
			}
			if rca.Status != rcacase.StatusPendingScheduling {
				return nil, fmt.Errorf("%w: rca %s already scheduled", bus.ErrSkipped, rca.ID)
			}
			diagnosis, err := deps.Diagnoses.Get(ctx, rca.DiagnosisID)
			if err != nil {
				return nil, skipNotFound(err)
			}
			offers, err := offerSlots(ctx, deps, partFor[diagnosis.Component], time.Now().UTC(), minSlotOffers)
			if err != nil {
				return nil, err
			}
			if len(offers) < minSlotOffers {
				return nil, fmt.Errorf("only %d open slots across all centers, need %d", len(offers), minSlotOffers)
			}
			return &Work{
				Prompt: schedulingPrompt(rca, diagnosis, offers),
				Data:   &schedulingWork{rca: rca, diagnosis: diagnosis, offers: offers},
			}, nil
		},

		Commit: func(ctx context.Context, env bus.Envelope, work *Work, response string) ([]Publication, error) {
			w := work.Data.(*schedulingWork)
			in := normaliseScheduling(response, w)

			created, err := deps.Schedulings.Create(ctx, in)
			if err != nil {
				return nil, fmt.Errorf("failed to commit scheduling: %w", err)
			}
			if err := deps.Rcas.AdvanceStatus(ctx, w.rca.ID, rcacase.StatusScheduled); err != nil {
				return nil, err
			}
			if err := deps.Sink.MirrorScheduling(ctx, created); err != nil {
				slog.Warn("Warehouse mirror failed", "scheduling_id", created.ID, "error", err)
			}
			return []Publication{{
				Topic: deps.Topics.SchedulingComplete,
				Payload: map[string]any{
					"scheduling_id":  created.ID,
					"rca_id":         created.RcaID,
					"case_id":        created.CaseID,
					"vehicle_id":     created.VehicleID,
					"best_slot":      created.BestSlot.UTC().Format(time.RFC3339),
					"service_center": created.ServiceCenter,
					"slot_type":      string(created.SlotType),
					"fallback_slots": created.FallbackSlots,
					"agent_stage":    string(models.StageScheduling),
				},
			}}, nil
		},
	}
	return NewRunner(desc, deps)
}

// normaliseScheduling resolves the model's pick against the offered slots.
// An out-of-set pick falls back to the first offer. Fallback slots are the
// next two openings at the chosen center, then any center.
func normaliseScheduling(response string, w *schedulingWork) services.SchedulingCaseInput {
	best := w.offers[0]
	if obj, err := llm.ExtractJSON(response); err == nil {
		slot, _ := obj["best_slot"].(string)
		center, _ := obj["service_center"].(string)
		if picked, ok := matchOffer(w.offers, slot, center); ok {
			best = picked
		}
	}

	fallbacks := make([]string, 0, 2)
	// Same-center openings first.
	for _, o := range w.offers {
		if len(fallbacks) == 2 {
			break
		}
		if o.Center.ID == best.Center.ID && !o.Start.Equal(best.Start) {
			fallbacks = append(fallbacks, o.Start.Format(time.RFC3339))
		}
	}
	for _, o := range w.offers {
		if len(fallbacks) == 2 {
			break
		}
		if o.Center.ID != best.Center.ID {
			fallbacks = append(fallbacks, o.Start.Format(time.RFC3339))
		}
	}

	return services.SchedulingCaseInput{
		RcaID:         w.rca.ID,
		DiagnosisID:   w.rca.DiagnosisID,
		CaseID:        w.rca.CaseID,
		VehicleID:     w.rca.VehicleID,
		BestSlot:      best.Start,
		ServiceCenter: best.Center.ID,
		SlotType:      SlotTypeFor(w.diagnosis.EstimatedRulDays),
		FallbackSlots: fallbacks,
	}
}

func matchOffer(offers []SlotOffer, slot, center string) (SlotOffer, bool) {
	t, err := time.Parse(time.RFC3339, slot)
	if err != nil {
		return SlotOffer{}, false
	}
	for _, o := range offers {
		if o.Start.Equal(t) && (center == "" || center == o.Center.ID) {
			return o, true
		}
	}
	return SlotOffer{}, false
}
