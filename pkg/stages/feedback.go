package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/feedbackcase"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/llm"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/services"
)

type feedbackWork struct {
	booking         *ent.Booking
	anomalyType     string
	technicianNotes string
	customerRating  *int
}

// NewFeedbackWorker builds the post-service validation stage runner. It
// compares the service outcome against the original detection and scores the
// customer effort.
func NewFeedbackWorker(deps Deps) *Runner {
	desc := Descriptor{
		Stage: models.StageFeedback,

		Check: func(ctx context.Context, env bus.Envelope) (services.GateOutcome, string, error) {
			bookingID := env.String("booking_id")
			if bookingID == "" {
				return services.GateNone, "", fmt.Errorf("%w: envelope has no booking_id", bus.ErrNotRetryable)
			}
			return classifyDownstream(ctx, deps, func(ctx context.Context) (record, error) {
				fc, err := deps.Feedbacks.LatestForBooking(ctx, bookingID)
				if fc == nil {
					return record{}, err
				}
				return record{
					found:     true,
					id:        fc.ID,
					createdAt: fc.CreatedAt,
					advanced:  fc.Status != feedbackcase.StatusPendingManufacturing,
				}, err
			})
		},

		Prepare: func(ctx context.Context, env bus.Envelope) (*Work, error) {
			booking, err := deps.Bookings.Get(ctx, env.String("booking_id"))
			if err != nil {
				return nil, skipNotFound(err)
			}

			w := &feedbackWork{
				booking:         booking,
				technicianNotes: env.String("technician_notes"),
			}
			if r, ok := env.Int("customer_rating"); ok {
				w.customerRating = &r
			}
			if anomaly, err := deps.Anomalies.Get(ctx, booking.CaseID); err == nil && anomaly.AnomalyType != nil {
				w.anomalyType = string(*anomaly.AnomalyType)
			}

			// Post-service telemetry: explicit event IDs from the operator
			// request, else whatever the vehicle reported since the service.
			var events []*ent.TelemetryEvent
			if ids := env.Strings("post_service_event_ids"); len(ids) > 0 {
				events, err = deps.Telemetry.ByIDs(ctx, ids)
			} else {
				events, err = deps.Telemetry.RecentForVehicle(ctx, booking.VehicleID, deps.Defaults.TelemetryWindow)
			}
			if err != nil {
				return nil, err
			}

			return &Work{
				Prompt: feedbackPrompt(w.anomalyType, w.technicianNotes, w.customerRating, events),
				Data:   w,
			}, nil
		},

		Commit: func(ctx context.Context, env bus.Envelope, work *Work, response string) ([]Publication, error) {
			w := work.Data.(*feedbackWork)
			in := normaliseFeedback(response, w)

			created, err := deps.Feedbacks.Create(ctx, in)
			if err != nil {
				return nil, fmt.Errorf("failed to commit feedback: %w", err)
			}
			if err := deps.Bookings.MarkFeedbackComplete(ctx, w.booking.ID); err != nil {
				return nil, err
			}
			if err := deps.Sink.MirrorFeedback(ctx, created); err != nil {
				slog.Warn("Warehouse mirror failed", "feedback_id", created.ID, "error", err)
			}
			return []Publication{{
				Topic: deps.Topics.FeedbackComplete,
				Payload: map[string]any{
					"feedback_id":         created.ID,
					"booking_id":          created.BookingID,
					"case_id":             created.CaseID,
					"vehicle_id":          created.VehicleID,
					"cei_score":           created.CeiScore,
					"validation_label":    string(created.ValidationLabel),
					"recommended_retrain": created.RecommendedRetrain,
					"anomaly_type":        w.anomalyType,
					"agent_stage":         string(models.StageFeedback),
				},
			}}, nil
		},
	}
	return NewRunner(desc, deps)
}

// normaliseFeedback parses the evaluation. The retrain flag is never taken
// from the model: it is a pure function of the validation label.
func normaliseFeedback(response string, w *feedbackWork) services.FeedbackCaseInput {
	in := services.FeedbackCaseInput{
		BookingID:       w.booking.ID,
		CaseID:          w.booking.CaseID,
		VehicleID:       w.booking.VehicleID,
		CeiScore:        3.0,
		ValidationLabel: "Correct",
		TechnicianNotes: w.technicianNotes,
		CustomerRating:  w.customerRating,
	}
	if obj, err := llm.ExtractJSON(response); err == nil {
		if cei, ok := obj["cei_score"].(float64); ok {
			in.CeiScore = clampCei(cei)
		}
		switch l, _ := obj["validation_label"].(string); l {
		case "Correct", "Recurring", "Incorrect":
			in.ValidationLabel = l
		}
	}
	in.RecommendedRetrain = in.ValidationLabel == "Recurring" || in.ValidationLabel == "Incorrect"
	return in
}

func clampCei(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
