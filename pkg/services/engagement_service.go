package services

import (
	"context"
	"fmt"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/engagementcase"
	"github.com/fleetsense/fleetsense/pkg/models"
)

// EngagementCaseInput carries the fields of a new engagement case. Engagement
// cases are written once, already completed.
type EngagementCaseInput struct {
	EngagementID     string
	SchedulingID     string
	RcaID            string
	CaseID           string
	VehicleID        string
	CustomerPhone    *string
	CustomerName     *string
	CustomerDecision string
	BookingID        *string
	Transcript       []models.DialogueTurn
}

// EngagementService persists customer-engagement cases.
type EngagementService struct {
	client *ent.Client
}

// NewEngagementService creates a new EngagementService.
func NewEngagementService(client *ent.Client) *EngagementService {
	if client == nil {
		panic("NewEngagementService: client must not be nil")
	}
	return &EngagementService{client: client}
}

// Create persists a new engagement case. A booking ID must accompany a
// confirmed decision and must be absent otherwise.
func (s *EngagementService) Create(ctx context.Context, in EngagementCaseInput) (*ent.EngagementCase, error) {
	if in.SchedulingID == "" {
		return nil, NewValidationError("scheduling_id", "scheduling_id is required")
	}
	decision := engagementcase.CustomerDecision(in.CustomerDecision)
	switch decision {
	case engagementcase.CustomerDecisionConfirmed:
		if in.BookingID == nil || *in.BookingID == "" {
			return nil, NewValidationError("booking_id", "required when customer_decision is confirmed")
		}
	case engagementcase.CustomerDecisionDeclined, engagementcase.CustomerDecisionNoResponse:
		if in.BookingID != nil {
			return nil, NewValidationError("booking_id", "only allowed when customer_decision is confirmed")
		}
	default:
		return nil, NewValidationError("customer_decision", fmt.Sprintf("unknown decision %q", in.CustomerDecision))
	}

	id := in.EngagementID
	if id == "" {
		id = models.NewEngagementID()
	}

	builder := s.client.EngagementCase.Create().
		SetID(id).
		SetSchedulingID(in.SchedulingID).
		SetRcaID(in.RcaID).
		SetCaseID(in.CaseID).
		SetVehicleID(in.VehicleID).
		SetCustomerDecision(decision).
		SetTranscript(models.TurnsToJSON(in.Transcript))
	if in.CustomerPhone != nil {
		builder.SetCustomerPhone(*in.CustomerPhone)
	}
	if in.CustomerName != nil {
		builder.SetCustomerName(*in.CustomerName)
	}
	if in.BookingID != nil {
		builder.SetBookingID(*in.BookingID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: engagement %s", ErrAlreadyExists, id)
		}
		return nil, fmt.Errorf("failed to create engagement case: %w", err)
	}
	return created, nil
}

// Get returns the engagement case or ErrNotFound.
func (s *EngagementService) Get(ctx context.Context, engagementID string) (*ent.EngagementCase, error) {
	e, err := s.client.EngagementCase.Get(ctx, engagementID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: engagement %s", ErrNotFound, engagementID)
		}
		return nil, fmt.Errorf("failed to get engagement %s: %w", engagementID, err)
	}
	return e, nil
}

// LatestForScheduling returns the newest engagement for a scheduling case, or
// nil. Because engagement cases are terminal, any hit is an advanced
// duplicate.
func (s *EngagementService) LatestForScheduling(ctx context.Context, schedulingID string) (*ent.EngagementCase, error) {
	e, err := s.client.EngagementCase.Query().
		Where(engagementcase.SchedulingIDEQ(schedulingID)).
		Order(ent.Desc(engagementcase.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query engagement for scheduling %s: %w", schedulingID, err)
	}
	return e, nil
}
