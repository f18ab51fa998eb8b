package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/schedulingcase"
	"github.com/fleetsense/fleetsense/pkg/models"
)

// SchedulingCaseInput carries the fields of a new scheduling case.
type SchedulingCaseInput struct {
	SchedulingID  string
	RcaID         string
	DiagnosisID   string
	CaseID        string
	VehicleID     string
	BestSlot      time.Time
	ServiceCenter string
	SlotType      string
	FallbackSlots []string
}

// SchedulingService persists scheduling cases and answers the slot-occupancy
// queries the slot expander subtracts from center capacity.
type SchedulingService struct {
	client *ent.Client
}

// NewSchedulingService creates a new SchedulingService.
func NewSchedulingService(client *ent.Client) *SchedulingService {
	if client == nil {
		panic("NewSchedulingService: client must not be nil")
	}
	return &SchedulingService{client: client}
}

// Create persists a new scheduling case.
func (s *SchedulingService) Create(ctx context.Context, in SchedulingCaseInput) (*ent.SchedulingCase, error) {
	if in.RcaID == "" {
		return nil, NewValidationError("rca_id", "rca_id is required")
	}
	if in.BestSlot.IsZero() {
		return nil, NewValidationError("best_slot", "best_slot is required")
	}
	if in.ServiceCenter == "" {
		return nil, NewValidationError("service_center", "service_center is required")
	}
	if len(in.FallbackSlots) < 2 {
		return nil, NewValidationError("fallback_slots", "at least two fallback slots are required")
	}

	id := in.SchedulingID
	if id == "" {
		id = models.NewSchedulingID()
	}

	created, err := s.client.SchedulingCase.Create().
		SetID(id).
		SetRcaID(in.RcaID).
		SetDiagnosisID(in.DiagnosisID).
		SetCaseID(in.CaseID).
		SetVehicleID(in.VehicleID).
		SetBestSlot(in.BestSlot.UTC()).
		SetServiceCenter(in.ServiceCenter).
		SetSlotType(schedulingcase.SlotType(in.SlotType)).
		SetFallbackSlots(in.FallbackSlots).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: scheduling %s", ErrAlreadyExists, id)
		}
		return nil, fmt.Errorf("failed to create scheduling case: %w", err)
	}
	return created, nil
}

// Get returns the scheduling case or ErrNotFound.
func (s *SchedulingService) Get(ctx context.Context, schedulingID string) (*ent.SchedulingCase, error) {
	sc, err := s.client.SchedulingCase.Get(ctx, schedulingID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: scheduling %s", ErrNotFound, schedulingID)
		}
		return nil, fmt.Errorf("failed to get scheduling %s: %w", schedulingID, err)
	}
	return sc, nil
}

// LatestForRca returns the newest scheduling case for an RCA, or nil.
func (s *SchedulingService) LatestForRca(ctx context.Context, rcaID string) (*ent.SchedulingCase, error) {
	sc, err := s.client.SchedulingCase.Query().
		Where(schedulingcase.RcaIDEQ(rcaID)).
		Order(ent.Desc(schedulingcase.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query scheduling for rca %s: %w", rcaID, err)
	}
	return sc, nil
}

// MarkEngagementComplete records that the engagement stage consumed this case.
func (s *SchedulingService) MarkEngagementComplete(ctx context.Context, schedulingID string) error {
	n, err := s.client.SchedulingCase.Update().
		Where(
			schedulingcase.IDEQ(schedulingID),
			schedulingcase.StatusEQ(schedulingcase.StatusPendingEngagement),
		).
		SetStatus(schedulingcase.StatusEngagementComplete).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete scheduling %s: %w", schedulingID, err)
	}
	if n == 0 {
		exists, err := s.client.SchedulingCase.Query().Where(schedulingcase.IDEQ(schedulingID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check scheduling %s: %w", schedulingID, err)
		}
		if !exists {
			return fmt.Errorf("%w: scheduling %s", ErrNotFound, schedulingID)
		}
	}
	return nil
}
