package services

import (
	"context"
	"fmt"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/rcacase"
	"github.com/fleetsense/fleetsense/pkg/models"
)

// RcaCaseInput carries the fields of a new root-cause-analysis case.
type RcaCaseInput struct {
	RcaID             string
	DiagnosisID       string
	CaseID            string
	VehicleID         string
	RootCause         string
	Confidence        float64
	RecommendedAction string
	CapaType          string
}

var rcaStatusRank = map[rcacase.Status]int{
	rcacase.StatusPendingScheduling: 0,
	rcacase.StatusScheduled:         1,
	rcacase.StatusEngaged:           2,
	rcacase.StatusCompleted:         3,
}

// RcaService persists root-cause-analysis cases.
type RcaService struct {
	client *ent.Client
}

// NewRcaService creates a new RcaService.
func NewRcaService(client *ent.Client) *RcaService {
	if client == nil {
		panic("NewRcaService: client must not be nil")
	}
	return &RcaService{client: client}
}

// Create persists a new RCA case.
func (s *RcaService) Create(ctx context.Context, in RcaCaseInput) (*ent.RcaCase, error) {
	if in.DiagnosisID == "" {
		return nil, NewValidationError("diagnosis_id", "diagnosis_id is required")
	}
	if in.RootCause == "" {
		return nil, NewValidationError("root_cause", "root_cause is required")
	}
	if in.Confidence < 0 || in.Confidence > 1 {
		return nil, NewValidationError("confidence", "must be in [0, 1]")
	}
	if in.CapaType != string(rcacase.CapaTypeCorrective) && in.CapaType != string(rcacase.CapaTypePreventive) {
		return nil, NewValidationError("capa_type", fmt.Sprintf("must be Corrective or Preventive, got %q", in.CapaType))
	}

	id := in.RcaID
	if id == "" {
		id = models.NewRcaID()
	}

	created, err := s.client.RcaCase.Create().
		SetID(id).
		SetDiagnosisID(in.DiagnosisID).
		SetCaseID(in.CaseID).
		SetVehicleID(in.VehicleID).
		SetRootCause(in.RootCause).
		SetConfidence(in.Confidence).
		SetRecommendedAction(in.RecommendedAction).
		SetCapaType(rcacase.CapaType(in.CapaType)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: rca %s", ErrAlreadyExists, id)
		}
		return nil, fmt.Errorf("failed to create rca case: %w", err)
	}
	return created, nil
}

// Get returns the RCA case or ErrNotFound.
func (s *RcaService) Get(ctx context.Context, rcaID string) (*ent.RcaCase, error) {
	r, err := s.client.RcaCase.Get(ctx, rcaID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: rca %s", ErrNotFound, rcaID)
		}
		return nil, fmt.Errorf("failed to get rca %s: %w", rcaID, err)
	}
	return r, nil
}

// LatestForDiagnosis returns the newest RCA for a diagnosis, or nil.
func (s *RcaService) LatestForDiagnosis(ctx context.Context, diagnosisID string) (*ent.RcaCase, error) {
	r, err := s.client.RcaCase.Query().
		Where(rcacase.DiagnosisIDEQ(diagnosisID)).
		Order(ent.Desc(rcacase.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query rca for diagnosis %s: %w", diagnosisID, err)
	}
	return r, nil
}

// AdvanceStatus moves an RCA case forward; statuses never move backward.
func (s *RcaService) AdvanceStatus(ctx context.Context, rcaID string, target rcacase.Status) error {
	rank, ok := rcaStatusRank[target]
	if !ok {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", target))
	}
	lower := make([]rcacase.Status, 0, rank)
	for status, r := range rcaStatusRank {
		if r < rank {
			lower = append(lower, status)
		}
	}
	n, err := s.client.RcaCase.Update().
		Where(rcacase.IDEQ(rcaID), rcacase.StatusIn(lower...)).
		SetStatus(target).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance rca %s to %s: %w", rcaID, target, err)
	}
	if n == 0 {
		exists, err := s.client.RcaCase.Query().Where(rcacase.IDEQ(rcaID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check rca %s: %w", rcaID, err)
		}
		if !exists {
			return fmt.Errorf("%w: rca %s", ErrNotFound, rcaID)
		}
	}
	return nil
}
