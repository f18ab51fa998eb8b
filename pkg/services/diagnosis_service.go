package services

import (
	"context"
	"fmt"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/diagnosiscase"
	"github.com/fleetsense/fleetsense/pkg/models"
)

// DiagnosisCaseInput carries the fields of a new diagnosis case.
type DiagnosisCaseInput struct {
	DiagnosisID        string
	CaseID             string
	VehicleID          string
	Component          string
	FailureProbability float64
	EstimatedRulDays   int
	Severity           string
	ContextEventIDs    []string
}

var diagnosisStatusRank = map[diagnosiscase.Status]int{
	diagnosiscase.StatusPendingRca:  0,
	diagnosiscase.StatusRcaComplete: 1,
	diagnosiscase.StatusScheduled:   2,
	diagnosiscase.StatusEngaged:     3,
	diagnosiscase.StatusCompleted:   4,
}

// DiagnosisService persists diagnosis cases.
type DiagnosisService struct {
	client *ent.Client
}

// NewDiagnosisService creates a new DiagnosisService.
func NewDiagnosisService(client *ent.Client) *DiagnosisService {
	if client == nil {
		panic("NewDiagnosisService: client must not be nil")
	}
	return &DiagnosisService{client: client}
}

// Create persists a new diagnosis case.
func (s *DiagnosisService) Create(ctx context.Context, in DiagnosisCaseInput) (*ent.DiagnosisCase, error) {
	if in.CaseID == "" {
		return nil, NewValidationError("case_id", "case_id is required")
	}
	if in.Component == "" {
		return nil, NewValidationError("component", "component is required")
	}
	if in.FailureProbability < 0 || in.FailureProbability > 1 {
		return nil, NewValidationError("failure_probability", "must be in [0, 1]")
	}
	if in.EstimatedRulDays < 1 {
		return nil, NewValidationError("estimated_rul_days", "must be at least 1")
	}

	id := in.DiagnosisID
	if id == "" {
		id = models.NewDiagnosisID()
	}

	created, err := s.client.DiagnosisCase.Create().
		SetID(id).
		SetCaseID(in.CaseID).
		SetVehicleID(in.VehicleID).
		SetComponent(in.Component).
		SetFailureProbability(in.FailureProbability).
		SetEstimatedRulDays(in.EstimatedRulDays).
		SetSeverity(diagnosiscase.Severity(in.Severity)).
		SetContextEventIds(in.ContextEventIDs).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: diagnosis %s", ErrAlreadyExists, id)
		}
		return nil, fmt.Errorf("failed to create diagnosis case: %w", err)
	}
	return created, nil
}

// Get returns the diagnosis or ErrNotFound.
func (s *DiagnosisService) Get(ctx context.Context, diagnosisID string) (*ent.DiagnosisCase, error) {
	d, err := s.client.DiagnosisCase.Get(ctx, diagnosisID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: diagnosis %s", ErrNotFound, diagnosisID)
		}
		return nil, fmt.Errorf("failed to get diagnosis %s: %w", diagnosisID, err)
	}
	return d, nil
}

// LatestForCase returns the newest diagnosis for an anomaly case, or nil when
// the case has never been diagnosed. The diagnosis duplicate gate runs on it.
func (s *DiagnosisService) LatestForCase(ctx context.Context, caseID string) (*ent.DiagnosisCase, error) {
	d, err := s.client.DiagnosisCase.Query().
		Where(diagnosiscase.CaseIDEQ(caseID)).
		Order(ent.Desc(diagnosiscase.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query diagnoses for case %s: %w", caseID, err)
	}
	return d, nil
}

// AdvanceStatus moves a diagnosis forward; statuses never move backward.
func (s *DiagnosisService) AdvanceStatus(ctx context.Context, diagnosisID string, target diagnosiscase.Status) error {
	rank, ok := diagnosisStatusRank[target]
	if !ok {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", target))
	}
	lower := make([]diagnosiscase.Status, 0, rank)
	for status, r := range diagnosisStatusRank {
		if r < rank {
			lower = append(lower, status)
		}
	}
	n, err := s.client.DiagnosisCase.Update().
		Where(diagnosiscase.IDEQ(diagnosisID), diagnosiscase.StatusIn(lower...)).
		SetStatus(target).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance diagnosis %s to %s: %w", diagnosisID, target, err)
	}
	if n == 0 {
		exists, err := s.client.DiagnosisCase.Query().Where(diagnosiscase.IDEQ(diagnosisID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check diagnosis %s: %w", diagnosisID, err)
		}
		if !exists {
			return fmt.Errorf("%w: diagnosis %s", ErrNotFound, diagnosisID)
		}
	}
	return nil
}
