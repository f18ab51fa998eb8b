package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/anomalycase"
	"github.com/fleetsense/fleetsense/pkg/models"
)

// AnomalyCaseInput carries the fields of a new anomaly case. Type and
// severity are nil exactly when no anomaly was detected.
type AnomalyCaseInput struct {
	CaseID            string
	VehicleID         string
	AnomalyDetected   bool
	AnomalyType       *string
	SeverityScore     *float64
	TelemetryEventIDs []string
}

// anomalyStatusRank orders case statuses so advancement is monotonic. A
// transition only applies when the stored status ranks strictly lower.
var anomalyStatusRank = map[anomalycase.Status]int{
	anomalycase.StatusPendingDiagnosis: 0,
	anomalycase.StatusDiagnosing:       1,
	anomalycase.StatusDiagnosed:        2,
	anomalycase.StatusScheduled:        3,
	anomalycase.StatusEngaged:          4,
	anomalycase.StatusCompleted:        5,
}

// AnomalyService persists anomaly cases and answers the duplicate-gate
// queries the detection stage runs before and after each model call.
type AnomalyService struct {
	client *ent.Client
}

// NewAnomalyService creates a new AnomalyService.
func NewAnomalyService(client *ent.Client) *AnomalyService {
	if client == nil {
		panic("NewAnomalyService: client must not be nil")
	}
	return &AnomalyService{client: client}
}

// Create persists a new anomaly case.
func (s *AnomalyService) Create(ctx context.Context, in AnomalyCaseInput) (*ent.AnomalyCase, error) {
	if in.VehicleID == "" {
		return nil, NewValidationError("vehicle_id", "vehicle_id is required")
	}
	if in.AnomalyDetected {
		if in.AnomalyType == nil {
			return nil, NewValidationError("anomaly_type", "required when anomaly_detected is true")
		}
		if !models.ValidAnomalyType(*in.AnomalyType) {
			return nil, NewValidationError("anomaly_type", fmt.Sprintf("unknown anomaly type %q", *in.AnomalyType))
		}
		if in.SeverityScore == nil {
			return nil, NewValidationError("severity_score", "required when anomaly_detected is true")
		}
		if *in.SeverityScore < 0 || *in.SeverityScore > 1 {
			return nil, NewValidationError("severity_score", "must be in [0, 1]")
		}
	}

	caseID := in.CaseID
	if caseID == "" {
		caseID = models.NewCaseID()
	}

	builder := s.client.AnomalyCase.Create().
		SetID(caseID).
		SetVehicleID(in.VehicleID).
		SetAnomalyDetected(in.AnomalyDetected).
		SetTelemetryEventIds(in.TelemetryEventIDs)
	if in.AnomalyType != nil {
		builder.SetAnomalyType(anomalycase.AnomalyType(*in.AnomalyType))
	}
	if in.SeverityScore != nil {
		builder.SetSeverityScore(*in.SeverityScore)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: case %s", ErrAlreadyExists, caseID)
		}
		return nil, fmt.Errorf("failed to create anomaly case: %w", err)
	}
	return created, nil
}

// Get returns the case or ErrNotFound.
func (s *AnomalyService) Get(ctx context.Context, caseID string) (*ent.AnomalyCase, error) {
	c, err := s.client.AnomalyCase.Get(ctx, caseID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: case %s", ErrNotFound, caseID)
		}
		return nil, fmt.Errorf("failed to get anomaly case %s: %w", caseID, err)
	}
	return c, nil
}

// LatestForVehicle returns the newest case for the vehicle in any status, or
// nil when none exists. This is the lookup behind the duplicate gate: a case
// that the pipeline has already carried past diagnosis must still suppress
// re-delivered detections of the same occurrence.
func (s *AnomalyService) LatestForVehicle(ctx context.Context, vehicleID string) (*ent.AnomalyCase, error) {
	c, err := s.client.AnomalyCase.Query().
		Where(anomalycase.VehicleIDEQ(vehicleID)).
		Order(ent.Desc(anomalycase.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query cases for %s: %w", vehicleID, err)
	}
	return c, nil
}

// ClassifyDuplicate runs the per-vehicle duplicate gate: it inspects the
// latest case regardless of status and classifies it against the suppression
// window. Inside the window a new detection is suppressed whether the case is
// still pending or has already advanced; past the window a fresh occurrence
// is allowed even against a completed case.
func (s *AnomalyService) ClassifyDuplicate(ctx context.Context, vehicleID string, window time.Duration) (GateOutcome, *ent.AnomalyCase, error) {
	c, err := s.LatestForVehicle(ctx, vehicleID)
	if err != nil {
		return GateNone, nil, err
	}
	if c == nil {
		return GateNone, nil, nil
	}
	// A zero created_at was committed in the same flush and has not seen its
	// server timestamp yet; treat it as just written.
	if !c.CreatedAt.IsZero() && time.Since(c.CreatedAt) >= window {
		return GateOldPending, c, nil
	}
	if anomalyStatusRank[c.Status] >= anomalyStatusRank[anomalycase.StatusDiagnosed] {
		return GateAdvanced, c, nil
	}
	return GateRecentPending, c, nil
}

// AdvanceStatus moves a case to the given status if and only if it currently
// ranks lower. A case already at or past the target is left untouched and no
// error is returned, so replayed completion events stay idempotent.
func (s *AnomalyService) AdvanceStatus(ctx context.Context, caseID string, target anomalycase.Status) error {
	rank, ok := anomalyStatusRank[target]
	if !ok {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", target))
	}
	lower := make([]anomalycase.Status, 0, rank)
	for status, r := range anomalyStatusRank {
		if r < rank {
			lower = append(lower, status)
		}
	}
	n, err := s.client.AnomalyCase.Update().
		Where(anomalycase.IDEQ(caseID), anomalycase.StatusIn(lower...)).
		SetStatus(target).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance case %s to %s: %w", caseID, target, err)
	}
	if n == 0 {
		// Either the case does not exist or is already at/past target.
		// Distinguish the two so missing cases are not silently ignored.
		exists, err := s.client.AnomalyCase.Query().Where(anomalycase.IDEQ(caseID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check case %s: %w", caseID, err)
		}
		if !exists {
			return fmt.Errorf("%w: case %s", ErrNotFound, caseID)
		}
	}
	return nil
}
