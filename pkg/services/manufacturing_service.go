package services

import (
	"context"
	"fmt"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/anomalycase"
	"github.com/fleetsense/fleetsense/ent/diagnosiscase"
	"github.com/fleetsense/fleetsense/ent/manufacturingcase"
	"github.com/fleetsense/fleetsense/pkg/models"
)

// ManufacturingCaseInput carries the fields of a new manufacturing case.
type ManufacturingCaseInput struct {
	ManufacturingID            string
	FeedbackID                 string
	CaseID                     string
	VehicleID                  string
	Issue                      string
	CapaRecommendation         string
	Severity                   string
	RecurrenceClusterSize      int
	VehicleRecurrenceCount     int
	AnomalyTypeRecurrenceCount int
	ComponentRecurrenceCount   int
}

// RecurrenceCounts aggregates how often an issue repeats across the fleet.
// The cluster size reported downstream is at least the max of these.
type RecurrenceCounts struct {
	Vehicle     int
	AnomalyType int
	Component   int
}

// Max returns the largest of the three counts, never below 1.
func (r RecurrenceCounts) Max() int {
	m := r.Vehicle
	if r.AnomalyType > m {
		m = r.AnomalyType
	}
	if r.Component > m {
		m = r.Component
	}
	if m < 1 {
		m = 1
	}
	return m
}

// ManufacturingService persists manufacturing-quality insights and runs the
// fleet recurrence aggregations behind them.
type ManufacturingService struct {
	client *ent.Client
}

// NewManufacturingService creates a new ManufacturingService.
func NewManufacturingService(client *ent.Client) *ManufacturingService {
	if client == nil {
		panic("NewManufacturingService: client must not be nil")
	}
	return &ManufacturingService{client: client}
}

// Create persists a new manufacturing case.
func (s *ManufacturingService) Create(ctx context.Context, in ManufacturingCaseInput) (*ent.ManufacturingCase, error) {
	if in.FeedbackID == "" {
		return nil, NewValidationError("feedback_id", "feedback_id is required")
	}
	if in.Issue == "" {
		return nil, NewValidationError("issue", "issue is required")
	}
	if in.RecurrenceClusterSize < 1 {
		return nil, NewValidationError("recurrence_cluster_size", "must be at least 1")
	}

	id := in.ManufacturingID
	if id == "" {
		id = models.NewManufacturingID()
	}

	created, err := s.client.ManufacturingCase.Create().
		SetID(id).
		SetFeedbackID(in.FeedbackID).
		SetCaseID(in.CaseID).
		SetVehicleID(in.VehicleID).
		SetIssue(in.Issue).
		SetCapaRecommendation(in.CapaRecommendation).
		SetSeverity(manufacturingcase.Severity(in.Severity)).
		SetRecurrenceClusterSize(in.RecurrenceClusterSize).
		SetVehicleRecurrenceCount(in.VehicleRecurrenceCount).
		SetAnomalyTypeRecurrenceCount(in.AnomalyTypeRecurrenceCount).
		SetComponentRecurrenceCount(in.ComponentRecurrenceCount).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: manufacturing %s", ErrAlreadyExists, id)
		}
		return nil, fmt.Errorf("failed to create manufacturing case: %w", err)
	}
	return created, nil
}

// Get returns the manufacturing case or ErrNotFound.
func (s *ManufacturingService) Get(ctx context.Context, manufacturingID string) (*ent.ManufacturingCase, error) {
	m, err := s.client.ManufacturingCase.Get(ctx, manufacturingID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: manufacturing %s", ErrNotFound, manufacturingID)
		}
		return nil, fmt.Errorf("failed to get manufacturing %s: %w", manufacturingID, err)
	}
	return m, nil
}

// LatestForFeedback returns the newest manufacturing case for a feedback
// case, or nil. Any hit suppresses reprocessing.
func (s *ManufacturingService) LatestForFeedback(ctx context.Context, feedbackID string) (*ent.ManufacturingCase, error) {
	m, err := s.client.ManufacturingCase.Query().
		Where(manufacturingcase.FeedbackIDEQ(feedbackID)).
		Order(ent.Desc(manufacturingcase.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query manufacturing for feedback %s: %w", feedbackID, err)
	}
	return m, nil
}

// Recurrence counts how often the issue repeats: detections on the same
// vehicle, fleet-wide detections of the same anomaly type, and fleet-wide
// diagnoses against the same component. Empty dimension values count as zero.
func (s *ManufacturingService) Recurrence(ctx context.Context, vehicleID, anomalyType, component string) (RecurrenceCounts, error) {
	var counts RecurrenceCounts

	if vehicleID != "" {
		n, err := s.client.AnomalyCase.Query().
			Where(
				anomalycase.VehicleIDEQ(vehicleID),
				anomalycase.AnomalyDetectedEQ(true),
			).
			Count(ctx)
		if err != nil {
			return counts, fmt.Errorf("failed to count vehicle recurrence: %w", err)
		}
		counts.Vehicle = n
	}

	if models.ValidAnomalyType(anomalyType) {
		n, err := s.client.AnomalyCase.Query().
			Where(
				anomalycase.AnomalyTypeEQ(anomalycase.AnomalyType(anomalyType)),
				anomalycase.AnomalyDetectedEQ(true),
			).
			Count(ctx)
		if err != nil {
			return counts, fmt.Errorf("failed to count anomaly-type recurrence: %w", err)
		}
		counts.AnomalyType = n
	}

	if component != "" {
		n, err := s.client.DiagnosisCase.Query().
			Where(diagnosiscase.ComponentEQ(component)).
			Count(ctx)
		if err != nil {
			return counts, fmt.Errorf("failed to count component recurrence: %w", err)
		}
		counts.Component = n
	}

	return counts, nil
}
