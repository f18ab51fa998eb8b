package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/humanreview"
	"github.com/fleetsense/fleetsense/pkg/models"
)

// PipelineService maintains the orchestrator's per-case routing snapshot and
// the human-review queue for gated decisions.
type PipelineService struct {
	client *ent.Client
}

// NewPipelineService creates a new PipelineService.
func NewPipelineService(client *ent.Client) *PipelineService {
	if client == nil {
		panic("NewPipelineService: client must not be nil")
	}
	return &PipelineService{client: client}
}

// UpsertState records the latest routing decision for a case. nextStage is
// nil when the case is terminal or parked for review.
func (s *PipelineService) UpsertState(ctx context.Context, caseID string, currentStage models.Stage, nextStage *models.Stage, confidence float64) error {
	if caseID == "" {
		return NewValidationError("case_id", "case_id is required")
	}

	existing, err := s.client.PipelineState.Get(ctx, caseID)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to look up pipeline state for %s: %w", caseID, err)
	}

	if existing == nil {
		builder := s.client.PipelineState.Create().
			SetID(caseID).
			SetCurrentStage(string(currentStage)).
			SetConfidence(confidence)
		if nextStage != nil {
			builder.SetNextStage(string(*nextStage))
		}
		if err := builder.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				// Raced with another orchestrator pod; retry as update.
				return s.UpsertState(ctx, caseID, currentStage, nextStage, confidence)
			}
			return fmt.Errorf("failed to create pipeline state for %s: %w", caseID, err)
		}
		return nil
	}

	update := existing.Update().
		SetCurrentStage(string(currentStage)).
		SetConfidence(confidence)
	if nextStage != nil {
		update.SetNextStage(string(*nextStage))
	} else {
		update.ClearNextStage()
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update pipeline state for %s: %w", caseID, err)
	}
	return nil
}

// GetState returns the routing snapshot for a case or ErrNotFound.
func (s *PipelineService) GetState(ctx context.Context, caseID string) (*ent.PipelineState, error) {
	st, err := s.client.PipelineState.Get(ctx, caseID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: pipeline state for %s", ErrNotFound, caseID)
		}
		return nil, fmt.Errorf("failed to get pipeline state for %s: %w", caseID, err)
	}
	return st, nil
}

// CreateReview parks a gated routing decision for an operator. The review is
// keyed <case_id>_<stage>, so re-gating the same decision collapses onto the
// existing record and returns it unchanged.
func (s *PipelineService) CreateReview(ctx context.Context, caseID string, stage models.Stage, confidence float64, message map[string]any) (*ent.HumanReview, error) {
	if caseID == "" {
		return nil, NewValidationError("case_id", "case_id is required")
	}
	reviewID := models.ReviewID(caseID, stage)

	created, err := s.client.HumanReview.Create().
		SetID(reviewID).
		SetCaseID(caseID).
		SetStage(string(stage)).
		SetConfidence(confidence).
		SetMessage(message).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.HumanReview.Get(ctx, reviewID)
		}
		return nil, fmt.Errorf("failed to create review %s: %w", reviewID, err)
	}
	return created, nil
}

// ListPendingReviews returns unresolved reviews, oldest first.
func (s *PipelineService) ListPendingReviews(ctx context.Context) ([]*ent.HumanReview, error) {
	reviews, err := s.client.HumanReview.Query().
		Where(humanreview.ReviewStatusEQ(humanreview.ReviewStatusPending)).
		Order(ent.Asc(humanreview.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	return reviews, nil
}

// GetReview returns one review or ErrNotFound.
func (s *PipelineService) GetReview(ctx context.Context, reviewID string) (*ent.HumanReview, error) {
	r, err := s.client.HumanReview.Get(ctx, reviewID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
		}
		return nil, fmt.Errorf("failed to get review %s: %w", reviewID, err)
	}
	return r, nil
}

// ResolveReview marks a pending review resolved and returns it. Resolving an
// already-resolved review is a no-op.
func (s *PipelineService) ResolveReview(ctx context.Context, reviewID string) (*ent.HumanReview, error) {
	n, err := s.client.HumanReview.Update().
		Where(
			humanreview.IDEQ(reviewID),
			humanreview.ReviewStatusEQ(humanreview.ReviewStatusPending),
		).
		SetReviewStatus(humanreview.ReviewStatusResolved).
		SetResolvedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve review %s: %w", reviewID, err)
	}
	if n == 0 {
		// Missing or already resolved; Get distinguishes the two.
		return s.GetReview(ctx, reviewID)
	}
	return s.GetReview(ctx, reviewID)
}
