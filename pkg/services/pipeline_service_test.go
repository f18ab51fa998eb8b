package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/ent/humanreview"
	"github.com/fleetsense/fleetsense/pkg/models"
	testdb "github.com/fleetsense/fleetsense/test/database"
)

func TestPipelineService_UpsertState(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPipelineService(client.Client)
	ctx := context.Background()

	t.Run("creates then overwrites the snapshot", func(t *testing.T) {
		next := models.StageDiagnosis
		require.NoError(t, svc.UpsertState(ctx, "case_state1", models.StageDataAnalysis, &next, 0.95))

		st, err := svc.GetState(ctx, "case_state1")
		require.NoError(t, err)
		assert.Equal(t, string(models.StageDataAnalysis), st.CurrentStage)
		require.NotNil(t, st.NextStage)
		assert.Equal(t, string(models.StageDiagnosis), *st.NextStage)
		assert.InDelta(t, 0.95, st.Confidence, 1e-9)

		// Terminal decision clears next_stage.
		require.NoError(t, svc.UpsertState(ctx, "case_state1", models.StageManufacturing, nil, 0.90))

		st, err = svc.GetState(ctx, "case_state1")
		require.NoError(t, err)
		assert.Equal(t, string(models.StageManufacturing), st.CurrentStage)
		assert.Nil(t, st.NextStage)
	})

	t.Run("unknown case errors on read", func(t *testing.T) {
		_, err := svc.GetState(ctx, "case_nowhere")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPipelineService_Reviews(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPipelineService(client.Client)
	ctx := context.Background()

	msg := map[string]any{"case_id": "case_rev1", "confidence": 0.42}

	t.Run("creates a pending review", func(t *testing.T) {
		review, err := svc.CreateReview(ctx, "case_rev1", models.StageRca, 0.42, msg)
		require.NoError(t, err)
		assert.Equal(t, "case_rev1_rca", review.ID)
		assert.Equal(t, humanreview.ReviewStatusPending, review.ReviewStatus)
	})

	t.Run("re-gating collapses onto the existing record", func(t *testing.T) {
		review, err := svc.CreateReview(ctx, "case_rev1", models.StageRca, 0.40, msg)
		require.NoError(t, err)
		assert.Equal(t, "case_rev1_rca", review.ID)
		// Original confidence survives; the retry does not rewrite it.
		assert.InDelta(t, 0.42, review.Confidence, 1e-9)

		reviews, err := svc.ListPendingReviews(ctx)
		require.NoError(t, err)
		assert.Len(t, reviews, 1)
	})

	t.Run("same case at another stage is a separate review", func(t *testing.T) {
		review, err := svc.CreateReview(ctx, "case_rev1", models.StageDiagnosis, 0.55, msg)
		require.NoError(t, err)
		assert.Equal(t, "case_rev1_diagnosis", review.ID)

		reviews, err := svc.ListPendingReviews(ctx)
		require.NoError(t, err)
		assert.Len(t, reviews, 2)
	})

	t.Run("resolve marks the review and drops it from the queue", func(t *testing.T) {
		resolved, err := svc.ResolveReview(ctx, "case_rev1_rca")
		require.NoError(t, err)
		assert.Equal(t, humanreview.ReviewStatusResolved, resolved.ReviewStatus)
		require.NotNil(t, resolved.ResolvedAt)

		reviews, err := svc.ListPendingReviews(ctx)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, "case_rev1_diagnosis", reviews[0].ID)
	})

	t.Run("resolving twice is a no-op", func(t *testing.T) {
		first, err := svc.GetReview(ctx, "case_rev1_rca")
		require.NoError(t, err)

		again, err := svc.ResolveReview(ctx, "case_rev1_rca")
		require.NoError(t, err)
		assert.Equal(t, humanreview.ReviewStatusResolved, again.ReviewStatus)
		require.NotNil(t, again.ResolvedAt)
		assert.Equal(t, first.ResolvedAt.Unix(), again.ResolvedAt.Unix())
	})

	t.Run("resolving a missing review errors", func(t *testing.T) {
		_, err := svc.ResolveReview(ctx, "case_ghost_rca")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
