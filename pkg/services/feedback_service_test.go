package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/fleetsense/fleetsense/test/database"
)

func TestFeedbackService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFeedbackService(client.Client)
	ctx := context.Background()

	t.Run("persists a correct-validation case", func(t *testing.T) {
		rating := 4
		created, err := svc.Create(ctx, FeedbackCaseInput{
			BookingID:       "booking_abc",
			CaseID:          "case_abc",
			VehicleID:       "VH-1",
			CeiScore:        4.2,
			ValidationLabel: "Correct",
			CustomerRating:  &rating,
		})
		require.NoError(t, err)
		assert.Contains(t, created.ID, "feedback_")
		assert.False(t, created.RecommendedRetrain)
	})

	t.Run("recurring label requires retrain flag", func(t *testing.T) {
		_, err := svc.Create(ctx, FeedbackCaseInput{
			BookingID:       "booking_abc",
			CeiScore:        2.0,
			ValidationLabel: "Recurring",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("correct label forbids retrain flag", func(t *testing.T) {
		_, err := svc.Create(ctx, FeedbackCaseInput{
			BookingID:          "booking_abc",
			CeiScore:           4.5,
			ValidationLabel:    "Correct",
			RecommendedRetrain: true,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("cei score outside the scale is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, FeedbackCaseInput{
			BookingID:       "booking_abc",
			CeiScore:        0.4,
			ValidationLabel: "Correct",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("customer rating outside 1..5 is rejected", func(t *testing.T) {
		rating := 9
		_, err := svc.Create(ctx, FeedbackCaseInput{
			BookingID:       "booking_abc",
			CeiScore:        3.0,
			ValidationLabel: "Correct",
			CustomerRating:  &rating,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestFeedbackService_LatestForBooking(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFeedbackService(client.Client)
	ctx := context.Background()

	t.Run("nil when booking has no feedback", func(t *testing.T) {
		got, err := svc.LatestForBooking(ctx, "booking_none")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returns the stored case", func(t *testing.T) {
		created, err := svc.Create(ctx, FeedbackCaseInput{
			BookingID:          "booking_latest",
			CeiScore:           1.5,
			ValidationLabel:    "Incorrect",
			RecommendedRetrain: true,
		})
		require.NoError(t, err)

		got, err := svc.LatestForBooking(ctx, "booking_latest")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, created.ID, got.ID)
	})
}

func TestFeedbackService_MarkManufacturingComplete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFeedbackService(client.Client)
	ctx := context.Background()

	created, err := svc.Create(ctx, FeedbackCaseInput{
		BookingID:          "booking_mfg",
		CeiScore:           2.2,
		ValidationLabel:    "Recurring",
		RecommendedRetrain: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkManufacturingComplete(ctx, created.ID))
	require.NoError(t, svc.MarkManufacturingComplete(ctx, created.ID))

	err = svc.MarkManufacturingComplete(ctx, "feedback_missing")
	require.ErrorIs(t, err, ErrNotFound)
}
