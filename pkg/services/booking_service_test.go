package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/ent/booking"
	testdb "github.com/fleetsense/fleetsense/test/database"
)

func TestBookingService_BookedSlots(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewBookingService(client.Client)
	ctx := context.Background()

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	slotA := day.Add(9 * time.Hour)
	slotB := day.Add(10 * time.Hour)

	for i, slot := range []time.Time{slotA, slotA, slotB} {
		_, err := svc.Create(ctx, BookingInput{
			CaseID:        "case_slots",
			VehicleID:     "VH-" + string(rune('a'+i)),
			ServiceCenter: "center_001",
			ScheduledSlot: slot,
		})
		require.NoError(t, err)
	}
	// Different center; must not count.
	_, err := svc.Create(ctx, BookingInput{
		CaseID:        "case_slots",
		VehicleID:     "VH-x",
		ServiceCenter: "center_002",
		ScheduledSlot: slotA,
	})
	require.NoError(t, err)

	t.Run("counts occupancy per slot per center", func(t *testing.T) {
		counts, err := svc.BookedSlots(ctx, "center_001", day, day.Add(24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 2, counts[slotA])
		assert.Equal(t, 1, counts[slotB])
	})

	t.Run("range bounds are half-open", func(t *testing.T) {
		counts, err := svc.BookedSlots(ctx, "center_001", day, slotB)
		require.NoError(t, err)
		assert.Equal(t, 2, counts[slotA])
		assert.Zero(t, counts[slotB])
	})
}

func TestBookingService_MarkFeedbackComplete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewBookingService(client.Client)
	ctx := context.Background()

	created, err := svc.Create(ctx, BookingInput{
		CaseID:        "case_fb",
		VehicleID:     "VH-fb",
		ServiceCenter: "center_001",
		ScheduledSlot: time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, created.Status)

	t.Run("marks and stays marked", func(t *testing.T) {
		require.NoError(t, svc.MarkFeedbackComplete(ctx, created.ID))
		require.NoError(t, svc.MarkFeedbackComplete(ctx, created.ID))

		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusFeedbackComplete, got.Status)
	})

	t.Run("unknown booking errors", func(t *testing.T) {
		err := svc.MarkFeedbackComplete(ctx, "booking_missing")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
