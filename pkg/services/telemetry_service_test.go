package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/pkg/models"
	testdb "github.com/fleetsense/fleetsense/test/database"
)

func TestNewTelemetryService(t *testing.T) {
	t.Run("panics when client is nil", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTelemetryService(nil)
		})
	})
}

func TestTelemetryService_Ingest(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTelemetryService(client.Client)
	ctx := context.Background()

	t.Run("persists event and generates id", func(t *testing.T) {
		event, err := svc.Ingest(ctx, models.IngestTelemetryRequest{
			VehicleID:    "VH-1001",
			Timestamp:    "2026-08-26T10:00:00Z",
			SpeedKmph:    62.5,
			EngineRpm:    2100,
			CoolantTempC: 92.0,
			DtcCodes:     []string{"P0117"},
		})
		require.NoError(t, err)
		assert.Contains(t, event.ID, "evt_")
		assert.Equal(t, "VH-1001", event.VehicleID)
		assert.Equal(t, []string{"P0117"}, event.DtcCodes)
	})

	t.Run("honours a caller-supplied event id", func(t *testing.T) {
		event, err := svc.Ingest(ctx, models.IngestTelemetryRequest{
			EventID:   "evt_fixed00001",
			VehicleID: "VH-1001",
			Timestamp: "2026-08-26T10:01:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, "evt_fixed00001", event.ID)
	})

	t.Run("rejects duplicate event id", func(t *testing.T) {
		_, err := svc.Ingest(ctx, models.IngestTelemetryRequest{
			EventID:   "evt_fixed00001",
			VehicleID: "VH-1001",
			Timestamp: "2026-08-26T10:02:00Z",
		})
		require.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects missing vehicle id", func(t *testing.T) {
		_, err := svc.Ingest(ctx, models.IngestTelemetryRequest{
			Timestamp: "2026-08-26T10:00:00Z",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects malformed timestamp", func(t *testing.T) {
		_, err := svc.Ingest(ctx, models.IngestTelemetryRequest{
			VehicleID: "VH-1001",
			Timestamp: "26/08/2026 10:00",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTelemetryService_RecentForVehicle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTelemetryService(client.Client)
	ctx := context.Background()

	base := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := svc.Ingest(ctx, models.IngestTelemetryRequest{
			EventID:   fmt.Sprintf("evt_order%05d", i),
			VehicleID: "VH-2001",
			Timestamp: base.Add(time.Duration(i) * time.Minute).Format(time.RFC3339),
		})
		require.NoError(t, err)
	}
	_, err := svc.Ingest(ctx, models.IngestTelemetryRequest{
		VehicleID: "VH-other",
		Timestamp: base.Format(time.RFC3339),
	})
	require.NoError(t, err)

	t.Run("returns newest window in chronological order", func(t *testing.T) {
		events, err := svc.RecentForVehicle(ctx, "VH-2001", 3)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, "evt_order00002", events[0].ID)
		assert.Equal(t, "evt_order00004", events[2].ID)
		assert.True(t, events[0].Timestamp.Before(events[1].Timestamp))
	})

	t.Run("empty for unknown vehicle", func(t *testing.T) {
		events, err := svc.RecentForVehicle(ctx, "VH-none", 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestTelemetryService_ByIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTelemetryService(client.Client)
	ctx := context.Background()

	for _, id := range []string{"evt_aaa", "evt_bbb", "evt_ccc"} {
		_, err := svc.Ingest(ctx, models.IngestTelemetryRequest{
			EventID:   id,
			VehicleID: "VH-3001",
			Timestamp: "2026-08-26T08:00:00Z",
		})
		require.NoError(t, err)
	}

	t.Run("preserves requested order and skips unknown ids", func(t *testing.T) {
		events, err := svc.ByIDs(ctx, []string{"evt_ccc", "evt_missing", "evt_aaa"})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "evt_ccc", events[0].ID)
		assert.Equal(t, "evt_aaa", events[1].ID)
	})

	t.Run("nil for empty input", func(t *testing.T) {
		events, err := svc.ByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, events)
	})
}
