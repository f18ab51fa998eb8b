package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/ent/anomalycase"
	testdb "github.com/fleetsense/fleetsense/test/database"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestAnomalyService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnomalyService(client.Client)
	ctx := context.Background()

	t.Run("persists a detected anomaly", func(t *testing.T) {
		created, err := svc.Create(ctx, AnomalyCaseInput{
			VehicleID:         "VH-1001",
			AnomalyDetected:   true,
			AnomalyType:       strPtr("thermal_overheat"),
			SeverityScore:     floatPtr(0.82),
			TelemetryEventIDs: []string{"evt_1", "evt_2"},
		})
		require.NoError(t, err)
		assert.Contains(t, created.ID, "case_")
		assert.Equal(t, anomalycase.StatusPendingDiagnosis, created.Status)
		require.NotNil(t, created.AnomalyType)
		assert.Equal(t, anomalycase.AnomalyTypeThermalOverheat, *created.AnomalyType)
	})

	t.Run("persists a clean observation without type or severity", func(t *testing.T) {
		created, err := svc.Create(ctx, AnomalyCaseInput{
			VehicleID:       "VH-1002",
			AnomalyDetected: false,
		})
		require.NoError(t, err)
		assert.Nil(t, created.AnomalyType)
		assert.Nil(t, created.SeverityScore)
	})

	t.Run("rejects detection without type", func(t *testing.T) {
		_, err := svc.Create(ctx, AnomalyCaseInput{
			VehicleID:       "VH-1003",
			AnomalyDetected: true,
			SeverityScore:   floatPtr(0.5),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown anomaly type", func(t *testing.T) {
		_, err := svc.Create(ctx, AnomalyCaseInput{
			VehicleID:       "VH-1003",
			AnomalyDetected: true,
			AnomalyType:     strPtr("flux_capacitor"),
			SeverityScore:   floatPtr(0.5),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects out-of-range severity", func(t *testing.T) {
		_, err := svc.Create(ctx, AnomalyCaseInput{
			VehicleID:       "VH-1003",
			AnomalyDetected: true,
			AnomalyType:     strPtr("dtc_fault"),
			SeverityScore:   floatPtr(1.2),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAnomalyService_ClassifyDuplicate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnomalyService(client.Client)
	ctx := context.Background()
	window := 30 * time.Second

	t.Run("none when vehicle has no cases", func(t *testing.T) {
		outcome, found, err := svc.ClassifyDuplicate(ctx, "VH-empty", window)
		require.NoError(t, err)
		assert.Equal(t, GateNone, outcome)
		assert.Nil(t, found)
	})

	t.Run("recent pending case suppresses", func(t *testing.T) {
		created, err := svc.Create(ctx, AnomalyCaseInput{
			VehicleID:       "VH-dup1",
			AnomalyDetected: true,
			AnomalyType:     strPtr("oil_overheat"),
			SeverityScore:   floatPtr(0.6),
		})
		require.NoError(t, err)

		outcome, found, err := svc.ClassifyDuplicate(ctx, "VH-dup1", window)
		require.NoError(t, err)
		assert.Equal(t, GateRecentPending, outcome)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
		assert.True(t, outcome.Duplicate())
	})

	t.Run("old pending case allows a new occurrence", func(t *testing.T) {
		created, err := svc.Create(ctx, AnomalyCaseInput{
			VehicleID:       "VH-dup2",
			AnomalyDetected: true,
			AnomalyType:     strPtr("rpm_spike"),
			SeverityScore:   floatPtr(0.4),
		})
		require.NoError(t, err)

		// Backdate past the suppression window. created_at is immutable in
		// the ent schema, so reach under it with raw SQL.
		_, err = client.DB().Exec(
			`UPDATE anomaly_cases SET created_at = $1 WHERE case_id = $2`,
			time.Now().Add(-2*time.Minute), created.ID)
		require.NoError(t, err)

		outcome, _, err := svc.ClassifyDuplicate(ctx, "VH-dup2", window)
		require.NoError(t, err)
		assert.Equal(t, GateOldPending, outcome)
		assert.False(t, outcome.Duplicate())
	})

	t.Run("recently diagnosed case still suppresses", func(t *testing.T) {
		created, err := svc.Create(ctx, AnomalyCaseInput{
			VehicleID:       "VH-dup3",
			AnomalyDetected: true,
			AnomalyType:     strPtr("low_charge"),
			SeverityScore:   floatPtr(0.3),
		})
		require.NoError(t, err)
		require.NoError(t, svc.AdvanceStatus(ctx, created.ID, anomalycase.StatusDiagnosed))

		// A redelivered detection arriving while the case is already in
		// diagnosis must not open a second case for the same occurrence.
		outcome, found, err := svc.ClassifyDuplicate(ctx, "VH-dup3", window)
		require.NoError(t, err)
		assert.Equal(t, GateAdvanced, outcome)
		assert.True(t, outcome.Duplicate())
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("completed case past the window allows a new occurrence", func(t *testing.T) {
		created, err := svc.Create(ctx, AnomalyCaseInput{
			VehicleID:       "VH-dup4",
			AnomalyDetected: true,
			AnomalyType:     strPtr("thermal_overheat"),
			SeverityScore:   floatPtr(0.7),
		})
		require.NoError(t, err)
		require.NoError(t, svc.AdvanceStatus(ctx, created.ID, anomalycase.StatusCompleted))

		_, err = client.DB().Exec(
			`UPDATE anomaly_cases SET created_at = $1 WHERE case_id = $2`,
			time.Now().Add(-time.Minute), created.ID)
		require.NoError(t, err)

		outcome, _, err := svc.ClassifyDuplicate(ctx, "VH-dup4", window)
		require.NoError(t, err)
		assert.Equal(t, GateOldPending, outcome)
		assert.False(t, outcome.Duplicate())
	})
}

func TestAnomalyService_AdvanceStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnomalyService(client.Client)
	ctx := context.Background()

	created, err := svc.Create(ctx, AnomalyCaseInput{
		VehicleID:       "VH-adv",
		AnomalyDetected: true,
		AnomalyType:     strPtr("dtc_fault"),
		SeverityScore:   floatPtr(0.5),
	})
	require.NoError(t, err)

	t.Run("moves forward", func(t *testing.T) {
		require.NoError(t, svc.AdvanceStatus(ctx, created.ID, anomalycase.StatusDiagnosed))
		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, anomalycase.StatusDiagnosed, got.Status)
	})

	t.Run("never moves backward", func(t *testing.T) {
		require.NoError(t, svc.AdvanceStatus(ctx, created.ID, anomalycase.StatusDiagnosing))
		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, anomalycase.StatusDiagnosed, got.Status)
	})

	t.Run("repeat advance is idempotent", func(t *testing.T) {
		require.NoError(t, svc.AdvanceStatus(ctx, created.ID, anomalycase.StatusDiagnosed))
		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, anomalycase.StatusDiagnosed, got.Status)
	})

	t.Run("unknown case errors", func(t *testing.T) {
		err := svc.AdvanceStatus(ctx, "case_missing", anomalycase.StatusCompleted)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
