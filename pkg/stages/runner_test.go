package stages

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/ent/anomalycase"
	"github.com/fleetsense/fleetsense/ent/diagnosiscase"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/config"
	"github.com/fleetsense/fleetsense/pkg/llm"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/services"
	"github.com/fleetsense/fleetsense/pkg/warehouse"
	testdb "github.com/fleetsense/fleetsense/test/database"
)

// stubModel is a canned llm.Client.
type stubModel struct {
	response string
	err      error
	calls    int
}

func (s *stubModel) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testDeps(t *testing.T, model llm.Client) (Deps, *stdsql.DB) {
	t.Helper()
	client := testdb.NewPipelineTestClient(t)

	defaults := config.DefaultDefaults()
	defaults.JitterMax = 0

	deps := Deps{
		Telemetry:      services.NewTelemetryService(client.Client),
		Vehicles:       services.NewVehicleService(client.Client),
		Anomalies:      services.NewAnomalyService(client.Client),
		Diagnoses:      services.NewDiagnosisService(client.Client),
		Rcas:           services.NewRcaService(client.Client),
		Schedulings:    services.NewSchedulingService(client.Client),
		Engagements:    services.NewEngagementService(client.Client),
		Bookings:       services.NewBookingService(client.Client),
		Communications: services.NewCommunicationService(client.Client),
		Feedbacks:      services.NewFeedbackService(client.Client),
		Manufacturing:  services.NewManufacturingService(client.Client),
		Sink:           warehouse.NewSink(client.DB()),
		Model:          llm.NewRetry(model),
		Publisher:      bus.NewPublisher(client.DB()),
		Defaults:       defaults,
		Topics:         config.DefaultTopics(),
		Centers:        config.NewCenterRegistry(config.DefaultCenters()),
	}
	return deps, client.DB()
}

func envelope(t *testing.T, payload map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return raw
}

// publishedPayloads returns decoded bus payloads on topic, oldest first.
func publishedPayloads(t *testing.T, db *stdsql.DB, topic string) []map[string]any {
	t.Helper()
	rows, err := db.Query("SELECT payload FROM bus_messages WHERE topic = $1 ORDER BY id", topic)
	require.NoError(t, err)
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		var raw []byte
		require.NoError(t, rows.Scan(&raw))
		var payload map[string]any
		require.NoError(t, json.Unmarshal(raw, &payload))
		out = append(out, payload)
	}
	require.NoError(t, rows.Err())
	return out
}

func ingestEvent(t *testing.T, deps Deps, vehicleID string, mutate func(*models.IngestTelemetryRequest)) string {
	t.Helper()
	req := models.IngestTelemetryRequest{
		VehicleID:     vehicleID,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		SpeedKmph:     40,
		EngineRpm:     2200,
		CoolantTempC:  92,
		OilTempC:      105,
		FuelLevelPct:  60,
		BatterySocPct: 80,
		BatterySohPct: 95,
	}
	if mutate != nil {
		mutate(&req)
	}
	evt, err := deps.Telemetry.Ingest(context.Background(), req)
	require.NoError(t, err)
	return evt.ID
}

func TestAnomalyWorker_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("detects and publishes from overheating telemetry", func(t *testing.T) {
		model := &stubModel{response: "```json\n" +
			`{"anomaly_detected": true, "anomaly_type": "thermal_overheat", "reasoning": "coolant above limit"}` +
			"\n```"}
		deps, db := testDeps(t, model)
		worker := NewAnomalyWorker(deps)

		eventID := ingestEvent(t, deps, "VH-RUN-1", func(r *models.IngestTelemetryRequest) {
			r.CoolantTempC = 115
			r.DtcCodes = []string{"P0301"}
		})

		err := worker.Handle(ctx, envelope(t, map[string]any{
			"event_id": eventID, "vehicle_id": "VH-RUN-1",
		}))
		require.NoError(t, err)
		assert.Equal(t, 1, model.calls)

		created, err := deps.Anomalies.LatestForVehicle(ctx, "VH-RUN-1")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.True(t, created.AnomalyDetected)
		require.NotNil(t, created.AnomalyType)
		assert.Equal(t, anomalycase.AnomalyTypeThermalOverheat, *created.AnomalyType)
		require.NotNil(t, created.SeverityScore)
		assert.InDelta(t, 0.625, *created.SeverityScore, 1e-9)

		payloads := publishedPayloads(t, db, deps.Topics.AnomalyDetected)
		require.Len(t, payloads, 1)
		assert.Equal(t, created.ID, payloads[0]["case_id"])
		assert.Equal(t, "thermal_overheat", payloads[0]["anomaly_type"])
		assert.Equal(t, "High", payloads[0]["severity"])
		assert.Equal(t, "data_analysis", payloads[0]["agent_stage"])
		assert.InDelta(t, 0.375, payloads[0]["confidence"].(float64), 1e-9)

		// Warehouse mirror got its row too.
		var mirrored int
		require.NoError(t, db.QueryRow(
			"SELECT count(*) FROM wh_anomaly_cases WHERE case_id = $1", created.ID).Scan(&mirrored))
		assert.Equal(t, 1, mirrored)
	})

	t.Run("redelivery inside the window is suppressed", func(t *testing.T) {
		model := &stubModel{response: `{"anomaly_detected": true, "anomaly_type": "thermal_overheat"}`}
		deps, db := testDeps(t, model)
		worker := NewAnomalyWorker(deps)

		eventID := ingestEvent(t, deps, "VH-RUN-2", func(r *models.IngestTelemetryRequest) {
			r.CoolantTempC = 118
		})
		raw := envelope(t, map[string]any{"event_id": eventID, "vehicle_id": "VH-RUN-2"})

		require.NoError(t, worker.Handle(ctx, raw))
		err := worker.Handle(ctx, raw)
		assert.ErrorIs(t, err, bus.ErrSkipped)

		// One model call, one case, one event.
		assert.Equal(t, 1, model.calls)
		assert.Len(t, publishedPayloads(t, db, deps.Topics.AnomalyDetected), 1)
	})

	t.Run("redelivery after the case advanced is suppressed", func(t *testing.T) {
		model := &stubModel{response: `{"anomaly_detected": true, "anomaly_type": "thermal_overheat"}`}
		deps, db := testDeps(t, model)
		worker := NewAnomalyWorker(deps)

		eventID := ingestEvent(t, deps, "VH-RUN-ADV", func(r *models.IngestTelemetryRequest) {
			r.CoolantTempC = 118
		})
		raw := envelope(t, map[string]any{"event_id": eventID, "vehicle_id": "VH-RUN-ADV"})
		require.NoError(t, worker.Handle(ctx, raw))

		// Downstream stages carry the case forward before the broker
		// redelivers the detection trigger.
		created, err := deps.Anomalies.LatestForVehicle(ctx, "VH-RUN-ADV")
		require.NoError(t, err)
		require.NotNil(t, created)
		require.NoError(t, deps.Anomalies.AdvanceStatus(ctx, created.ID, anomalycase.StatusScheduled))

		err = worker.Handle(ctx, raw)
		assert.ErrorIs(t, err, bus.ErrSkipped)
		assert.Equal(t, 1, model.calls)
		assert.Len(t, publishedPayloads(t, db, deps.Topics.AnomalyDetected), 1)
	})

	t.Run("model may not invent an anomaly the rules did not fire", func(t *testing.T) {
		model := &stubModel{response: `{"anomaly_detected": true, "anomaly_type": "oil_overheat"}`}
		deps, db := testDeps(t, model)
		worker := NewAnomalyWorker(deps)

		eventID := ingestEvent(t, deps, "VH-RUN-3", nil) // healthy

		require.NoError(t, worker.Handle(ctx, envelope(t, map[string]any{
			"event_id": eventID, "vehicle_id": "VH-RUN-3",
		})))

		created, err := deps.Anomalies.LatestForVehicle(ctx, "VH-RUN-3")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.False(t, created.AnomalyDetected)
		assert.Nil(t, created.AnomalyType)
		assert.Empty(t, publishedPayloads(t, db, deps.Topics.AnomalyDetected))
	})

	t.Run("missing vehicle_id is not retryable", func(t *testing.T) {
		deps, _ := testDeps(t, &stubModel{response: "{}"})
		worker := NewAnomalyWorker(deps)

		err := worker.Handle(ctx, envelope(t, map[string]any{"event_id": "evt_x"}))
		assert.ErrorIs(t, err, bus.ErrNotRetryable)
	})

	t.Run("no telemetry skips", func(t *testing.T) {
		deps, _ := testDeps(t, &stubModel{response: "{}"})
		worker := NewAnomalyWorker(deps)

		err := worker.Handle(ctx, envelope(t, map[string]any{
			"event_id": "evt_x", "vehicle_id": "VH-EMPTY",
		}))
		assert.ErrorIs(t, err, bus.ErrSkipped)
	})

	t.Run("model failure surfaces for redelivery", func(t *testing.T) {
		model := &stubModel{err: errors.New("backend exploded")}
		deps, _ := testDeps(t, model)
		worker := NewAnomalyWorker(deps)

		eventID := ingestEvent(t, deps, "VH-RUN-4", func(r *models.IngestTelemetryRequest) {
			r.CoolantTempC = 120
		})
		err := worker.Handle(ctx, envelope(t, map[string]any{
			"event_id": eventID, "vehicle_id": "VH-RUN-4",
		}))
		require.Error(t, err)
		assert.NotErrorIs(t, err, bus.ErrSkipped)

		// Nothing committed.
		created, err := deps.Anomalies.LatestForVehicle(ctx, "VH-RUN-4")
		require.NoError(t, err)
		assert.Nil(t, created)
	})
}

func TestDiagnosisWorker_Handle(t *testing.T) {
	ctx := context.Background()

	seedAnomaly := func(t *testing.T, deps Deps, vehicleID string) (string, []string) {
		eventID := ingestEvent(t, deps, vehicleID, func(r *models.IngestTelemetryRequest) {
			r.CoolantTempC = 115
			r.DtcCodes = []string{"P0301"}
		})
		sev := 0.625
		typ := "thermal_overheat"
		created, err := deps.Anomalies.Create(ctx, services.AnomalyCaseInput{
			VehicleID:         vehicleID,
			AnomalyDetected:   true,
			AnomalyType:       &typ,
			SeverityScore:     &sev,
			TelemetryEventIDs: []string{eventID},
		})
		require.NoError(t, err)
		return created.ID, []string{eventID}
	}

	t.Run("commits a diagnosis and advances the anomaly", func(t *testing.T) {
		model := &stubModel{response: `{"component": "engine_coolant_system", "failure_probability": 0.7, "estimated_rul_days": 15, "severity": "Low"}`}
		deps, db := testDeps(t, model)
		worker := NewDiagnosisWorker(deps)

		caseID, _ := seedAnomaly(t, deps, "VH-DIAG-1")

		require.NoError(t, worker.Handle(ctx, envelope(t, map[string]any{
			"case_id": caseID, "vehicle_id": "VH-DIAG-1", "anomaly_type": "thermal_overheat",
		})))

		diag, err := deps.Diagnoses.LatestForCase(ctx, caseID)
		require.NoError(t, err)
		require.NotNil(t, diag)
		assert.Equal(t, "engine_coolant_system", diag.Component)
		assert.InDelta(t, 0.7, diag.FailureProbability, 1e-9)
		assert.Equal(t, 15, diag.EstimatedRulDays)
		// Severity is re-derived from failure probability, never trusted.
		assert.Equal(t, diagnosiscase.SeverityHigh, diag.Severity)

		anomaly, err := deps.Anomalies.Get(ctx, caseID)
		require.NoError(t, err)
		assert.Equal(t, anomalycase.StatusDiagnosed, anomaly.Status)

		payloads := publishedPayloads(t, db, deps.Topics.DiagnosisComplete)
		require.Len(t, payloads, 1)
		assert.Equal(t, diag.ID, payloads[0]["diagnosis_id"])
		assert.Equal(t, "diagnosis", payloads[0]["agent_stage"])
	})

	t.Run("case that was never detected skips", func(t *testing.T) {
		deps, _ := testDeps(t, &stubModel{response: "{}"})
		worker := NewDiagnosisWorker(deps)

		clean, err := deps.Anomalies.Create(ctx, services.AnomalyCaseInput{
			VehicleID: "VH-DIAG-2", AnomalyDetected: false,
		})
		require.NoError(t, err)

		err = worker.Handle(ctx, envelope(t, map[string]any{
			"case_id": clean.ID, "vehicle_id": "VH-DIAG-2",
		}))
		assert.ErrorIs(t, err, bus.ErrSkipped)
	})

	t.Run("existing pending diagnosis suppresses redelivery", func(t *testing.T) {
		model := &stubModel{response: `{"component": "engine_coolant_system", "failure_probability": 0.7}`}
		deps, _ := testDeps(t, model)
		worker := NewDiagnosisWorker(deps)

		caseID, _ := seedAnomaly(t, deps, "VH-DIAG-3")
		raw := envelope(t, map[string]any{"case_id": caseID, "vehicle_id": "VH-DIAG-3"})

		require.NoError(t, worker.Handle(ctx, raw))
		assert.ErrorIs(t, worker.Handle(ctx, raw), bus.ErrSkipped)
		assert.Equal(t, 1, model.calls)
	})

	t.Run("claims the case before the model call and stays retryable", func(t *testing.T) {
		model := &stubModel{err: errors.New("backend exploded")}
		deps, _ := testDeps(t, model)
		worker := NewDiagnosisWorker(deps)

		caseID, _ := seedAnomaly(t, deps, "VH-DIAG-5")
		raw := envelope(t, map[string]any{"case_id": caseID, "vehicle_id": "VH-DIAG-5"})

		err := worker.Handle(ctx, raw)
		require.Error(t, err)
		assert.NotErrorIs(t, err, bus.ErrSkipped)

		anomaly, err := deps.Anomalies.Get(ctx, caseID)
		require.NoError(t, err)
		assert.Equal(t, anomalycase.StatusDiagnosing, anomaly.Status)

		// Redelivery finds the claimed case and reruns the model.
		model.err = nil
		model.response = `{"component": "engine_coolant_system", "failure_probability": 0.7}`
		require.NoError(t, worker.Handle(ctx, raw))

		anomaly, err = deps.Anomalies.Get(ctx, caseID)
		require.NoError(t, err)
		assert.Equal(t, anomalycase.StatusDiagnosed, anomaly.Status)
	})

	t.Run("missing case skips", func(t *testing.T) {
		deps, _ := testDeps(t, &stubModel{response: "{}"})
		worker := NewDiagnosisWorker(deps)

		err := worker.Handle(ctx, envelope(t, map[string]any{
			"case_id": "case_gone", "vehicle_id": "VH-DIAG-4",
		}))
		assert.ErrorIs(t, err, bus.ErrSkipped)
	})
}
