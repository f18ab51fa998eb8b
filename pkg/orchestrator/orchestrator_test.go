package orchestrator

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/config"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/services"
	"github.com/fleetsense/fleetsense/pkg/warehouse"
	testdb "github.com/fleetsense/fleetsense/test/database"
)

type recordingNotifier struct {
	reviews []*ent.HumanReview
}

func (n *recordingNotifier) ReviewCreated(ctx context.Context, review *ent.HumanReview) {
	n.reviews = append(n.reviews, review)
}

func newTestOrchestrator(t *testing.T) (*Orchestrator, Deps, *recordingNotifier, *stdsql.DB) {
	t.Helper()
	client := testdb.NewPipelineTestClient(t)

	notifier := &recordingNotifier{}
	deps := Deps{
		Pipeline:  services.NewPipelineService(client.Client),
		Anomalies: services.NewAnomalyService(client.Client),
		Diagnoses: services.NewDiagnosisService(client.Client),
		Rcas:      services.NewRcaService(client.Client),
		Sink:      warehouse.NewSink(client.DB()),
		Publisher: bus.NewPublisher(client.DB()),
		Notifier:  notifier,
		Defaults:  config.DefaultDefaults(),
		Topics:    config.DefaultTopics(),
	}
	return New(deps), deps, notifier, client.DB()
}

func envelope(t *testing.T, payload map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return raw
}

func topicCount(t *testing.T, db *stdsql.DB, topic string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(
		"SELECT count(*) FROM bus_messages WHERE topic = $1", topic).Scan(&n))
	return n
}

func latestPayload(t *testing.T, db *stdsql.DB, topic string) map[string]any {
	t.Helper()
	var raw []byte
	require.NoError(t, db.QueryRow(
		"SELECT payload FROM bus_messages WHERE topic = $1 ORDER BY id DESC LIMIT 1", topic).Scan(&raw))
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func TestOrchestrator_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("routes a confident detection to diagnosis", func(t *testing.T) {
		o, deps, notifier, db := newTestOrchestrator(t)

		err := o.Handle(ctx, envelope(t, map[string]any{
			"case_id":      "case_r1",
			"vehicle_id":   "VH-1",
			"anomaly_type": "low_charge",
			"confidence":   0.92,
			"agent_stage":  "data_analysis",
		}))
		require.NoError(t, err)
		assert.Empty(t, notifier.reviews)

		require.Equal(t, 1, topicCount(t, db, deps.Topics.DiagnosisDispatch))
		dispatched := latestPayload(t, db, deps.Topics.DiagnosisDispatch)
		assert.Equal(t, "case_r1", dispatched["case_id"])
		assert.Equal(t, "diagnosis", dispatched["agent_stage"])

		state, err := deps.Pipeline.GetState(ctx, "case_r1")
		require.NoError(t, err)
		assert.Equal(t, "data_analysis", state.CurrentStage)
		require.NotNil(t, state.NextStage)
		assert.Equal(t, "diagnosis", *state.NextStage)
		assert.InDelta(t, 0.92, state.Confidence, 1e-9)

		var mirrored int
		require.NoError(t, db.QueryRow(
			"SELECT count(*) FROM wh_pipeline_states WHERE case_id = 'case_r1'").Scan(&mirrored))
		assert.Equal(t, 1, mirrored)
	})

	t.Run("low confidence on a gated stage parks for review", func(t *testing.T) {
		o, deps, notifier, db := newTestOrchestrator(t)

		err := o.Handle(ctx, envelope(t, map[string]any{
			"case_id":      "case_r2",
			"vehicle_id":   "VH-2",
			"anomaly_type": "thermal_overheat",
			"confidence":   0.4,
			"agent_stage":  "data_analysis",
		}))
		require.NoError(t, err)

		assert.Zero(t, topicCount(t, db, deps.Topics.DiagnosisDispatch))
		require.Len(t, notifier.reviews, 1)
		assert.Equal(t, "case_r2_data_analysis", notifier.reviews[0].ID)

		reviews, err := deps.Pipeline.ListPendingReviews(ctx)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.InDelta(t, 0.4, reviews[0].Confidence, 1e-9)

		state, err := deps.Pipeline.GetState(ctx, "case_r2")
		require.NoError(t, err)
		assert.Nil(t, state.NextStage)
	})

	t.Run("scheduling is not gated and routes at default confidence", func(t *testing.T) {
		o, deps, notifier, db := newTestOrchestrator(t)

		err := o.Handle(ctx, envelope(t, map[string]any{
			"scheduling_id": "scheduling_1",
			"rca_id":        "rca_1",
			"case_id":       "case_r3",
			"vehicle_id":    "VH-3",
			"agent_stage":   "scheduling",
		}))
		require.NoError(t, err)
		assert.Empty(t, notifier.reviews)
		assert.Equal(t, 1, topicCount(t, db, deps.Topics.EngagementDispatch))

		state, err := deps.Pipeline.GetState(ctx, "case_r3")
		require.NoError(t, err)
		assert.InDelta(t, defaultConfidence, state.Confidence, 1e-9)
	})

	t.Run("diagnosis confidence falls back to the record", func(t *testing.T) {
		o, deps, notifier, db := newTestOrchestrator(t)

		diag, err := deps.Diagnoses.Create(ctx, services.DiagnosisCaseInput{
			CaseID:             "case_r4",
			VehicleID:          "VH-4",
			Component:          "engine",
			FailureProbability: 0.55,
			EstimatedRulDays:   12,
			Severity:           "Medium",
		})
		require.NoError(t, err)

		err = o.Handle(ctx, envelope(t, map[string]any{
			"diagnosis_id": diag.ID,
			"case_id":      "case_r4",
			"vehicle_id":   "VH-4",
			"agent_stage":  "diagnosis",
		}))
		require.NoError(t, err)

		// 0.55 < 0.85: parked, not routed.
		assert.Zero(t, topicCount(t, db, deps.Topics.RcaDispatch))
		require.Len(t, notifier.reviews, 1)
		assert.InDelta(t, 0.55, notifier.reviews[0].Confidence, 1e-9)
	})

	t.Run("manufacturing is terminal", func(t *testing.T) {
		o, deps, _, db := newTestOrchestrator(t)

		err := o.Handle(ctx, envelope(t, map[string]any{
			"manufacturing_id": "manufacturing_1",
			"feedback_id":      "feedback_1",
			"case_id":          "case_r5",
			"vehicle_id":       "VH-5",
			"confidence":       0.9,
			"agent_stage":      "manufacturing",
		}))
		require.NoError(t, err)

		var busTotal int
		require.NoError(t, db.QueryRow("SELECT count(*) FROM bus_messages").Scan(&busTotal))
		assert.Zero(t, busTotal)

		state, err := deps.Pipeline.GetState(ctx, "case_r5")
		require.NoError(t, err)
		assert.Equal(t, "manufacturing", state.CurrentStage)
		assert.Nil(t, state.NextStage)
	})

	t.Run("feedback routes to manufacturing", func(t *testing.T) {
		o, deps, _, db := newTestOrchestrator(t)

		err := o.Handle(ctx, envelope(t, map[string]any{
			"feedback_id": "feedback_2",
			"booking_id":  "booking_2",
			"case_id":     "case_r6",
			"vehicle_id":  "VH-6",
			"agent_stage": "feedback",
		}))
		require.NoError(t, err)
		assert.Equal(t, 1, topicCount(t, db, deps.Topics.ManufacturingDispatch))
	})

	t.Run("repeated gating collapses onto one review", func(t *testing.T) {
		o, deps, notifier, _ := newTestOrchestrator(t)

		raw := envelope(t, map[string]any{
			"case_id":      "case_r7",
			"vehicle_id":   "VH-7",
			"anomaly_type": "thermal_overheat",
			"confidence":   0.3,
			"agent_stage":  "data_analysis",
		})
		require.NoError(t, o.Handle(ctx, raw))
		require.NoError(t, o.Handle(ctx, raw))

		reviews, err := deps.Pipeline.ListPendingReviews(ctx)
		require.NoError(t, err)
		assert.Len(t, reviews, 1)
		assert.Len(t, notifier.reviews, 2)
	})

	t.Run("unidentifiable envelope is not retryable", func(t *testing.T) {
		o, _, _, _ := newTestOrchestrator(t)

		err := o.Handle(ctx, envelope(t, map[string]any{"vehicle_id": "VH-8"}))
		assert.ErrorIs(t, err, bus.ErrNotRetryable)
	})

	t.Run("missing case_id is not retryable", func(t *testing.T) {
		o, _, _, _ := newTestOrchestrator(t)

		err := o.Handle(ctx, envelope(t, map[string]any{"agent_stage": "rca", "rca_id": "rca_9"}))
		assert.ErrorIs(t, err, bus.ErrNotRetryable)
	})
}

func TestInferStage(t *testing.T) {
	cases := []struct {
		name string
		env  bus.Envelope
		want models.Stage
		ok   bool
	}{
		{"explicit tag wins", bus.Envelope{"agent_stage": "rca", "diagnosis_id": "d"}, models.StageRca, true},
		{"invalid tag falls through to keys", bus.Envelope{"agent_stage": "nonsense", "rca_id": "r"}, models.StageRca, true},
		{"manufacturing outranks its feedback ancestor key", bus.Envelope{"manufacturing_id": "m", "feedback_id": "f"}, models.StageManufacturing, true},
		{"communication outranks engagement", bus.Envelope{"communication_id": "c", "engagement_id": "e"}, models.StageCommunication, true},
		{"engagement outranks scheduling", bus.Envelope{"engagement_id": "e", "scheduling_id": "s"}, models.StageEngagement, true},
		{"scheduling outranks rca", bus.Envelope{"scheduling_id": "s", "rca_id": "r"}, models.StageScheduling, true},
		{"rca outranks diagnosis", bus.Envelope{"rca_id": "r", "diagnosis_id": "d"}, models.StageRca, true},
		{"anomaly shape", bus.Envelope{"anomaly_type": "low_charge", "case_id": "c"}, models.StageDataAnalysis, true},
		{"unknown shape", bus.Envelope{"vehicle_id": "v"}, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := inferStage(tc.env)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
