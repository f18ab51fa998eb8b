// Package e2e runs the pipeline end to end against a real PostgreSQL bus:
// stage workers and the orchestrator are registered on one dispatcher, a
// scripted model stands in for the real backend, and the test drives the
// flow purely by publishing the entry-point events.
package e2e

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/ent"
	"github.com/fleetsense/fleetsense/ent/anomalycase"
	"github.com/fleetsense/fleetsense/ent/engagementcase"
	"github.com/fleetsense/fleetsense/ent/feedbackcase"
	"github.com/fleetsense/fleetsense/ent/manufacturingcase"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/config"
	"github.com/fleetsense/fleetsense/pkg/llm"
	"github.com/fleetsense/fleetsense/pkg/models"
	"github.com/fleetsense/fleetsense/pkg/orchestrator"
	"github.com/fleetsense/fleetsense/pkg/services"
	"github.com/fleetsense/fleetsense/pkg/stages"
	"github.com/fleetsense/fleetsense/pkg/warehouse"
	testdb "github.com/fleetsense/fleetsense/test/database"
)

const (
	waitFor = 45 * time.Second
	tick    = 100 * time.Millisecond
)

// scriptedModel answers each stage's prompt with a canned JSON response,
// keyed on the analyst persona named at the top of the prompt.
type scriptedModel struct {
	mu      sync.Mutex
	prompts []string
}

var stageScripts = []struct {
	marker   string
	response string
}{
	{
		marker: "vehicle diagnostics analyst",
		response: `{"anomaly_detected": true, "anomaly_type": "thermal_overheat",
			"severity_score": 0.62, "reasoning": "coolant trending past the overheat limit"}`,
	},
	{
		marker: "failure-mode analyst",
		response: `{"component": "engine_coolant_system", "failure_probability": 0.7,
			"estimated_rul_days": 18, "severity": "High", "reasoning": "sustained overheat"}`,
	},
	{
		marker: "root-cause analyst",
		response: `{"root_cause": "coolant pump impeller wear", "confidence": 0.9,
			"recommended_action": "Replace coolant pump and flush circuit", "capa_type": "Corrective"}`,
	},
	{
		marker: "service scheduler",
		response: `{"best_slot": "not-an-instant", "service_center": "", "reasoning": "take the earliest"}`,
	},
	{
		marker: "service advisor calling",
		response: `{"customer_decision": "declined", "transcript": [
			{"speaker": "agent", "text": "We found a coolant pump issue on your vehicle."},
			{"speaker": "customer", "text": "Not right now, thanks."}]}`,
	},
	{
		marker: "service-quality evaluator",
		response: `{"cei_score": 4.5, "validation_label": "Correct", "reasoning": "issue resolved, telemetry clean"}`,
	},
	{
		marker: "manufacturing-quality engineer",
		response: `{"issue": "Coolant pump impeller wear cluster", "capa_recommendation": "Audit impeller supplier batch",
			"severity": "Medium", "recurrence_cluster_size": 1}`,
	},
}

func (m *scriptedModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	for _, s := range stageScripts {
		if strings.Contains(prompt, s.marker) {
			return s.response, nil
		}
	}
	return "", fmt.Errorf("no script for prompt: %.80s", prompt)
}

// stagesHit reports which scripted personas were consulted, in call order.
func (m *scriptedModel) stagesHit() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var hit []string
	for _, p := range m.prompts {
		for _, s := range stageScripts {
			if strings.Contains(p, s.marker) {
				hit = append(hit, s.marker)
				break
			}
		}
	}
	return hit
}

// harness is one fully wired replica over a per-test database schema.
type harness struct {
	client     *ent.Client
	db         *stdsql.DB
	deps       stages.Deps
	pipeline   *services.PipelineService
	bookings   *services.BookingService
	dispatcher *bus.Dispatcher
	model      *scriptedModel
}

func newHarness(t *testing.T, threshold float64) *harness {
	t.Helper()
	db := testdb.NewPipelineTestClient(t)

	defaults := config.DefaultDefaults()
	defaults.JitterMax = 0
	defaults.ConfidenceThreshold = threshold

	queue := &config.QueueConfig{
		WorkerCount:             4,
		PollInterval:            25 * time.Millisecond,
		PollIntervalJitter:      0,
		MaxAttempts:             3,
		HandlerTimeout:          30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
	}
	topics := config.DefaultTopics()

	model := &scriptedModel{}
	deps := stages.Deps{
		Telemetry:      services.NewTelemetryService(db.Client),
		Vehicles:       services.NewVehicleService(db.Client),
		Anomalies:      services.NewAnomalyService(db.Client),
		Diagnoses:      services.NewDiagnosisService(db.Client),
		Rcas:           services.NewRcaService(db.Client),
		Schedulings:    services.NewSchedulingService(db.Client),
		Engagements:    services.NewEngagementService(db.Client),
		Bookings:       services.NewBookingService(db.Client),
		Communications: services.NewCommunicationService(db.Client),
		Feedbacks:      services.NewFeedbackService(db.Client),
		Manufacturing:  services.NewManufacturingService(db.Client),
		Sink:           warehouse.NewSink(db.DB()),
		Model:          llm.NewRetry(model),
		Publisher:      bus.NewPublisher(db.DB()),
		Defaults:       defaults,
		Topics:         topics,
		Centers:        config.NewCenterRegistry(config.DefaultCenters()),
	}
	pipeline := services.NewPipelineService(db.Client)

	orch := orchestrator.New(orchestrator.Deps{
		Pipeline:  pipeline,
		Anomalies: deps.Anomalies,
		Diagnoses: deps.Diagnoses,
		Rcas:      deps.Rcas,
		Sink:      deps.Sink,
		Publisher: deps.Publisher,
		Defaults:  defaults,
		Topics:    topics,
	})

	dispatcher := bus.NewDispatcher("e2e", db.Client, queue)
	dispatcher.Register(topics.TelemetryIngested, stages.NewAnomalyWorker(deps).Handle)
	dispatcher.Register(topics.DiagnosisDispatch, stages.NewDiagnosisWorker(deps).Handle)
	dispatcher.Register(topics.RcaDispatch, stages.NewRcaWorker(deps).Handle)
	dispatcher.Register(topics.SchedulingDispatch, stages.NewSchedulingWorker(deps).Handle)
	dispatcher.Register(topics.EngagementDispatch, stages.NewEngagementWorker(deps).Handle)
	dispatcher.Register(topics.CommunicationTrigger, stages.NewCommunicationWorker(deps).Handle)
	dispatcher.Register(topics.FeedbackRequested, stages.NewFeedbackWorker(deps).Handle)
	dispatcher.Register(topics.ManufacturingDispatch, stages.NewManufacturingWorker(deps).Handle)
	for _, topic := range topics.CompletionTopics() {
		dispatcher.Register(topic, orch.Handle)
	}

	require.NoError(t, dispatcher.Start(context.Background()))
	t.Cleanup(dispatcher.Stop)

	return &harness{
		client:     db.Client,
		db:         db.DB(),
		deps:       deps,
		pipeline:   pipeline,
		bookings:   services.NewBookingService(db.Client),
		dispatcher: dispatcher,
		model:      model,
	}
}

func (h *harness) ingest(t *testing.T, req models.IngestTelemetryRequest) *ent.TelemetryEvent {
	t.Helper()
	evt, err := h.deps.Telemetry.Ingest(context.Background(), req)
	require.NoError(t, err)
	return evt
}

func overheatSample(vehicleID string) models.IngestTelemetryRequest {
	return models.IngestTelemetryRequest{
		VehicleID:     vehicleID,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		SpeedKmph:     52,
		EngineRpm:     2400,
		CoolantTempC:  115,
		OilTempC:      108,
		FuelLevelPct:  55,
		BatterySocPct: 78,
		BatterySohPct: 94,
	}
}

func healthySample(vehicleID string) models.IngestTelemetryRequest {
	return models.IngestTelemetryRequest{
		VehicleID:     vehicleID,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		SpeedKmph:     45,
		EngineRpm:     2100,
		CoolantTempC:  90,
		OilTempC:      101,
		FuelLevelPct:  70,
		BatterySocPct: 82,
		BatterySohPct: 94,
	}
}

func TestPipeline_TelemetryToEngagement(t *testing.T) {
	ctx := context.Background()
	// Rule severity for 115C coolant is 0.625, an anomaly confidence of
	// 0.375; a lowered threshold lets both flow paths clear the gate.
	h := newHarness(t, 0.3)

	_, err := h.deps.Vehicles.Upsert(ctx, models.VehicleRequest{
		VehicleID: "veh-e2e-001",
		OwnerName: "Priya Sharma",
		Make:      "Tata",
		Model:     "Nexon EV",
	})
	require.NoError(t, err)

	evt := h.ingest(t, overheatSample("veh-e2e-001"))
	require.NoError(t, h.deps.Publisher.Publish(ctx, h.deps.Topics.TelemetryIngested, map[string]any{
		"event_id":   evt.ID,
		"vehicle_id": "veh-e2e-001",
		"timestamp":  evt.Timestamp.UTC().Format(time.RFC3339),
	}))

	var engagement *ent.EngagementCase
	require.Eventually(t, func() bool {
		engagement, _ = h.client.EngagementCase.Query().
			Where(engagementcase.VehicleID("veh-e2e-001")).
			Only(ctx)
		return engagement != nil
	}, waitFor, tick, "engagement case never materialised")

	anomaly, err := h.client.AnomalyCase.Query().
		Where(anomalycase.VehicleID("veh-e2e-001")).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, anomaly.AnomalyType)
	assert.Equal(t, "thermal_overheat", string(*anomaly.AnomalyType))
	require.NotNil(t, anomaly.SeverityScore)
	assert.InDelta(t, 0.625, *anomaly.SeverityScore, 1e-9)

	diagnosis, err := h.deps.Diagnoses.LatestForCase(ctx, anomaly.ID)
	require.NoError(t, err)
	assert.Equal(t, "engine_coolant_system", diagnosis.Component)
	assert.InDelta(t, 0.7, diagnosis.FailureProbability, 1e-9)
	assert.Equal(t, 18, diagnosis.EstimatedRulDays)
	assert.Equal(t, "High", string(diagnosis.Severity))

	rca, err := h.deps.Rcas.Get(ctx, engagementRcaID(t, h, engagement))
	require.NoError(t, err)
	assert.Equal(t, "coolant pump impeller wear", rca.RootCause)
	assert.InDelta(t, 0.9, rca.Confidence, 1e-9)

	scheduling, err := h.deps.Schedulings.Get(ctx, engagement.SchedulingID)
	require.NoError(t, err)
	// The scripted pick is out of set, so the scheduler falls back to the
	// first offered slot.
	assert.NotEmpty(t, scheduling.ServiceCenter)
	assert.Len(t, scheduling.FallbackSlots, 2)
	assert.Equal(t, "normal", string(scheduling.SlotType))

	assert.Equal(t, "declined", string(engagement.CustomerDecision))
	assert.Nil(t, engagement.BookingID)

	// Declined engagement is terminal for this path. The orchestrator
	// records the state after the stage commit, so poll for it.
	var state *ent.PipelineState
	require.Eventually(t, func() bool {
		state, _ = h.pipeline.GetState(ctx, anomaly.ID)
		return state != nil && state.CurrentStage == string(models.StageEngagement)
	}, waitFor, tick, "terminal pipeline state never recorded")
	assert.Nil(t, state.NextStage)

	reviews, err := h.pipeline.ListPendingReviews(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	assert.Equal(t, []string{
		"vehicle diagnostics analyst",
		"failure-mode analyst",
		"root-cause analyst",
		"service scheduler",
		"service advisor calling",
	}, h.model.stagesHit())

	assertMirrored(t, h, "wh_anomaly_cases", "wh_diagnosis_cases", "wh_rca_cases",
		"wh_scheduling_cases", "wh_engagement_cases", "wh_pipeline_states")
}

func TestPipeline_FeedbackToManufacturing(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 0.3)

	_, err := h.deps.Vehicles.Upsert(ctx, models.VehicleRequest{
		VehicleID: "veh-e2e-002",
		OwnerName: "Arun Mehta",
	})
	require.NoError(t, err)

	// A serviced case: anomaly plus diagnosis on record, booking completed.
	anomalyType := "thermal_overheat"
	severity := 0.625
	anomaly, err := h.deps.Anomalies.Create(ctx, services.AnomalyCaseInput{
		VehicleID:       "veh-e2e-002",
		AnomalyDetected: true,
		AnomalyType:     &anomalyType,
		SeverityScore:   &severity,
	})
	require.NoError(t, err)
	_, err = h.deps.Diagnoses.Create(ctx, services.DiagnosisCaseInput{
		CaseID:             anomaly.ID,
		VehicleID:          "veh-e2e-002",
		Component:          "engine_coolant_system",
		FailureProbability: 0.7,
		EstimatedRulDays:   18,
		Severity:           "High",
	})
	require.NoError(t, err)
	booking, err := h.bookings.Create(ctx, services.BookingInput{
		BookingID:     "bk-e2e-002",
		CaseID:        anomaly.ID,
		VehicleID:     "veh-e2e-002",
		ServiceCenter: "center_001",
		ScheduledSlot: time.Now().UTC().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	post := h.ingest(t, healthySample("veh-e2e-002"))
	rating := 5
	require.NoError(t, h.deps.Publisher.Publish(ctx, h.deps.Topics.FeedbackRequested, map[string]any{
		"booking_id":             booking.ID,
		"technician_notes":       "Replaced coolant pump, flushed circuit",
		"customer_rating":        rating,
		"post_service_event_ids": []string{post.ID},
	}))

	var manufacturing *ent.ManufacturingCase
	require.Eventually(t, func() bool {
		manufacturing, _ = h.client.ManufacturingCase.Query().
			Where(manufacturingcase.VehicleID("veh-e2e-002")).
			Only(ctx)
		return manufacturing != nil
	}, waitFor, tick, "manufacturing case never materialised")

	feedback, err := h.client.FeedbackCase.Query().
		Where(feedbackcase.BookingID(booking.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, feedback.CeiScore, 1e-9)
	assert.Equal(t, "Correct", string(feedback.ValidationLabel))
	assert.False(t, feedback.RecommendedRetrain)
	assert.Equal(t, feedbackcase.StatusManufacturingComplete, feedback.Status)

	assert.Equal(t, feedback.ID, manufacturing.FeedbackID)
	assert.Equal(t, "Coolant pump impeller wear cluster", manufacturing.Issue)
	assert.Equal(t, "Medium", string(manufacturing.Severity))
	assert.GreaterOrEqual(t, manufacturing.RecurrenceClusterSize, 1)

	var state *ent.PipelineState
	require.Eventually(t, func() bool {
		state, _ = h.pipeline.GetState(ctx, anomaly.ID)
		return state != nil && state.CurrentStage == string(models.StageManufacturing)
	}, waitFor, tick, "terminal pipeline state never recorded")
	assert.Nil(t, state.NextStage)

	assertMirrored(t, h, "wh_feedback_cases", "wh_manufacturing_cases")
}

func TestPipeline_LowConfidenceParksForReview(t *testing.T) {
	ctx := context.Background()
	// Default threshold: anomaly confidence 0.375 is below 0.85, so the
	// orchestrator must stop routing at data_analysis.
	h := newHarness(t, 0.85)

	evt := h.ingest(t, overheatSample("veh-e2e-003"))
	require.NoError(t, h.deps.Publisher.Publish(ctx, h.deps.Topics.TelemetryIngested, map[string]any{
		"event_id":   evt.ID,
		"vehicle_id": "veh-e2e-003",
		"timestamp":  evt.Timestamp.UTC().Format(time.RFC3339),
	}))

	var reviews []*ent.HumanReview
	require.Eventually(t, func() bool {
		reviews, _ = h.pipeline.ListPendingReviews(ctx)
		return len(reviews) == 1
	}, waitFor, tick, "no human review was parked")

	review := reviews[0]
	assert.Equal(t, string(models.StageDataAnalysis), review.Stage)
	assert.InDelta(t, 0.375, review.Confidence, 1e-9)

	anomaly, err := h.client.AnomalyCase.Query().
		Where(anomalycase.VehicleID("veh-e2e-003")).
		Only(ctx)
	require.NoError(t, err)

	var state *ent.PipelineState
	require.Eventually(t, func() bool {
		state, _ = h.pipeline.GetState(ctx, anomaly.ID)
		return state != nil
	}, waitFor, tick, "gated pipeline state never recorded")
	assert.Equal(t, string(models.StageDataAnalysis), state.CurrentStage)
	assert.Nil(t, state.NextStage)

	// Routing stopped: the diagnosis stage never ran.
	count, err := h.client.DiagnosisCase.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, []string{"vehicle diagnostics analyst"}, h.model.stagesHit())
}

// engagementRcaID walks engagement -> scheduling -> rca.
func engagementRcaID(t *testing.T, h *harness, e *ent.EngagementCase) string {
	t.Helper()
	sc, err := h.deps.Schedulings.Get(context.Background(), e.SchedulingID)
	require.NoError(t, err)
	return sc.RcaID
}

// assertMirrored checks each analytics table received at least one row.
func assertMirrored(t *testing.T, h *harness, tables ...string) {
	t.Helper()
	for _, table := range tables {
		var n int
		require.NoError(t, h.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
		assert.Positive(t, n, table)
	}
}
