package api

import (
	"bytes"
	"context"
	stdsql "database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/config"
	"github.com/fleetsense/fleetsense/pkg/database"
	"github.com/fleetsense/fleetsense/pkg/services"
	testdb "github.com/fleetsense/fleetsense/test/database"
)

func newTestServer(t *testing.T) (*Server, *gin.Engine, *database.Client) {
	t.Helper()
	client := testdb.NewPipelineTestClient(t)

	cfg := &config.Config{
		Defaults:      config.DefaultDefaults(),
		Queue:         config.DefaultQueueConfig(),
		Topics:        config.DefaultTopics(),
		Centers:       config.NewCenterRegistry(config.DefaultCenters()),
		Notifications: config.DefaultNotificationsConfig(),
		Retention:     config.DefaultRetentionConfig(),
	}
	deps := Deps{
		Telemetry:      services.NewTelemetryService(client.Client),
		Vehicles:       services.NewVehicleService(client.Client),
		Engagements:    services.NewEngagementService(client.Client),
		Communications: services.NewCommunicationService(client.Client),
		Pipeline:       services.NewPipelineService(client.Client),
		Publisher:      bus.NewPublisher(client.DB()),
	}
	srv := NewServer(cfg, client, deps)
	return srv, srv.Router(), client
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doForm(t *testing.T, router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func topicPayloads(t *testing.T, db *stdsql.DB, topic string) []map[string]any {
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

func TestHealth(t *testing.T) {
	_, router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
}

func TestIngestTelemetry(t *testing.T) {
	srv, router, client := newTestServer(t)

	t.Run("persists and announces the event", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/ingest_telemetry", map[string]any{
			"vehicle_id":     "veh_100",
			"timestamp":      "2026-02-01T10:00:00Z",
			"speed_kmph":     42.0,
			"coolant_temp_c": 90.0,
		})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "success", body["status"])
		eventID, _ := body["event_id"].(string)
		require.True(t, strings.HasPrefix(eventID, "evt_"), "got %q", eventID)

		event, err := client.TelemetryEvent.Get(context.Background(), eventID)
		require.NoError(t, err)
		assert.Equal(t, "veh_100", event.VehicleID)

		published := topicPayloads(t, client.DB(), srv.cfg.Topics.TelemetryIngested)
		require.Len(t, published, 1)
		assert.Equal(t, eventID, published[0]["event_id"])
		assert.Equal(t, "veh_100", published[0]["vehicle_id"])
	})

	t.Run("keeps a supplied event id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/ingest_telemetry", map[string]any{
			"event_id":   "evt_supplied01",
			"vehicle_id": "veh_100",
			"timestamp":  "2026-02-01T10:01:00Z",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "evt_supplied01", decodeBody(t, w)["event_id"])
	})

	t.Run("rejects a missing vehicle id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/ingest_telemetry", map[string]any{
			"timestamp": "2026-02-01T10:00:00Z",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a duplicate event id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/ingest_telemetry", map[string]any{
			"event_id":   "evt_supplied01",
			"vehicle_id": "veh_100",
			"timestamp":  "2026-02-01T10:02:00Z",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("answers CORS preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ingest_telemetry", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSubmitFeedback(t *testing.T) {
	srv, router, client := newTestServer(t)

	t.Run("queues feedback with post-service telemetry", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/feedback", map[string]any{
			"booking_id":       "booking_ab12",
			"technician_notes": "Coolant flushed, thermostat replaced",
			"customer_rating":  5,
			"post_service_telemetry": []map[string]any{
				{"vehicle_id": "veh_200", "timestamp": "2026-02-02T09:00:00Z", "coolant_temp_c": 88.0},
			},
		})
		require.Equal(t, http.StatusAccepted, w.Code)

		published := topicPayloads(t, client.DB(), srv.cfg.Topics.FeedbackRequested)
		require.Len(t, published, 1)
		assert.Equal(t, "booking_ab12", published[0]["booking_id"])
		assert.Equal(t, "Coolant flushed, thermostat replaced", published[0]["technician_notes"])
		assert.Equal(t, float64(5), published[0]["customer_rating"])

		ids, ok := published[0]["post_service_event_ids"].([]any)
		require.True(t, ok)
		require.Len(t, ids, 1)

		// The attached samples become ordinary telemetry events but must
		// not wake the anomaly stage.
		assert.Empty(t, topicPayloads(t, client.DB(), srv.cfg.Topics.TelemetryIngested))
	})

	t.Run("rejects a missing booking id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/feedback", map[string]any{
			"technician_notes": "notes",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVehicleAndPipelineEndpoints(t *testing.T) {
	_, router, client := newTestServer(t)
	ctx := context.Background()

	t.Run("upserts a vehicle", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/vehicles", map[string]any{
			"vehicle_id":  "veh_300",
			"owner_name":  "Priya Sharma",
			"owner_phone": "9876543210",
		})
		require.Equal(t, http.StatusOK, w.Code)

		vehicle, err := client.Vehicle.Get(ctx, "veh_300")
		require.NoError(t, err)
		assert.Equal(t, "Priya Sharma", vehicle.OwnerName)
	})

	t.Run("unknown case state is a 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/cases/case_missing/state", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("review queue round trip", func(t *testing.T) {
		pipeline := services.NewPipelineService(client.Client)
		review, err := pipeline.CreateReview(ctx, "case_api1", "diagnosis", 0.5, map[string]any{"case_id": "case_api1"})
		require.NoError(t, err)

		w := doJSON(t, router, http.MethodGet, "/api/v1/reviews", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		reviews, ok := body["reviews"].([]any)
		require.True(t, ok)
		require.Len(t, reviews, 1)

		w = doJSON(t, router, http.MethodPut, "/api/v1/reviews/"+review.ID+"/resolve", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/v1/reviews", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body = decodeBody(t, w)
		reviews, _ = body["reviews"].([]any)
		assert.Empty(t, reviews)
	})

	t.Run("resolving an unknown review is a 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/reviews/rev_missing/resolve", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
