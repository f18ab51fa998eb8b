package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleetsense/fleetsense/pkg/models"
)

// ingestTelemetry handles POST /ingest_telemetry. The event is persisted
// first; the bus signal that wakes the anomaly stage follows. A publish
// failure after the write is surfaced so the producer can resend with the
// same event_id (the insert is then a clean conflict).
func (s *Server) ingestTelemetry(c *gin.Context) {
	var req models.IngestTelemetryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := s.deps.Telemetry.Ingest(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	payload := map[string]any{
		"event_id":   event.ID,
		"vehicle_id": event.VehicleID,
		"timestamp":  event.Timestamp.UTC().Format(time.RFC3339),
	}
	if err := s.deps.Publisher.Publish(c.Request.Context(), s.cfg.Topics.TelemetryIngested, payload); err != nil {
		s.log.Error("failed to publish telemetry-ingested", "event_id", event.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "event stored but not announced, resend with the same event_id"})
		return
	}

	c.JSON(http.StatusOK, models.IngestTelemetryResponse{
		Status:  "success",
		EventID: event.ID,
	})
}
