package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetsense/fleetsense/pkg/models"
)

// submitFeedback handles POST /api/v1/feedback, the operator entry point for
// post-service validation. Any attached post-service telemetry is ingested
// as ordinary events (without waking the anomaly stage) and referenced by ID
// in the feedback-requested signal.
func (s *Server) submitFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.BookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id is required"})
		return
	}

	ctx := c.Request.Context()

	eventIDs := make([]string, 0, len(req.PostServiceTelemetry))
	for _, sample := range req.PostServiceTelemetry {
		event, err := s.deps.Telemetry.Ingest(ctx, sample)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		eventIDs = append(eventIDs, event.ID)
	}

	payload := map[string]any{
		"booking_id":       req.BookingID,
		"technician_notes": req.TechnicianNotes,
	}
	if req.CustomerRating != nil {
		payload["customer_rating"] = *req.CustomerRating
	}
	if len(eventIDs) > 0 {
		payload["post_service_event_ids"] = eventIDs
	}
	if err := s.deps.Publisher.Publish(ctx, s.cfg.Topics.FeedbackRequested, payload); err != nil {
		s.log.Error("failed to publish feedback-requested", "booking_id", req.BookingID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue feedback"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":     "accepted",
		"booking_id": req.BookingID,
	})
}
