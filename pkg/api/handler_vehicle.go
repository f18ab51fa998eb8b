package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetsense/fleetsense/pkg/models"
)

// upsertVehicle handles POST /api/v1/vehicles. Seeds or refreshes the
// owner-contact record the communication stage dials from.
func (s *Server) upsertVehicle(c *gin.Context) {
	var req models.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := s.deps.Vehicles.Upsert(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}
