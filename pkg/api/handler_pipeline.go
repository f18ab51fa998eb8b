package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// caseState handles GET /api/v1/cases/:id/state.
func (s *Server) caseState(c *gin.Context) {
	state, err := s.deps.Pipeline.GetState(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// listReviews handles GET /api/v1/reviews: the pending operator queue.
func (s *Server) listReviews(c *gin.Context) {
	reviews, err := s.deps.Pipeline.ListPendingReviews(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// resolveReview handles PUT /api/v1/reviews/:id/resolve.
func (s *Server) resolveReview(c *gin.Context) {
	review, err := s.deps.Pipeline.ResolveReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}
