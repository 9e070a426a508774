package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillone/skillpath-backend/internal/http/response"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
	"github.com/skillone/skillpath-backend/internal/services"
)

type InteractionHandler struct {
	log          *logger.Logger
	interactions services.InteractionService
}

func NewInteractionHandler(interactions services.InteractionService, baseLog *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		log:          baseLog.With("handler", "InteractionHandler"),
		interactions: interactions,
	}
}

type trackInteractionRequest struct {
	LearnerID       string `json:"learner_id"`
	CourseID        string `json:"course_id"`
	InteractionType string `json:"interaction_type"`
	Rating          *int   `json:"rating"`
}

// POST /api/track-interaction
func (h *InteractionHandler) TrackInteraction(c *gin.Context) {
	var req trackInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	row, err := h.interactions.Track(c.Request.Context(), services.TrackInteractionInput{
		LearnerID:       req.LearnerID,
		CourseID:        req.CourseID,
		InteractionType: req.InteractionType,
		Rating:          req.Rating,
	})
	if err != nil {
		response.RespondServiceError(c, "track_interaction_failed", err)
		return
	}

	response.RespondOK(c, gin.H{"success": true, "interaction_id": row.ID})
}

// GET /api/learners/:learner_id/interactions
func (h *InteractionHandler) ListLearnerInteractions(c *gin.Context) {
	rows, err := h.interactions.ListForLearner(c.Request.Context(), c.Param("learner_id"))
	if err != nil {
		response.RespondServiceError(c, "load_interactions_failed", err)
		return
	}

	response.RespondOK(c, gin.H{"interactions": rows})
}
