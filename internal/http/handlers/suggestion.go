package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/skillone/skillpath-backend/internal/http/response"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
	"github.com/skillone/skillpath-backend/internal/services"
)

type SuggestionHandler struct {
	log         *logger.Logger
	suggestions services.SuggestionService
}

func NewSuggestionHandler(suggestions services.SuggestionService, baseLog *logger.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		log:         baseLog.With("handler", "SuggestionHandler"),
		suggestions: suggestions,
	}
}

// GET /api/career-goals/suggestions?query=...
func (h *SuggestionHandler) GetSuggestions(c *gin.Context) {
	out, err := h.suggestions.Suggest(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.RespondServiceError(c, "load_suggestions_failed", err)
		return
	}

	response.RespondOK(c, gin.H{"suggestions": out})
}
