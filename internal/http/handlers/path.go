package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillone/skillpath-backend/internal/http/response"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
	"github.com/skillone/skillpath-backend/internal/services"
)

type PathHandler struct {
	log             *logger.Logger
	recommendations services.RecommendationService
}

func NewPathHandler(recommendations services.RecommendationService, baseLog *logger.Logger) *PathHandler {
	return &PathHandler{
		log:             baseLog.With("handler", "PathHandler"),
		recommendations: recommendations,
	}
}

type generatePathRequest struct {
	LearnerID        string   `json:"learner_id"`
	CareerGoal       string   `json:"career_goal"`
	EducationLevel   string   `json:"education_level"`
	DesiredSkills    []string `json:"desired_skills"`
	Interests        []string `json:"interests"`
	ProficiencyLevel string   `json:"proficiency_level"`
}

// POST /api/generate-learning-path
func (h *PathHandler) GenerateLearningPath(c *gin.Context) {
	var req generatePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	out, err := h.recommendations.GenerateLearningPath(c.Request.Context(), services.GeneratePathInput{
		LearnerID:        req.LearnerID,
		CareerGoal:       req.CareerGoal,
		EducationLevel:   req.EducationLevel,
		DesiredSkills:    req.DesiredSkills,
		Interests:        req.Interests,
		ProficiencyLevel: req.ProficiencyLevel,
	})
	if err != nil {
		response.RespondServiceError(c, "path_generation_failed", err)
		return
	}

	response.RespondOK(c, out)
}

// GET /api/learning-paths/:learner_id
func (h *PathHandler) ListLearningPaths(c *gin.Context) {
	rows, err := h.recommendations.ListLearningPaths(c.Request.Context(), c.Param("learner_id"))
	if err != nil {
		response.RespondServiceError(c, "load_paths_failed", err)
		return
	}

	response.RespondOK(c, gin.H{"paths": rows})
}
