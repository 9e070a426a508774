package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/skillone/skillpath-backend/internal/data/repos"
	types "github.com/skillone/skillpath-backend/internal/domain"
	"github.com/skillone/skillpath-backend/internal/platform/apierr"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

type TrackInteractionInput struct {
	LearnerID       string
	CourseID        string
	InteractionType string
	Rating          *int
}

type InteractionService interface {
	Track(ctx context.Context, input TrackInteractionInput) (*types.CourseInteraction, error)
	ListForLearner(ctx context.Context, learnerID string) ([]*types.CourseInteraction, error)
}

type interactionService struct {
	log             *logger.Logger
	interactionRepo repos.InteractionRepo
}

func NewInteractionService(interactionRepo repos.InteractionRepo, baseLog *logger.Logger) InteractionService {
	return &interactionService{
		log:             baseLog.With("service", "InteractionService"),
		interactionRepo: interactionRepo,
	}
}

func (s *interactionService) Track(ctx context.Context, input TrackInteractionInput) (*types.CourseInteraction, error) {
	learnerID := strings.TrimSpace(input.LearnerID)
	if learnerID == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_learner_id", fmt.Errorf("learner_id is required"))
	}
	courseID := strings.TrimSpace(input.CourseID)
	if courseID == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_course_id", fmt.Errorf("course_id is required"))
	}
	kind := strings.ToLower(strings.TrimSpace(input.InteractionType))
	if kind == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_interaction_type", fmt.Errorf("interaction_type is required"))
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, apierr.New(http.StatusBadRequest, "invalid_rating", fmt.Errorf("rating must be between 1 and 5"))
	}

	row := &types.CourseInteraction{
		ID:              uuid.New(),
		LearnerID:       learnerID,
		CourseID:        courseID,
		InteractionType: kind,
		Rating:          input.Rating,
	}
	if err := s.interactionRepo.Create(ctx, nil, row); err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "track_interaction_failed", err)
	}
	s.log.Debug("tracked interaction", "learner_id", learnerID, "course_id", courseID, "type", kind)
	return row, nil
}

func (s *interactionService) ListForLearner(ctx context.Context, learnerID string) ([]*types.CourseInteraction, error) {
	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_learner_id", fmt.Errorf("learner_id is required"))
	}
	rows, err := s.interactionRepo.ListByLearnerID(ctx, nil, learnerID)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_interactions_failed", err)
	}
	return rows, nil
}
