package services

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillone/skillpath-backend/internal/data/repos"
	types "github.com/skillone/skillpath-backend/internal/domain"
	"github.com/skillone/skillpath-backend/internal/engine"
	"github.com/skillone/skillpath-backend/internal/observability"
	"github.com/skillone/skillpath-backend/internal/platform/apierr"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

// PathGenerator is the scoring pipeline behind path generation. *engine.Engine
// satisfies it.
type PathGenerator interface {
	GeneratePath(ctx context.Context, courses []engine.Course, learner engine.LearnerProfile) (engine.Result, error)
}

type GeneratePathInput struct {
	LearnerID        string
	CareerGoal       string
	EducationLevel   string
	DesiredSkills    []string
	Interests        []string
	ProficiencyLevel string
}

// PathCourse is the expanded per-course view embedded in a generation
// response.
type PathCourse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Difficulty     string   `json:"difficulty"`
	EducationLevel string   `json:"education_level"`
	Score          float64  `json:"score"`
	Tags           []string `json:"tags"`
}

type GeneratePathResult struct {
	LearnerID       string             `json:"learner_id"`
	Path            []string           `json:"learning_path"`
	Courses         []PathCourse       `json:"courses"`
	RelevanceScores map[string]float64 `json:"scores"`
	Reasoning       string             `json:"reasoning"`
	TotalCourses    int                `json:"total_courses"`
	GeneratedAt     time.Time          `json:"generated_at"`
}

type RecommendationService interface {
	GenerateLearningPath(ctx context.Context, input GeneratePathInput) (*GeneratePathResult, error)
	ListLearningPaths(ctx context.Context, learnerID string) ([]*types.LearningPath, error)
}

type recommendationService struct {
	log         *logger.Logger
	generator   PathGenerator
	courseRepo  repos.CourseRepo
	profileRepo repos.LearnerProfileRepo
	pathRepo    repos.LearningPathRepo
	goalRepo    repos.CareerGoalRepo
	metrics     *observability.Metrics
}

func NewRecommendationService(
	generator PathGenerator,
	courseRepo repos.CourseRepo,
	profileRepo repos.LearnerProfileRepo,
	pathRepo repos.LearningPathRepo,
	goalRepo repos.CareerGoalRepo,
	metrics *observability.Metrics,
	baseLog *logger.Logger,
) RecommendationService {
	return &recommendationService{
		log:         baseLog.With("service", "RecommendationService"),
		generator:   generator,
		courseRepo:  courseRepo,
		profileRepo: profileRepo,
		pathRepo:    pathRepo,
		goalRepo:    goalRepo,
		metrics:     metrics,
	}
}

// GenerateLearningPath validates the request, persists the profile and goal
// popularity as side effects, runs the engine over the full catalog, and
// stores the resulting path as the learner's current one. Side-effect writes
// are best effort: a failed profile or path save is logged, never surfaced.
func (s *recommendationService) GenerateLearningPath(ctx context.Context, input GeneratePathInput) (*GeneratePathResult, error) {
	learnerID := strings.TrimSpace(input.LearnerID)
	if learnerID == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_learner_id", fmt.Errorf("learner_id is required"))
	}
	goal := strings.TrimSpace(input.CareerGoal)
	if goal == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_career_goal", fmt.Errorf("career_goal is required"))
	}

	profile := &types.LearnerProfile{
		LearnerID:        learnerID,
		CareerGoal:       goal,
		EducationLevel:   strings.TrimSpace(input.EducationLevel),
		DesiredSkills:    types.StringList(input.DesiredSkills),
		Interests:        types.StringList(input.Interests),
		ProficiencyLevel: strings.TrimSpace(input.ProficiencyLevel),
	}
	if err := s.profileRepo.Upsert(ctx, nil, profile); err != nil {
		s.log.Warn("persist learner profile failed", "learner_id", learnerID, "error", err)
	}
	if err := s.goalRepo.IncrementGoal(ctx, nil, goal); err != nil {
		s.log.Warn("increment career goal failed", "goal", goal, "error", err)
	}

	catalog, err := s.courseRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_catalog_failed", err)
	}
	if len(catalog) == 0 {
		return nil, apierr.New(http.StatusNotFound, "no_courses", fmt.Errorf("no courses available"))
	}

	learner := engine.LearnerProfile{
		CareerGoal:       goal,
		EducationLevel:   strings.TrimSpace(input.EducationLevel),
		DesiredSkills:    input.DesiredSkills,
		Interests:        input.Interests,
		ProficiencyLevel: strings.TrimSpace(input.ProficiencyLevel),
	}

	start := time.Now()
	res, err := s.generator.GeneratePath(ctx, toEngineCourses(catalog), learner)
	if err != nil {
		s.metrics.ObservePathGeneration("error", 0, time.Since(start))
		return nil, apierr.New(http.StatusInternalServerError, "path_generation_failed", err)
	}
	outcome := "ok"
	if len(res.Path) == 0 {
		outcome = "empty"
	}
	s.metrics.ObservePathGeneration(outcome, len(res.Path), time.Since(start))

	scores := make(map[string]float64, len(res.Scores))
	for id, v := range res.Scores {
		scores[id] = round4(v)
	}

	row := &types.LearningPath{
		ID:              uuid.New(),
		LearnerID:       learnerID,
		CourseSequence:  types.StringList(res.Path),
		RelevanceScores: types.ScoreMap(scores),
		Reasoning:       res.Reasoning,
		TotalCourses:    len(res.Path),
	}
	if err := s.pathRepo.ReplaceForLearner(ctx, nil, row); err != nil {
		s.log.Warn("persist learning path failed", "learner_id", learnerID, "error", err)
	}

	byID := make(map[string]*types.Course, len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}
	details := make([]PathCourse, 0, len(res.Path))
	for _, id := range res.Path {
		c, ok := byID[id]
		if !ok {
			continue
		}
		details = append(details, PathCourse{
			ID:             c.ID,
			Title:          c.Title,
			Difficulty:     c.Difficulty,
			EducationLevel: c.EducationLevel,
			Score:          scores[id],
			Tags:           c.TagList(),
		})
	}

	s.log.Info("generated learning path",
		"learner_id", learnerID,
		"catalog_size", len(catalog),
		"path_length", len(res.Path),
	)
	return &GeneratePathResult{
		LearnerID:       learnerID,
		Path:            res.Path,
		Courses:         details,
		RelevanceScores: scores,
		Reasoning:       res.Reasoning,
		TotalCourses:    len(res.Path),
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

func (s *recommendationService) ListLearningPaths(ctx context.Context, learnerID string) ([]*types.LearningPath, error) {
	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_learner_id", fmt.Errorf("learner_id is required"))
	}
	rows, err := s.pathRepo.ListByLearnerID(ctx, nil, learnerID)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_paths_failed", err)
	}
	return rows, nil
}

func toEngineCourses(rows []*types.Course) []engine.Course {
	out := make([]engine.Course, 0, len(rows))
	for _, row := range rows {
		out = append(out, engine.Course{
			ID:             row.ID,
			Title:          row.Title,
			Description:    row.Description,
			Tags:           row.TagList(),
			EducationLevel: row.EducationLevel,
			Difficulty:     row.Difficulty,
			Prerequisites:  row.PrerequisiteIDs(),
		})
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
