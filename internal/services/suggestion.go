package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/skillone/skillpath-backend/internal/clients/redis"
	"github.com/skillone/skillpath-backend/internal/data/repos"
	"github.com/skillone/skillpath-backend/internal/observability"
	"github.com/skillone/skillpath-backend/internal/platform/apierr"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

const defaultSuggestionLimit = 10

type SuggestionService interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}

type suggestionService struct {
	log      *logger.Logger
	goalRepo repos.CareerGoalRepo
	cache    *redis.Cache
	metrics  *observability.Metrics
}

// NewSuggestionService serves career goal autocompletion from the goal log,
// read through an optional Redis cache; cache may be nil.
func NewSuggestionService(goalRepo repos.CareerGoalRepo, cache *redis.Cache, metrics *observability.Metrics, baseLog *logger.Logger) SuggestionService {
	return &suggestionService{
		log:      baseLog.With("service", "SuggestionService"),
		goalRepo: goalRepo,
		cache:    cache,
		metrics:  metrics,
	}
}

// Suggest returns popular career goals matching the query, most frequent
// first. A blank query yields no suggestions rather than the whole log.
func (s *suggestionService) Suggest(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}

	if cached, ok := s.cache.Get(ctx, query); ok {
		s.metrics.ObserveSuggestionCache(true)
		return cached, nil
	}
	s.metrics.ObserveSuggestionCache(false)

	goals, err := s.goalRepo.SearchGoals(ctx, nil, query, defaultSuggestionLimit)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_suggestions_failed", err)
	}
	if goals == nil {
		goals = []string{}
	}
	s.cache.Set(ctx, query, goals)
	return goals, nil
}
