package app

import (
	"github.com/skillone/skillpath-backend/internal/engine"
	"github.com/skillone/skillpath-backend/internal/observability"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
	"github.com/skillone/skillpath-backend/internal/services"
)

type Services struct {
	Recommendation services.RecommendationService
	Catalog        services.CatalogService
	Suggestion     services.SuggestionService
	Interaction    services.InteractionService
}

func wireServices(log *logger.Logger, cfg Config, repos Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	pathEngine := engine.New(clients.Embedder, cfg.MaxPathCourses, log)

	return Services{
		Recommendation: services.NewRecommendationService(
			pathEngine,
			repos.Course,
			repos.Profile,
			repos.Path,
			repos.Goal,
			metrics,
			log,
		),
		Catalog:     services.NewCatalogService(repos.Course, clients.Neo4j, log),
		Suggestion:  services.NewSuggestionService(repos.Goal, clients.Cache, metrics, log),
		Interaction: services.NewInteractionService(repos.Interaction, log),
	}
}
