package app

import (
	"github.com/gin-gonic/gin"

	"github.com/skillone/skillpath-backend/internal/http"
	httpH "github.com/skillone/skillpath-backend/internal/http/handlers"
	"github.com/skillone/skillpath-backend/internal/observability"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

type Handlers struct {
	Health      *httpH.HealthHandler
	Path        *httpH.PathHandler
	Suggestion  *httpH.SuggestionHandler
	Interaction *httpH.InteractionHandler
	Catalog     *httpH.CatalogHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:      httpH.NewHealthHandler(),
		Path:        httpH.NewPathHandler(services.Recommendation, log),
		Suggestion:  httpH.NewSuggestionHandler(services.Suggestion, log),
		Interaction: httpH.NewInteractionHandler(services.Interaction, log),
		Catalog:     httpH.NewCatalogHandler(services.Catalog, log),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     metrics,

		HealthHandler:      handlers.Health,
		PathHandler:        handlers.Path,
		SuggestionHandler:  handlers.Suggestion,
		InteractionHandler: handlers.Interaction,
		CatalogHandler:     handlers.Catalog,
	})
}
