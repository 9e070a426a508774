package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/skillone/skillpath-backend/internal/http/handlers"
	httpMW "github.com/skillone/skillpath-backend/internal/http/middleware"
	"github.com/skillone/skillpath-backend/internal/observability"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string
	Metrics     *observability.Metrics

	HealthHandler      *httpH.HealthHandler
	PathHandler        *httpH.PathHandler
	SuggestionHandler  *httpH.SuggestionHandler
	InteractionHandler *httpH.InteractionHandler
	CatalogHandler     *httpH.CatalogHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Prometheus exposition
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(observability.Handler()))
	}

	api := r.Group("/api")
	{
		if cfg.PathHandler != nil {
			api.POST("/generate-learning-path", cfg.PathHandler.GenerateLearningPath)
			api.GET("/learning-paths/:learner_id", cfg.PathHandler.ListLearningPaths)
		}

		if cfg.SuggestionHandler != nil {
			api.GET("/career-goals/suggestions", cfg.SuggestionHandler.GetSuggestions)
		}

		if cfg.InteractionHandler != nil {
			api.POST("/track-interaction", cfg.InteractionHandler.TrackInteraction)
			api.GET("/learners/:learner_id/interactions", cfg.InteractionHandler.ListLearnerInteractions)
		}

		if cfg.CatalogHandler != nil {
			api.GET("/courses", cfg.CatalogHandler.ListCourses)
		}
	}

	return r
}
