package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/skillone/skillpath-backend/internal/data/graph"
	"github.com/skillone/skillpath-backend/internal/data/repos"
	types "github.com/skillone/skillpath-backend/internal/domain"
	"github.com/skillone/skillpath-backend/internal/platform/apierr"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
	"github.com/skillone/skillpath-backend/internal/platform/neo4jdb"
)

type CatalogService interface {
	ListCourses(ctx context.Context) ([]*types.Course, error)
	SeedCourses(ctx context.Context, rows []*types.Course, truncate bool) (int, error)
}

type catalogService struct {
	log        *logger.Logger
	courseRepo repos.CourseRepo
	graphDB    *neo4jdb.Client
}

// NewCatalogService wires the catalog over Postgres with an optional Neo4j
// mirror; graphDB may be nil.
func NewCatalogService(courseRepo repos.CourseRepo, graphDB *neo4jdb.Client, baseLog *logger.Logger) CatalogService {
	return &catalogService{
		log:        baseLog.With("service", "CatalogService"),
		courseRepo: courseRepo,
		graphDB:    graphDB,
	}
}

func (s *catalogService) ListCourses(ctx context.Context) ([]*types.Course, error) {
	rows, err := s.courseRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_catalog_failed", err)
	}
	return rows, nil
}

// SeedCourses upserts the given catalog rows, optionally clearing the table
// first, and mirrors the result into Neo4j. The mirror is best effort: a
// failed sync is logged and the Postgres write stands.
func (s *catalogService) SeedCourses(ctx context.Context, rows []*types.Course, truncate bool) (int, error) {
	for i, row := range rows {
		if row == nil || strings.TrimSpace(row.ID) == "" {
			return 0, apierr.New(http.StatusBadRequest, "invalid_course_id", fmt.Errorf("course %d has no id", i))
		}
		if strings.TrimSpace(row.Title) == "" {
			return 0, apierr.New(http.StatusBadRequest, "invalid_course_title", fmt.Errorf("course %s has no title", row.ID))
		}
	}

	if truncate {
		if err := s.courseRepo.FullDeleteAll(ctx, nil); err != nil {
			return 0, apierr.New(http.StatusInternalServerError, "truncate_catalog_failed", err)
		}
	}
	n, err := s.courseRepo.UpsertMany(ctx, nil, rows)
	if err != nil {
		return 0, apierr.New(http.StatusInternalServerError, "seed_catalog_failed", err)
	}

	if err := graph.UpsertCourseGraph(ctx, s.graphDB, s.log, rows); err != nil {
		s.log.Warn("course graph sync failed", "error", err)
	}

	s.log.Info("seeded catalog", "courses", n, "truncate", truncate)
	return n, nil
}
