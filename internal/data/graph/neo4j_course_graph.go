package graph

import (
	"context"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	types "github.com/skillone/skillpath-backend/internal/domain"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
	"github.com/skillone/skillpath-backend/internal/platform/neo4jdb"
)

// UpsertCourseGraph mirrors the catalog's prerequisite graph into Neo4j as
// (:Course)-[:REQUIRES]->(:Course). Best-effort: a nil client no-ops, and the
// in-process engine never reads this mirror back.
func UpsertCourseGraph(ctx context.Context, client *neo4jdb.Client, log *logger.Logger, courses []*types.Course) error {
	if client == nil || client.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	nodes := make([]map[string]any, 0, len(courses))
	rels := make([]map[string]any, 0, len(courses))
	for _, c := range courses {
		if c == nil || c.ID == "" {
			continue
		}
		nodes = append(nodes, map[string]any{
			"id":              c.ID,
			"title":           c.Title,
			"difficulty":      c.Difficulty,
			"education_level": c.EducationLevel,
			"tags":            strings.Join(c.TagList(), ","),
			"synced_at":       now,
		})
		for _, prereq := range c.PrerequisiteIDs() {
			if prereq == "" {
				continue
			}
			rels = append(rels, map[string]any{
				"from_id":   c.ID,
				"to_id":     prereq,
				"synced_at": now,
			})
		}
	}

	session := client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: client.Database,
	})
	defer session.Close(ctx)

	// Schema helpers (best-effort; may fail for restricted users).
	if res, err := session.Run(ctx, `CREATE CONSTRAINT course_id_unique IF NOT EXISTS FOR (c:Course) REQUIRE c.id IS UNIQUE`, nil); err != nil {
		if log != nil {
			log.Warn("neo4j schema init failed (continuing)", "error", err)
		}
	} else {
		_, _ = res.Consume(ctx)
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if len(nodes) > 0 {
			res, err := tx.Run(ctx, `
UNWIND $nodes AS n
MERGE (c:Course {id: n.id})
SET c += n
`, map[string]any{"nodes": nodes})
			if err != nil {
				return nil, err
			}
			if _, err := res.Consume(ctx); err != nil {
				return nil, err
			}
		}

		// MATCH on both ends drops references to courses missing from the
		// catalog, matching the engine's dangling-prerequisite handling.
		if len(rels) > 0 {
			res, err := tx.Run(ctx, `
UNWIND $rels AS r
MATCH (a:Course {id: r.from_id})
MATCH (b:Course {id: r.to_id})
MERGE (a)-[e:REQUIRES]->(b)
SET e.synced_at = r.synced_at
`, map[string]any{"rels": rels})
			if err != nil {
				return nil, err
			}
			if _, err := res.Consume(ctx); err != nil {
				return nil, err
			}
		}

		return nil, nil
	})
	return err
}
