package app

import (
	"context"
	"fmt"

	"github.com/skillone/skillpath-backend/internal/clients/redis"
	"github.com/skillone/skillpath-backend/internal/platform/embed"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
	"github.com/skillone/skillpath-backend/internal/platform/neo4jdb"
)

type Clients struct {
	Embedder embed.Client
	Neo4j    *neo4jdb.Client
	Cache    *redis.Cache
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	embedder, err := embed.NewFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init embedder: %w", err)
	}

	// Neo4j mirrors the prerequisite graph; NewFromEnv returns (nil, nil)
	// when NEO4J_URI is unset.
	graphDB, err := neo4jdb.NewFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init neo4j client: %w", err)
	}

	// Redis caches suggestion lookups; optional the same way.
	cache, err := redis.NewFromEnv(log)
	if err != nil {
		_ = graphDB.Close(context.Background())
		return Clients{}, fmt.Errorf("init redis cache: %w", err)
	}

	return Clients{
		Embedder: embedder,
		Neo4j:    graphDB,
		Cache:    cache,
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.Neo4j != nil {
		_ = c.Neo4j.Close(context.Background())
	}
}
