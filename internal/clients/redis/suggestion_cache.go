package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/skillone/skillpath-backend/internal/platform/envutil"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

const suggestionKeyPrefix = "skillpath:suggestions:"

// Cache is a read-through cache for career-goal suggestion lookups. All
// methods tolerate a nil receiver, so environments without Redis skip
// caching without any call-site branching.
type Cache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewFromEnv connects when REDIS_ADDR is set and returns (nil, nil) otherwise.
func NewFromEnv(baseLog *logger.Logger) (*Cache, error) {
	if baseLog == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := envutil.String("REDIS_ADDR", "")
	if addr == "" {
		return nil, nil
	}
	ttl := envutil.Duration("SUGGESTION_CACHE_TTL", 60*time.Second)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Cache{
		log: baseLog.With("client", "SuggestionCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func (c *Cache) Get(ctx context.Context, query string) ([]string, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, suggestionKey(query)).Bytes()
	if err != nil {
		return nil, false
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

// Set stores the suggestions best-effort; cache failures degrade to the
// database, never to the client.
func (c *Cache) Set(ctx context.Context, query string, suggestions []string) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, suggestionKey(query), raw, c.ttl).Err(); err != nil {
		c.log.Warn("suggestion cache set failed", "query", query, "error", err)
	}
}

func (c *Cache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func suggestionKey(query string) string {
	return suggestionKeyPrefix + strings.ToLower(strings.TrimSpace(query))
}
