package redis

import (
	"context"
	"testing"
)

func TestNilCacheDegrades(t *testing.T) {
	var c *Cache

	if got, ok := c.Get(context.Background(), "data"); ok || got != nil {
		t.Fatalf("nil cache Get: want miss, got=%v ok=%v", got, ok)
	}
	// Set and Close must be safe no-ops.
	c.Set(context.Background(), "data", []string{"Data Engineer"})
	if err := c.Close(); err != nil {
		t.Fatalf("nil cache Close: %v", err)
	}
}

func TestSuggestionKeyNormalizesQuery(t *testing.T) {
	if got, want := suggestionKey("  Data "), suggestionKeyPrefix+"data"; got != want {
		t.Fatalf("suggestionKey: want=%q got=%q", want, got)
	}
}
