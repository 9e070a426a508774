// Package embed provides the sentence-embedding capability behind path
// scoring: text in, fixed-length vector out. Vectors are deterministic for
// identical input within a process; the provider is constructed once at
// startup and read-only afterwards.
package embed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

type Client interface {
	Embed(ctx context.Context, inputs []string) ([][]float32, error)
}

type Provider string

const (
	ProviderAPI   Provider = "api"
	ProviderLocal Provider = "local"
)

// NewFromEnv selects the provider. EMBED_PROVIDER forces "api" or "local";
// unset picks "api" when OPENAI_API_KEY is present and "local" otherwise, so
// dev environments work with no credentials.
func NewFromEnv(baseLog *logger.Logger) (Client, error) {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("EMBED_PROVIDER")))
	switch Provider(raw) {
	case ProviderAPI:
		return NewAPIClient(baseLog)
	case ProviderLocal:
		return NewLocalEncoder(baseLog)
	case "", "auto":
		if strings.TrimSpace(os.Getenv("OPENAI_API_KEY")) != "" {
			return NewAPIClient(baseLog)
		}
		return NewLocalEncoder(baseLog)
	default:
		return nil, fmt.Errorf("unknown EMBED_PROVIDER %q (want api|local)", raw)
	}
}
