package embed

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	"github.com/skillone/skillpath-backend/internal/platform/envutil"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

type localEncoder struct {
	log *logger.Logger
	dim int
}

// NewLocalEncoder builds the in-process feature-hashing encoder: each token
// hashes into one of EMBED_LOCAL_DIM buckets with a hash-derived sign, and the
// bucket counts are L2-normalized. No network, fully deterministic.
func NewLocalEncoder(baseLog *logger.Logger) (Client, error) {
	dim := envutil.Int("EMBED_LOCAL_DIM", 256)
	if dim < 8 {
		return nil, fmt.Errorf("EMBED_LOCAL_DIM too small: %d (want >= 8)", dim)
	}
	return &localEncoder{
		log: baseLog.With("client", "EmbedLocal"),
		dim: dim,
	}, nil
}

func (e *localEncoder) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([][]float32, len(inputs))
	for i, text := range inputs {
		out[i] = e.encode(text)
	}
	return out, nil
}

func (e *localEncoder) encode(text string) []float32 {
	vec := make([]float32, e.dim)
	for _, tok := range hashTokens(text) {
		h := fnv.New64a()
		_, _ = h.Write([]byte(tok))
		sum := h.Sum64()

		bucket := int(sum % uint64(e.dim))
		sign := float32(1)
		if sum&(1<<63) != 0 {
			sign = -1
		}
		vec[bucket] += sign
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec
}

func hashTokens(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) >= 2 {
			out = append(out, f)
		}
	}
	return out
}
