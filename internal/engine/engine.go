// Package engine generates learning paths: it scores every catalog course
// against a learner profile (lexical tf-idf plus embedding similarity),
// boosts scores with education/difficulty metadata, and orders the winners
// along the prerequisite graph.
package engine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/skillone/skillpath-backend/internal/platform/embed"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

// Course is the engine's view of one catalog entry.
type Course struct {
	ID             string
	Title          string
	Description    string
	Tags           []string
	EducationLevel string
	Difficulty     string
	Prerequisites  []string
}

// LearnerProfile is the engine's view of the requesting learner.
type LearnerProfile struct {
	CareerGoal       string
	EducationLevel   string
	DesiredSkills    []string
	Interests        []string
	ProficiencyLevel string
}

// Result is one generated path: the ordered course ids, the boosted score of
// exactly those ids, and a human-readable summary of the signals used.
type Result struct {
	Path      []string
	Scores    map[string]float64
	Reasoning string
}

const (
	lexicalWeight  = 0.6
	semanticWeight = 0.4

	DefaultMaxPathLength = 12
)

type Engine struct {
	log        *logger.Logger
	embedder   embed.Client
	maxPathLen int
}

// New builds the engine. The embedder is constructed once at startup and
// treated as read-only; maxPathLen <= 0 selects the default cap of 12.
func New(embedder embed.Client, maxPathLen int, baseLog *logger.Logger) *Engine {
	if maxPathLen <= 0 {
		maxPathLen = DefaultMaxPathLength
	}
	return &Engine{
		log:        baseLog.With("engine", "PathEngine"),
		embedder:   embedder,
		maxPathLen: maxPathLen,
	}
}

// GeneratePath runs the full pipeline for one request. Identical catalog and
// profile always produce an identical result: the lexical and semantic passes
// run concurrently but write disjoint slices, and every later stage is a pure
// function of their output.
func (e *Engine) GeneratePath(ctx context.Context, courses []Course, learner LearnerProfile) (Result, error) {
	blob := learnerText(learner)
	texts := make([]string, len(courses))
	for i, c := range courses {
		texts[i] = courseText(c)
	}

	var lexical, semantic []float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lexical = lexicalScores(texts, blob)
		return nil
	})
	g.Go(func() error {
		var err error
		semantic, err = e.semanticScores(gctx, texts, blob)
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("score courses: %w", err)
	}

	scores := make([]float64, len(courses))
	for i := range courses {
		combined := lexicalWeight*lexical[i] + semanticWeight*semantic[i]
		scores[i] = applyMetadataBoost(combined, learner.EducationLevel, courses[i].EducationLevel, courses[i].Difficulty)
	}

	graph := buildPrereqGraph(courses)
	picked := selectPath(graph, scores, e.maxPathLen)

	path := make([]string, 0, len(picked))
	scoreMap := make(map[string]float64, len(picked))
	for _, idx := range picked {
		id := courses[idx].ID
		path = append(path, id)
		scoreMap[id] = scores[idx]
	}

	e.log.Debug("generated path",
		"catalog_size", len(courses),
		"path_length", len(path),
	)
	return Result{
		Path:      path,
		Scores:    scoreMap,
		Reasoning: buildReasoning(learner),
	}, nil
}

// semanticScores embeds the learner blob and every course blob in one batch,
// then scores each course by cosine similarity against the learner.
func (e *Engine) semanticScores(ctx context.Context, texts []string, learnerBlob string) ([]float64, error) {
	inputs := make([]string, 0, len(texts)+1)
	inputs = append(inputs, learnerBlob)
	inputs = append(inputs, texts...)

	vecs, err := e.embedder.Embed(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("embed texts: %w", err)
	}
	if len(vecs) != len(inputs) {
		return nil, fmt.Errorf("embedding count mismatch: want=%d got=%d", len(inputs), len(vecs))
	}

	learnerVec := vecs[0]
	out := make([]float64, len(texts))
	for i := range texts {
		out[i] = cosine32(learnerVec, vecs[i+1])
	}
	return out, nil
}

func buildReasoning(learner LearnerProfile) string {
	skills := learner.DesiredSkills
	if len(skills) > 3 {
		skills = skills[:3]
	}
	return fmt.Sprintf(
		"Path generated for goal %q using semantic analysis (TF-IDF + embeddings), education matching, and prerequisite ordering. Top skills matched: %s",
		learner.CareerGoal,
		strings.Join(skills, ", "),
	)
}
