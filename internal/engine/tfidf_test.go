package engine

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestFitTFIDFSmoothedIDF(t *testing.T) {
	docs := [][]string{
		{"go"},
		{"go", "sql"},
	}
	model := fitTFIDF(docs, 0)

	// idf(t) = ln((1+n)/(1+df)) + 1 with n=2.
	if got := model.idf["go"]; !approx(got, 1) {
		t.Fatalf("idf(go): want=1 got=%v", got)
	}
	wantSQL := math.Log(3.0/2.0) + 1
	if got := model.idf["sql"]; !approx(got, wantSQL) {
		t.Fatalf("idf(sql): want=%v got=%v", wantSQL, got)
	}
}

func TestFitTFIDFVocabularyCap(t *testing.T) {
	// Totals: beta=2, alpha=1, gamma=1. Cap 2 keeps beta, then the
	// lexicographically smaller of the tied pair.
	docs := [][]string{
		{"beta", "alpha"},
		{"beta", "gamma"},
	}
	model := fitTFIDF(docs, 2)

	if len(model.idf) != 2 {
		t.Fatalf("vocabulary size: want=2 got=%d", len(model.idf))
	}
	if _, ok := model.idf["beta"]; !ok {
		t.Fatalf("vocabulary should keep beta")
	}
	if _, ok := model.idf["alpha"]; !ok {
		t.Fatalf("vocabulary should break ties toward alpha")
	}
	if _, ok := model.idf["gamma"]; ok {
		t.Fatalf("vocabulary should drop gamma")
	}
}

func TestVectorL2Normalized(t *testing.T) {
	model := &tfidfModel{idf: map[string]float64{"go": 1, "sql": 2}}
	vec := model.vector([]string{"go", "go", "sql"})
	if vec == nil {
		t.Fatalf("vector: want weights, got nil")
	}

	// Raw weights 2 and 2 normalize to 1/sqrt(2) each.
	want := 1 / math.Sqrt(2)
	if !approx(vec["go"], want) || !approx(vec["sql"], want) {
		t.Fatalf("vector weights: want=%v got=%v", want, vec)
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if !approx(norm, 1) {
		t.Fatalf("vector norm: want=1 got=%v", norm)
	}
}

func TestVectorOutOfVocabulary(t *testing.T) {
	model := &tfidfModel{idf: map[string]float64{"go": 1}}
	if vec := model.vector([]string{"rust", "zig"}); vec != nil {
		t.Fatalf("vector: want=nil got=%v", vec)
	}
	if vec := model.vector(nil); vec != nil {
		t.Fatalf("vector of empty doc: want=nil got=%v", vec)
	}
}

func TestDotSparse(t *testing.T) {
	a := map[string]float64{"go": 0.6, "sql": 0.8}
	if got := dotSparse(a, a); !approx(got, 1) {
		t.Fatalf("dotSparse(a, a): want=1 got=%v", got)
	}
	b := map[string]float64{"rust": 1}
	if got := dotSparse(a, b); got != 0 {
		t.Fatalf("dotSparse disjoint: want=0 got=%v", got)
	}
	if got := dotSparse(a, nil); got != 0 {
		t.Fatalf("dotSparse with nil: want=0 got=%v", got)
	}
}

func TestCosine32(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "parallel", a: []float32{1, 2}, b: []float32{2, 4}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, want: 0},
		{name: "length mismatch", a: []float32{1}, b: []float32{1, 1}, want: 0},
		{name: "empty", a: nil, b: nil, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cosine32(tc.a, tc.b); !approx(got, tc.want) {
				t.Fatalf("cosine32: want=%v got=%v", tc.want, got)
			}
		})
	}
}

func TestLexicalScores(t *testing.T) {
	courses := []string{
		"kubernetes container orchestration",
		"watercolor landscape painting",
	}
	scores := lexicalScores(courses, "kubernetes container orchestration")

	if len(scores) != 2 {
		t.Fatalf("scores length: want=2 got=%d", len(scores))
	}
	if !approx(scores[0], 1) {
		t.Fatalf("identical text score: want=1 got=%v", scores[0])
	}
	if scores[1] != 0 {
		t.Fatalf("disjoint text score: want=0 got=%v", scores[1])
	}
}

func TestLexicalScoresEmptyLearner(t *testing.T) {
	scores := lexicalScores([]string{"some course"}, "")
	if scores[0] != 0 {
		t.Fatalf("empty learner score: want=0 got=%v", scores[0])
	}
}
