package engine

import (
	"reflect"
	"testing"
)

func TestSeedOrder(t *testing.T) {
	got := seedOrder([]float64{0.2, 0.9, 0.5, 0.9})
	// Stable: the tied 0.9s keep catalog order.
	want := []int{1, 3, 2, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("seedOrder: want=%v got=%v", want, got)
	}
}

func TestSelectPathPrerequisitesFirst(t *testing.T) {
	// c3 requires c2 requires c1; c3 scores highest so it seeds the walk,
	// but its prerequisite chain still comes out first.
	courses := []Course{
		{ID: "c1"},
		{ID: "c2", Prerequisites: []string{"c1"}},
		{ID: "c3", Prerequisites: []string{"c2"}},
	}
	g := buildPrereqGraph(courses)
	got := selectPath(g, []float64{0.1, 0.2, 0.9}, 12)
	want := []int{0, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("selectPath: want=%v got=%v", want, got)
	}
}

func TestSelectPathMultipleSeeds(t *testing.T) {
	// Two disconnected components: the higher-scored seed's subtree is
	// emitted before the second seed.
	courses := []Course{
		{ID: "a1"},
		{ID: "a2", Prerequisites: []string{"a1"}},
		{ID: "b1"},
	}
	g := buildPrereqGraph(courses)
	got := selectPath(g, []float64{0.3, 0.5, 0.4}, 12)
	want := []int{0, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("selectPath: want=%v got=%v", want, got)
	}

	// Flip the scores and b1 leads.
	got = selectPath(g, []float64{0.3, 0.4, 0.5}, 12)
	want = []int{2, 0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("selectPath after flip: want=%v got=%v", want, got)
	}
}

func TestSelectPathCycle(t *testing.T) {
	courses := []Course{
		{ID: "c1", Prerequisites: []string{"c2"}},
		{ID: "c2", Prerequisites: []string{"c1"}},
	}
	g := buildPrereqGraph(courses)
	got := selectPath(g, []float64{0.9, 0.5}, 12)
	// The seed reaches its partner, which cannot re-enter the seed: the
	// partner finishes first and each node appears exactly once.
	want := []int{1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("selectPath cycle: want=%v got=%v", want, got)
	}
}

func TestSelectPathSelfLoop(t *testing.T) {
	courses := []Course{{ID: "c1", Prerequisites: []string{"c1"}}}
	g := buildPrereqGraph(courses)
	got := selectPath(g, []float64{0.4}, 12)
	if want := []int{0}; !reflect.DeepEqual(got, want) {
		t.Fatalf("selectPath self-loop: want=%v got=%v", want, got)
	}
}

func TestSelectPathDropsNonPositiveScores(t *testing.T) {
	// The zero-scored prerequisite is still traversed but filtered out of
	// the final sequence.
	courses := []Course{
		{ID: "c1"},
		{ID: "c2", Prerequisites: []string{"c1"}},
		{ID: "c3"},
	}
	g := buildPrereqGraph(courses)
	got := selectPath(g, []float64{0, 0.8, -0.1}, 12)
	if want := []int{1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("selectPath filter: want=%v got=%v", want, got)
	}
}

func TestSelectPathCapsLength(t *testing.T) {
	n := 20
	courses := make([]Course, n)
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		courses[i] = Course{ID: string(rune('a' + i))}
		scores[i] = float64(n-i) / float64(n)
	}
	g := buildPrereqGraph(courses)
	got := selectPath(g, scores, 12)

	if len(got) != 12 {
		t.Fatalf("capped length: want=12 got=%d", len(got))
	}
	// No edges, so the cap keeps the 12 best-scored courses in order.
	for i, idx := range got {
		if idx != i {
			t.Fatalf("position %d: want=%d got=%d", i, i, idx)
		}
	}
}

func TestSelectPathCapAppliesAfterFilter(t *testing.T) {
	// A zero-scored prerequisite leads the walk but never consumes a
	// slot, so twelve positives still fit.
	n := 14
	courses := make([]Course, n)
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		courses[i] = Course{ID: string(rune('a' + i))}
		if i > 0 {
			scores[i] = 1 - float64(i)/100
		}
	}
	courses[1].Prerequisites = []string{courses[0].ID}

	g := buildPrereqGraph(courses)
	got := selectPath(g, scores, 12)

	if len(got) != 12 {
		t.Fatalf("capped length: want=12 got=%d", len(got))
	}
	for _, idx := range got {
		if scores[idx] <= 0 {
			t.Fatalf("non-positive score kept: idx=%d score=%v", idx, scores[idx])
		}
	}
	if got[0] != 1 || got[11] != 12 {
		t.Fatalf("cap window: want indices 1..12 got=%v", got)
	}
}
