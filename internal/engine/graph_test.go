package engine

import (
	"reflect"
	"testing"
)

func TestBuildPrereqGraph(t *testing.T) {
	courses := []Course{
		{ID: "c1"},
		{ID: "c2", Prerequisites: []string{"c1", "ghost", "c1", "c3"}},
		{ID: "c3", Prerequisites: []string{"c3"}},
	}
	g := buildPrereqGraph(courses)

	if g.n != 3 {
		t.Fatalf("node count: want=3 got=%d", g.n)
	}
	if len(g.adj[0]) != 0 {
		t.Fatalf("c1 edges: want=none got=%v", g.adj[0])
	}
	// Duplicate c1 collapses, the unknown id drops, order is preserved.
	if want := []int{0, 2}; !reflect.DeepEqual(g.adj[1], want) {
		t.Fatalf("c2 edges: want=%v got=%v", want, g.adj[1])
	}
	// Self-loops survive; the traversal is what neutralizes them.
	if want := []int{2}; !reflect.DeepEqual(g.adj[2], want) {
		t.Fatalf("c3 edges: want=%v got=%v", want, g.adj[2])
	}
}

func TestBuildPrereqGraphEmptyCatalog(t *testing.T) {
	g := buildPrereqGraph(nil)
	if g.n != 0 || len(g.adj) != 0 {
		t.Fatalf("empty catalog graph: want empty got n=%d adj=%v", g.n, g.adj)
	}
}
