package engine

// prereqGraph is the catalog's prerequisite structure over node indices
// 0..n-1 in catalog order. Edges point from a course to each prerequisite it
// names, in prerequisite-list order with duplicates collapsed; references to
// ids outside the catalog are dropped. Self-loops and cycles are kept as-is
// and handled by the traversal.
type prereqGraph struct {
	n     int
	index map[string]int
	adj   [][]int
}

func buildPrereqGraph(courses []Course) *prereqGraph {
	g := &prereqGraph{
		n:     len(courses),
		index: make(map[string]int, len(courses)),
		adj:   make([][]int, len(courses)),
	}
	for i, c := range courses {
		g.index[c.ID] = i
	}
	for i, c := range courses {
		var seen map[int]struct{}
		for _, pid := range c.Prerequisites {
			j, ok := g.index[pid]
			if !ok {
				continue
			}
			if seen == nil {
				seen = make(map[int]struct{}, len(c.Prerequisites))
			}
			if _, dup := seen[j]; dup {
				continue
			}
			seen[j] = struct{}{}
			g.adj[i] = append(g.adj[i], j)
		}
	}
	return g
}
