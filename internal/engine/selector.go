package engine

import "sort"

// seedOrder returns course indices sorted by score descending. The sort is
// stable, so equal scores keep catalog order.
func seedOrder(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	return order
}

type dfsFrame struct {
	node int
	next int
}

// selectPath walks the prerequisite graph depth-first from each unvisited
// seed, highest score first. Every node is emitted after its prerequisite
// subtree, so prerequisites always precede their dependents; marking nodes
// visited on first reach makes cycles and self-loops terminate with each
// course emitted at most once. Courses with non-positive scores are then
// dropped and the result is capped at maxLen.
func selectPath(g *prereqGraph, scores []float64, maxLen int) []int {
	order := seedOrder(scores)
	visited := make([]bool, g.n)
	walk := make([]int, 0, g.n)
	stack := make([]dfsFrame, 0, g.n)

	for _, seed := range order {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		stack = append(stack, dfsFrame{node: seed})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(g.adj[top.node]) {
				child := g.adj[top.node][top.next]
				top.next++
				if !visited[child] {
					visited[child] = true
					stack = append(stack, dfsFrame{node: child})
				}
				continue
			}
			walk = append(walk, top.node)
			stack = stack[:len(stack)-1]
		}
	}

	kept := make([]int, 0, len(walk))
	for _, idx := range walk {
		if scores[idx] <= 0 {
			continue
		}
		kept = append(kept, idx)
		if len(kept) == maxLen {
			break
		}
	}
	return kept
}
