// Package dijkstrabasis builds a spanning-forest basis for the
// representation-matrix builder (C3, spec.md §4.3) by running multi-source
// Dijkstra with forest-hinted edges weighted 0 and all others weighted 1, so
// the resulting shortest-path arborescence reuses the hint whenever it is
// itself a spanning forest. Grounded on dijkstra/dijkstra.go's heap-based
// shortest-path shape; the priority queue is container/heap, per spec.md's
// note that heaps are "standard containers" outside the core's scope.
package dijkstrabasis

import (
	"container/heap"

	"github.com/katalvlaran/seymour/cmrgraph"
)

// Result describes the spanning-forest rooting of a graph.
type Result struct {
	// Predecessor[v] is the tree edge connecting v to its parent, or -1 if v
	// is a root of its component.
	Predecessor []cmrgraph.Edge
	// Parent[v] is v's parent node, or -1 if v is a root.
	Parent []cmrgraph.Node
	// Distance[v] is the combinatorial (hop) distance to v's component root.
	Distance []int
	// BasisCorrect reports whether every hinted forest edge ended up in the
	// spanning forest (spec.md §4.3's basisCorrect flag).
	BasisCorrect bool
}

type heapItem struct {
	node   cmrgraph.Node
	weight int
}

type nodeHeap []heapItem

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Root runs multi-source Dijkstra over g, one source per connected
// component, preferring hint edges (weight 0) over all others (weight 1).
func Root(g *cmrgraph.Graph, hint map[cmrgraph.Edge]bool) Result {
	maxHandle := 0
	for _, v := range g.Nodes() {
		if int(v) >= maxHandle {
			maxHandle = int(v) + 1
		}
	}

	dist := make([]int, maxHandle)
	pred := make([]cmrgraph.Edge, maxHandle)
	parent := make([]cmrgraph.Node, maxHandle)
	visited := make([]bool, maxHandle)
	depth := make([]int, maxHandle)
	for i := range dist {
		dist[i] = -1
		pred[i] = -1
		parent[i] = -1
		depth[i] = -1
	}

	h := &nodeHeap{}
	heap.Init(h)

	for _, start := range g.Nodes() {
		if dist[start] != -1 {
			continue
		}
		dist[start] = 0
		heap.Push(h, heapItem{node: start, weight: 0})

		for h.Len() > 0 {
			item := heap.Pop(h).(heapItem)
			v := item.node
			if visited[v] {
				continue
			}
			visited[v] = true
			// parent[v] is final once v is popped and was popped before v.
			if parent[v] >= 0 {
				depth[v] = depth[parent[v]] + 1
			} else {
				depth[v] = 0
			}

			for _, e := range g.IncidentEdges(v) {
				w := g.Other(e, v)
				weight := 1
				if hint[e] {
					weight = 0
				}
				nd := item.weight + weight
				if dist[w] == -1 || nd < dist[w] {
					dist[w] = nd
					pred[w] = e
					parent[w] = v
					heap.Push(h, heapItem{node: w, weight: nd})
				}
			}
		}
	}

	basisCorrect := true
	for e, isHint := range hint {
		if !isHint {
			continue
		}
		u, v := g.EdgeEndpoints(e)
		if pred[u] != e && pred[v] != e {
			basisCorrect = false

			break
		}
	}

	return Result{Predecessor: pred, Parent: parent, Distance: depth, BasisCorrect: basisCorrect}
}
