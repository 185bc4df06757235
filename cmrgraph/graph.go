// Package cmrgraph is the plain adjacency-list graph used by netbuild's
// representation-matrix builder, tdec's realisation step, and the Seymour
// driver's graphic/cographic leaves. It supports O(1) edge deletion by
// tracking each edge's position in both endpoints' incidence lists, and is
// single-threaded (spec.md §5: the core is sequential, so the sync.RWMutex
// locking of core/adjacency_list.go is dropped).
//
// Nodes and edges are integer handles (CMR_GRAPH_NODE/CMR_GRAPH_EDGE in
// src/cmr/graphic_internal.h) rather than the teacher's string Vertex IDs,
// since the decomposition driver never needs user-chosen labels.
package cmrgraph

// Node is an integer node handle.
type Node int

// Edge is an integer edge handle.
type Edge int

// Graph is an undirected (or, via Directed, a directed) multigraph with
// O(1) node/edge addition and O(1) edge removal.
type Graph struct {
	directed bool

	nodeAlive []bool
	inc       [][]Edge // inc[v] = incident edge handles, in no particular order

	edgeAlive []bool
	endU      []Node
	endV      []Node
	posInU    []int // index of this edge within inc[endU[e]]
	posInV    []int // index of this edge within inc[endV[e]]

	numAliveNodes int
	numAliveEdges int
}

// New creates an empty graph. directed selects whether edges are considered
// oriented (u -> v) for the purposes of representation building.
func New(directed bool) *Graph {
	return &Graph{directed: directed}
}

// Directed reports whether the graph treats edges as oriented.
func (g *Graph) Directed() bool { return g.directed }

// AddNode creates and returns a new isolated node.
func (g *Graph) AddNode() Node {
	id := Node(len(g.nodeAlive))
	g.nodeAlive = append(g.nodeAlive, true)
	g.inc = append(g.inc, nil)
	g.numAliveNodes++

	return id
}

// AddEdge creates an edge u->v (or {u,v} if undirected) and returns its handle.
func (g *Graph) AddEdge(u, v Node) Edge {
	e := Edge(len(g.endU))
	g.endU = append(g.endU, u)
	g.endV = append(g.endV, v)
	g.edgeAlive = append(g.edgeAlive, true)

	g.posInU = append(g.posInU, len(g.inc[u]))
	g.inc[u] = append(g.inc[u], e)
	g.posInV = append(g.posInV, len(g.inc[v]))
	g.inc[v] = append(g.inc[v], e)

	g.numAliveEdges++

	return e
}

// RemoveEdge deletes e in O(1) by swapping it with the last entry of each
// endpoint's incidence list.
func (g *Graph) RemoveEdge(e Edge) {
	if !g.edgeAlive[e] {
		return
	}
	g.edgeAlive[e] = false
	g.removeFromIncidence(g.endU[e], e, g.posInU)
	g.removeFromIncidence(g.endV[e], e, g.posInV)
	g.numAliveEdges--
}

func (g *Graph) removeFromIncidence(node Node, e Edge, posOf []int) {
	list := g.inc[node]
	pos := posOf[e]
	last := len(list) - 1
	moved := list[last]
	list[pos] = moved
	g.inc[node] = list[:last]

	if g.endU[moved] == node && g.posInU[moved] == last {
		g.posInU[moved] = pos
	} else if g.endV[moved] == node && g.posInV[moved] == last {
		g.posInV[moved] = pos
	}
}

// RemoveNode deletes node and every edge incident to it.
func (g *Graph) RemoveNode(node Node) {
	if !g.nodeAlive[node] {
		return
	}
	for _, e := range append([]Edge(nil), g.inc[node]...) {
		g.RemoveEdge(e)
	}
	g.nodeAlive[node] = false
	g.numAliveNodes--
}

// EdgeEndpoints returns the two endpoints of e.
func (g *Graph) EdgeEndpoints(e Edge) (Node, Node) {
	return g.endU[e], g.endV[e]
}

// IncidentEdges returns the (unordered) edges incident to node.
func (g *Graph) IncidentEdges(node Node) []Edge {
	return g.inc[node]
}

// Nodes returns every currently alive node.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, g.numAliveNodes)
	for i, alive := range g.nodeAlive {
		if alive {
			nodes = append(nodes, Node(i))
		}
	}

	return nodes
}

// Edges returns every currently alive edge.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.numAliveEdges)
	for i, alive := range g.edgeAlive {
		if alive {
			edges = append(edges, Edge(i))
		}
	}

	return edges
}

// NumNodes and NumEdges report alive counts.
func (g *Graph) NumNodes() int { return g.numAliveNodes }
func (g *Graph) NumEdges() int { return g.numAliveEdges }

// Other returns the endpoint of e other than from.
func (g *Graph) Other(e Edge, from Node) Node {
	u, v := g.EdgeEndpoints(e)
	if u == from {
		return v
	}

	return u
}
