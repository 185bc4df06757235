package tdec

import (
	"github.com/katalvlaran/seymour/cmrgraph"
	"github.com/katalvlaran/seymour/unionfind"
)

// searchVisitCap bounds the number of recursive assignment attempts the
// realisation search makes before giving up with ErrSearchExhausted. It is
// generous for the matrix sizes this package is exercised against (spec.md
// §8's worked examples all have at most seven rows) and exists purely as a
// safety valve against the search's worst-case exponential blowup.
const searchVisitCap = 4_000_000

// Realization is a graph G together with the spanning forest (ForestEdges,
// one per row) and coforest (CoforestEdges, one per column) that make G's
// fundamental-cycle matrix equal the matrix the search was run against.
type Realization struct {
	Graph         *cmrgraph.Graph
	ForestEdges   []cmrgraph.Edge
	CoforestEdges []cmrgraph.Edge
}

// TestGraphic decides whether the {0,1} matrix described by isOne(row, col)
// is the representation matrix, with respect to some spanning forest, of
// some graph: rows play the role of forest (tree) edges and columns the
// role of coforest edges, a column's nonzero rows being exactly the tree
// path its edge completes into a cycle (spec.md §4.4).
func TestGraphic(rows, cols int, isOne func(row, col int) bool) (bool, *Realization, error) {
	columns := make([][]int, cols)
	for j := 0; j < cols; j++ {
		var support []int
		for i := 0; i < rows; i++ {
			if isOne(i, j) {
				support = append(support, i)
			}
		}
		columns[j] = support
	}

	return testGraphicColumns(rows, columns)
}

func testGraphicColumns(numRows int, columns [][]int) (bool, *Realization, error) {
	maxRowOf := make([]int, len(columns))
	for j, s := range columns {
		m := -1
		for _, r := range s {
			if r > m {
				m = r
			}
		}
		maxRowOf[j] = m
	}

	s := &searcher{
		numRows:   numRows,
		columns:   columns,
		maxRowOf:  maxRowOf,
		nodeOfRow: make([][2]int, numRows),
		maxNodes:  numRows + 1,
	}

	if !s.assign(0) {
		if s.exhausted {
			return false, nil, ErrSearchExhausted
		}

		return false, nil, nil
	}

	return true, s.realize(), nil
}

type searcher struct {
	numRows   int
	columns   [][]int // row indices present in each column, ascending
	maxRowOf  []int   // maxRowOf[j] = largest row index appearing in columns[j], -1 if empty
	nodeOfRow [][2]int
	nodePool  int
	maxNodes  int
	visits    int
	exhausted bool
}

type candidate struct {
	a, b     int
	newPool  int
}

// candidates enumerates every way to place row's tree edge given the nodes
// allocated so far: between two already-placed nodes in different
// components, between one placed node and a fresh one, or between two fresh
// nodes (a brand-new tree fragment, to be merged by a later row).
func (s *searcher) candidates(row int) []candidate {
	dsu := unionfind.New(s.nodePool)
	for r := 0; r < row; r++ {
		dsu.Union(s.nodeOfRow[r][0], s.nodeOfRow[r][1])
	}

	var out []candidate
	for i := 0; i < s.nodePool; i++ {
		for j := i + 1; j < s.nodePool; j++ {
			if !dsu.Connected(i, j) {
				out = append(out, candidate{a: i, b: j, newPool: s.nodePool})
			}
		}
	}
	if s.nodePool+1 <= s.maxNodes {
		for i := 0; i < s.nodePool; i++ {
			out = append(out, candidate{a: i, b: s.nodePool, newPool: s.nodePool + 1})
		}
	}
	if s.nodePool+2 <= s.maxNodes {
		out = append(out, candidate{a: s.nodePool, b: s.nodePool + 1, newPool: s.nodePool + 2})
	}

	return out
}

func (s *searcher) assign(row int) bool {
	if row == s.numRows {
		return s.nodePool == s.maxNodes
	}

	for _, c := range s.candidates(row) {
		s.visits++
		if s.visits > searchVisitCap {
			s.exhausted = true

			return false
		}

		prevPool := s.nodePool
		s.nodeOfRow[row] = [2]int{c.a, c.b}
		s.nodePool = c.newPool

		if s.readyColumnsOK(row) && s.assign(row+1) {
			return true
		}

		s.nodePool = prevPool
	}

	return false
}

// readyColumnsOK checks every column whose support is now fully placed
// (its highest row index equals row) forms a simple path in the partial
// tree built from rows 0..row.
func (s *searcher) readyColumnsOK(row int) bool {
	for j, m := range s.maxRowOf {
		if m != row {
			continue
		}
		if !checkColumnIsPath(s.columns[j], s.nodeOfRow) {
			return false
		}
	}

	return true
}

// checkColumnIsPath reports whether the tree edges named by rows, as placed
// in nodeOfRow, form a single simple path (i.e. are exactly the tree path
// between two nodes): distinct endpoints must number len(rows)+1 and no
// node may have degree greater than two.
func checkColumnIsPath(rows []int, nodeOfRow [][2]int) bool {
	if len(rows) == 0 {
		return true
	}

	degree := make(map[int]int, len(rows)*2)
	for _, r := range rows {
		degree[nodeOfRow[r][0]]++
		degree[nodeOfRow[r][1]]++
	}
	if len(degree) != len(rows)+1 {
		return false
	}
	for _, d := range degree {
		if d > 2 {
			return false
		}
	}

	return true
}

// endpointsOf returns the two nodes a column's edge connects, derived from
// the degree-one nodes of its (already verified) path subgraph.
func endpointsOf(rows []int, nodeOfRow [][2]int) (int, int) {
	if len(rows) == 0 {
		return 0, 0
	}

	degree := make(map[int]int, len(rows)*2)
	for _, r := range rows {
		degree[nodeOfRow[r][0]]++
		degree[nodeOfRow[r][1]]++
	}

	var ends []int
	for n, d := range degree {
		if d == 1 {
			ends = append(ends, n)
		}
	}
	if len(ends) != 2 {
		// A single self-contained edge or degenerate case: fall back to the
		// first row's own endpoints.
		return nodeOfRow[rows[0]][0], nodeOfRow[rows[0]][1]
	}

	return ends[0], ends[1]
}

func (s *searcher) realize() *Realization {
	g := cmrgraph.New(false)
	nodes := make([]cmrgraph.Node, s.nodePool)
	for i := range nodes {
		nodes[i] = g.AddNode()
	}

	forestEdges := make([]cmrgraph.Edge, s.numRows)
	for r, pair := range s.nodeOfRow {
		forestEdges[r] = g.AddEdge(nodes[pair[0]], nodes[pair[1]])
	}

	coforestEdges := make([]cmrgraph.Edge, len(s.columns))
	for j, rows := range s.columns {
		u, v := endpointsOf(rows, s.nodeOfRow)
		coforestEdges[j] = g.AddEdge(nodes[u], nodes[v])
	}

	return &Realization{Graph: g, ForestEdges: forestEdges, CoforestEdges: coforestEdges}
}
