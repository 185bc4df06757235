package netbuild

import (
	"github.com/katalvlaran/seymour/cmrgraph"
	"github.com/katalvlaran/seymour/dijkstrabasis"
	"github.com/katalvlaran/seymour/ternary"
)

// BuildResult is a representation matrix together with the row/column to
// edge mapping that produced it.
type BuildResult struct {
	Matrix        *ternary.Matrix
	ForestEdges   []cmrgraph.Edge // row index -> tree edge
	CoforestEdges []cmrgraph.Edge // column index -> non-tree edge
	BasisCorrect  bool
}

// BuildMatrix assigns one row to each forest (tree) edge reached by
// dijkstrabasis.Root and one column to every other edge, each column's
// entries marking the tree edges on the path between the non-tree edge's
// endpoints (spec.md §4.3). When signed is true, entries are ±1 following
// the fundamental-cycle orientation convention described in the package
// doc comment's grounding note; otherwise every entry is 1.
func BuildMatrix(g *cmrgraph.Graph, hint map[cmrgraph.Edge]bool, signed bool) (*BuildResult, error) {
	root := dijkstrabasis.Root(g, hint)

	rowOfEdge := make(map[cmrgraph.Edge]int)
	var forestEdges []cmrgraph.Edge
	edgeDir := make(map[cmrgraph.Node]int8) // edgeDir[v] = +1 if predecessor edge runs parent->v

	for _, v := range g.Nodes() {
		pe := root.Predecessor[v]
		if pe == -1 {
			continue
		}
		rowOfEdge[pe] = len(forestEdges)
		forestEdges = append(forestEdges, pe)

		u, w := g.EdgeEndpoints(pe)
		if u == root.Parent[v] && w == v {
			edgeDir[v] = 1
		} else {
			edgeDir[v] = -1
		}
	}

	var coforestEdges []cmrgraph.Edge
	for _, e := range g.Edges() {
		if _, isTree := rowOfEdge[e]; isTree {
			continue
		}
		coforestEdges = append(coforestEdges, e)
	}

	var triplets []ternary.Triplet
	for col, e := range coforestEdges {
		u, v := g.EdgeEndpoints(e)
		if root.Distance[u] == -1 || root.Distance[v] == -1 {
			return nil, ErrDisconnected
		}

		upU, upV := pathsAboveLCA(root, u, v)

		for _, node := range upU {
			row := rowOfEdge[root.Predecessor[node]]
			val := int8(1)
			if signed {
				val = -edgeDir[node]
			}
			triplets = append(triplets, ternary.Triplet{Row: row, Col: col, Value: val})
		}
		for _, node := range upV {
			row := rowOfEdge[root.Predecessor[node]]
			val := int8(1)
			if signed {
				val = edgeDir[node]
			}
			triplets = append(triplets, ternary.Triplet{Row: row, Col: col, Value: val})
		}
	}

	m, err := ternary.NewFromTriplets(len(forestEdges), len(coforestEdges), triplets)
	if err != nil {
		return nil, err
	}

	return &BuildResult{
		Matrix:        m,
		ForestEdges:   forestEdges,
		CoforestEdges: coforestEdges,
		BasisCorrect:  root.BasisCorrect,
	}, nil
}

// pathsAboveLCA walks u and v up toward their component root in lockstep,
// first equalizing depth, then climbing both together until they meet at
// their lowest common ancestor. It returns the nodes on the climb from u
// (resp. v), starting with u (resp. v) and stopping before the LCA: exactly
// the symmetric difference of the two root-paths, i.e. the tree edges on
// the fundamental cycle the coforest edge (u, v) completes.
func pathsAboveLCA(root dijkstrabasis.Result, u, v cmrgraph.Node) ([]cmrgraph.Node, []cmrgraph.Node) {
	var upU, upV []cmrgraph.Node

	for root.Distance[u] > root.Distance[v] {
		upU = append(upU, u)
		u = root.Parent[u]
	}
	for root.Distance[v] > root.Distance[u] {
		upV = append(upV, v)
		v = root.Parent[v]
	}
	for u != v {
		upU = append(upU, u)
		upV = append(upV, v)
		u = root.Parent[u]
		v = root.Parent[v]
	}

	return upU, upV
}
