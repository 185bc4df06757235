// Package onesum splits a ternary matrix into its 1-sum (block-diagonal)
// components by running BFS over the bipartite row/column graph of its
// support, the same construction as src/cmr/one_sum.c. It is a collaborator
// used by camion and sumops (and through sumops by seymour) rather than a core component in its
// own right (spec.md §1 lists one-sum splitting among the "external
// collaborators").
package onesum

import "github.com/katalvlaran/seymour/ternary"

// Component is one connected block of the 1-sum decomposition, carrying the
// sub-matrix together with the maps back to the original row/column indices.
type Component struct {
	Matrix        *ternary.Matrix
	RowsToOrig    []int
	ColumnsToOrig []int
}

// Split decomposes m into its connected components under the bipartite
// row/column incidence graph of its support. A matrix with a single
// component is "1-connected"; Split always returns at least one component.
func Split(m *ternary.Matrix) []Component {
	rows, cols := m.NumRows(), m.NumCols()
	numNodes := rows + cols
	firstCol := rows

	adj := make([][]int, numNodes)
	for r := 0; r < rows; r++ {
		colIdx, _ := m.RowNonzeros(r)
		for _, c := range colIdx {
			adj[r] = append(adj[r], firstCol+c)
			adj[firstCol+c] = append(adj[firstCol+c], r)
		}
	}

	component := make([]int, numNodes)
	for i := range component {
		component[i] = -1
	}

	numComponents := 0
	for start := 0; start < numNodes; start++ {
		if component[start] >= 0 {
			continue
		}
		queue := []int{start}
		component[start] = numComponents
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if component[next] < 0 {
					component[next] = numComponents
					queue = append(queue, next)
				}
			}
		}
		numComponents++
	}

	rowsByComp := make([][]int, numComponents)
	colsByComp := make([][]int, numComponents)
	for r := 0; r < rows; r++ {
		c := component[r]
		rowsByComp[c] = append(rowsByComp[c], r)
	}
	for c := 0; c < cols; c++ {
		comp := component[firstCol+c]
		colsByComp[comp] = append(colsByComp[comp], c)
	}

	components := make([]Component, numComponents)
	for i := 0; i < numComponents; i++ {
		rowPos := make(map[int]int, len(rowsByComp[i]))
		for p, r := range rowsByComp[i] {
			rowPos[r] = p
		}
		colPos := make(map[int]int, len(colsByComp[i]))
		for p, c := range colsByComp[i] {
			colPos[c] = p
		}

		var triplets []ternary.Triplet
		for _, r := range rowsByComp[i] {
			colIdx, vals := m.RowNonzeros(r)
			for k, c := range colIdx {
				triplets = append(triplets, ternary.Triplet{Row: rowPos[r], Col: colPos[c], Value: vals[k]})
			}
		}

		// A fully zero row or column forms its own singleton component; since
		// ternary.Matrix requires positive dimensions, such a component is
		// represented as a 1x1 zero matrix (Rows/ColumnsToOrig still carry
		// only the real indices that exist on that side).
		nr, nc := maxInt(len(rowsByComp[i]), 1), maxInt(len(colsByComp[i]), 1)
		sub, _ := ternary.NewFromTriplets(nr, nc, triplets)
		components[i] = Component{Matrix: sub, RowsToOrig: rowsByComp[i], ColumnsToOrig: colsByComp[i]}
	}

	return components
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
