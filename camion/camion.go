// Package camion decides whether the signs of a {-1,0,1} matrix already
// known to have the right support pattern are consistent with a totally
// unimodular signing (C2 in spec.md §1), and if not, produces a small
// certifying 2k x 2k submatrix with |det| >= 2.
//
// The algorithm walks the bipartite row/column graph of the matrix's
// support one row at a time: every time the BFS from a row's first nonzero
// column reaches a second column already touched by that row, the closed
// walk between the two columns is a cycle whose signed entries must sum to
// 0 mod 4 for a Camion-consistent signing; ground truth and algorithm shape
// follow src/cmr/camion.c.
package camion

import (
	"sort"

	"github.com/katalvlaran/seymour/onesum"
	"github.com/katalvlaran/seymour/ternary"
)

// Sign returns a sign-flipped matrix congruent to m (same support) in which
// every square submatrix has determinant in {-1,0,1}, if one exists with
// the given support; wasSigned reports whether m already had that property.
// If m was not already Camion-signed, violator names the 2k x 2k submatrix
// (|det| >= 2 in m) of the first inconsistent cycle found; err reports only
// failures to build the result.
func Sign(m *ternary.Matrix) (signed *ternary.Matrix, wasSigned bool, violator *ternary.Submatrix, err error) {
	return sign(m, true)
}

// Test reports whether m is already Camion-signed, without modifying it.
func Test(m *ternary.Matrix) (isSigned bool, violator *ternary.Submatrix, err error) {
	_, wasSigned, violator, err := sign(m, false)

	return wasSigned, violator, err
}

func sign(m *ternary.Matrix, change bool) (*ternary.Matrix, bool, *ternary.Submatrix, error) {
	components := onesum.Split(m)

	grid := m.Dense()
	allSigned := true
	var firstViolator *ternary.Submatrix

	for _, comp := range components {
		modified, compGrid, compViolator := signSequentiallyConnected(comp.Matrix, change)
		if compViolator != nil && firstViolator == nil {
			rows := make([]int, len(compViolator.Rows))
			for i, r := range compViolator.Rows {
				rows[i] = comp.RowsToOrig[r]
			}
			cols := make([]int, len(compViolator.Cols))
			for i, c := range compViolator.Cols {
				cols[i] = comp.ColumnsToOrig[c]
			}
			sort.Ints(rows)
			sort.Ints(cols)
			firstViolator, _ = ternary.NewSubmatrix(m.NumRows(), m.NumCols(), rows, cols)
		}
		if modified {
			allSigned = false
			if change {
				for i, r := range comp.RowsToOrig {
					for j, c := range comp.ColumnsToOrig {
						grid[r][c] = compGrid[i][j]
					}
				}
			} else {
				break
			}
		}
	}

	if !change {
		return nil, allSigned, firstViolator, nil
	}

	out, buildErr := ternary.NewFromDense(grid)

	return out, allSigned, firstViolator, buildErr
}

// signSequentiallyConnected implements CMRcomputeCamionSignSequentiallyConnected:
// it assumes m is 1-connected (sequentially connected). Returns whether a
// sign flip was required, the (possibly modified) dense grid, and the
// violator of the first inconsistent cycle, if any (with change false the
// scan stops there).
func signSequentiallyConnected(m *ternary.Matrix, change bool) (bool, [][]int8, *ternary.Submatrix) {
	numRows, numCols := m.NumRows(), m.NumCols()
	if numRows > numCols {
		modified, tGrid, violator := signSequentiallyConnected(m.Transpose(), change)
		grid := transposeGrid(tGrid, numRows, numCols)
		if violator != nil {
			violator = &ternary.Submatrix{Rows: violator.Cols, Cols: violator.Rows}
		}

		return modified, grid, violator
	}

	grid := m.Dense()
	firstRowNode := numCols
	numNodes := numCols + numRows
	anyModified := false
	var firstViolator *ternary.Submatrix

	for row := 1; row < numRows; row++ {
		targetValue := make(map[int]int8)
		firstCol := -1
		for c := 0; c < numCols; c++ {
			if grid[row][c] != 0 {
				targetValue[c] = grid[row][c]
				if firstCol < 0 {
					firstCol = c
				}
			}
		}
		if firstCol < 0 {
			continue
		}

		status := make([]int8, numNodes)
		predNode := make([]int, numNodes)
		predVal := make([]int8, numNodes)
		for i := range predNode {
			predNode[i] = -1
		}

		queue := []int{firstCol}
		status[firstCol] = 1
		rowChanged := false

		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			status[cur] = 2

			if cur >= firstRowNode {
				r := cur - firstRowNode
				for c := 0; c < numCols; c++ {
					v := grid[r][c]
					if v == 0 || status[c] != 0 {
						continue
					}
					status[c] = 1
					predNode[c] = cur
					predVal[c] = v
					queue = append(queue, c)

					if tv := targetValue[c]; tv != 0 {
						sum := int(tv)
						pathNode := c
						for {
							sum += int(predVal[pathNode])
							pathNode = predNode[pathNode]
							if pathNode < firstRowNode && targetValue[pathNode] != 0 {
								break
							}
						}
						sum += int(targetValue[pathNode])

						if sum%4 != 0 {
							if change {
								if firstViolator == nil {
									firstViolator = buildViolator(row, c, predNode, predVal, targetValue, firstRowNode, numRows, numCols)
								}
								targetValue[c] = -targetValue[c]
								rowChanged = true
							} else {
								targetValue[c] = -targetValue[c]
								violator := buildViolator(row, c, predNode, predVal, targetValue, firstRowNode, numRows, numCols)

								return true, grid, violator
							}
						}
					}
				}
			} else {
				c := cur
				for r := 0; r < row; r++ {
					v := grid[r][c]
					if v == 0 {
						continue
					}
					rNode := firstRowNode + r
					if status[rNode] == 0 {
						status[rNode] = 1
						predNode[rNode] = cur
						predVal[rNode] = v
						queue = append(queue, rNode)
					}
				}
			}
		}

		if rowChanged {
			for c, tv := range targetValue {
				grid[row][c] = tv
			}
			anyModified = true
		}
	}

	return anyModified, grid, firstViolator
}

// buildViolator reconstructs the 2k x 2k alternating-cycle submatrix that
// produced a non-zero-mod-4 sum, starting from the row whose BFS found it and
// the column c where the second target was reached.
func buildViolator(row, c int, predNode []int, predVal []int8, targetValue map[int]int8, firstRowNode, numRows, numCols int) *ternary.Submatrix {
	rows := map[int]bool{row: true}
	cols := map[int]bool{c: true}
	p := c
	for {
		p = predNode[p]
		if p >= firstRowNode {
			rows[p-firstRowNode] = true
		} else {
			cols[p] = true
		}
		if p < firstRowNode && targetValue[p] != 0 {
			break
		}
	}

	sub, _ := ternary.NewSubmatrix(numRows, numCols, sortedKeys(rows), sortedKeys(cols))

	return sub
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

func transposeGrid(grid [][]int8, numRows, numCols int) [][]int8 {
	out := make([][]int8, numRows)
	for i := range out {
		out[i] = make([]int8, numCols)
	}
	for j := 0; j < len(grid); j++ {
		for i := 0; i < len(grid[j]); i++ {
			out[i][j] = grid[j][i]
		}
	}

	return out
}
