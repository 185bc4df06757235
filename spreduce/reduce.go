package spreduce

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/seymour/ternary"
)

// Reduce runs the series-parallel elimination to termination and classifies
// the residual (spec.md §4.5).
func Reduce(m *ternary.Matrix) (*Result, error) {
	rows, cols := m.NumRows(), m.NumCols()
	dense := m.Dense()

	rowNZ := make([]map[int]int8, rows)
	colNZ := make([]map[int]int8, cols)
	for i := 0; i < rows; i++ {
		rowNZ[i] = map[int]int8{}
	}
	for j := 0; j < cols; j++ {
		colNZ[j] = map[int]int8{}
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := dense[i][j]; v != 0 {
				rowNZ[i][j] = v
				colNZ[j][i] = v
			}
		}
	}

	aliveRow := make([]bool, rows)
	aliveCol := make([]bool, cols)
	for i := range aliveRow {
		aliveRow[i] = true
	}
	for j := range aliveCol {
		aliveCol[j] = true
	}

	rowSignature := map[string]int{} // normalized support signature -> alive row index
	colSignature := map[string]int{}

	var reductions []Reduction

	removeRow := func(i int) {
		aliveRow[i] = false
		for j := range rowNZ[i] {
			delete(colNZ[j], i)
		}
	}
	removeCol := func(j int) {
		aliveCol[j] = false
		for i := range colNZ[j] {
			delete(rowNZ[i], j)
		}
	}

	workRows := make([]int, rows)
	for i := range workRows {
		workRows[i] = i
	}
	workCols := make([]int, cols)
	for j := range workCols {
		workCols[j] = j
	}

	var violator *ternary.Submatrix
	var badDeterminant bool

	for len(workRows) > 0 || len(workCols) > 0 {
		if len(workRows) > 0 {
			i := workRows[0]
			workRows = workRows[1:]
			if !aliveRow[i] {
				continue
			}
			switch len(rowNZ[i]) {
			case 0:
				reductions = append(reductions, Reduction{Element: Element{IsRow: true, Index: i}})
				removeRow(i)
			case 1:
				var j int
				for col := range rowNZ[i] {
					j = col
				}
				reductions = append(reductions, Reduction{
					Element: Element{IsRow: true, Index: i},
					HasMate: true,
					Mate:    Element{IsRow: false, Index: j},
				})
				removeRow(i)
				workCols = append(workCols, j)
			default:
				key := supportKey(rowNZ[i])
				if other, found := rowSignature[key]; found && aliveRow[other] {
					if rowSign(rowNZ[other], rowNZ[i]) != 0 {
						reductions = append(reductions, Reduction{
							Element: Element{IsRow: true, Index: i},
							HasMate: true,
							Mate:    Element{IsRow: true, Index: other},
						})
						removeRow(i)

						continue
					}
					if v, bd := findSignViolator(rowNZ[i], rowNZ[other], i, other, true, rows, cols); bd {
						violator = v
						badDeterminant = true

						goto done
					}
				} else {
					rowSignature[key] = i
				}
			}
		} else if len(workCols) > 0 {
			j := workCols[0]
			workCols = workCols[1:]
			if !aliveCol[j] {
				continue
			}
			switch len(colNZ[j]) {
			case 0:
				reductions = append(reductions, Reduction{Element: Element{IsRow: false, Index: j}})
				removeCol(j)
			case 1:
				var i int
				for row := range colNZ[j] {
					i = row
				}
				reductions = append(reductions, Reduction{
					Element: Element{IsRow: false, Index: j},
					HasMate: true,
					Mate:    Element{IsRow: true, Index: i},
				})
				removeCol(j)
				workRows = append(workRows, i)
			default:
				key := supportKey(colNZ[j])
				if other, found := colSignature[key]; found && aliveCol[other] {
					if rowSign(colNZ[other], colNZ[j]) != 0 {
						reductions = append(reductions, Reduction{
							Element: Element{IsRow: false, Index: j},
							HasMate: true,
							Mate:    Element{IsRow: false, Index: other},
						})
						removeCol(j)

						continue
					}
					if v, bd := findSignViolator(colNZ[j], colNZ[other], j, other, false, rows, cols); bd {
						violator = v
						badDeterminant = true

						goto done
					}
				} else {
					colSignature[key] = j
				}
			}
		}
	}
done:

	var residualRows, residualCols []int
	for i := 0; i < rows; i++ {
		if aliveRow[i] {
			residualRows = append(residualRows, i)
		}
	}
	for j := 0; j < cols; j++ {
		if aliveCol[j] {
			residualCols = append(residualCols, j)
		}
	}

	var residual *ternary.Matrix
	if len(residualRows) > 0 && len(residualCols) > 0 {
		sub, err := ternary.NewSubmatrix(rows, cols, residualRows, residualCols)
		if err != nil {
			return nil, err
		}
		residual, err = ternary.Filter(m, sub)
		if err != nil {
			return nil, err
		}
	}

	res := &Result{
		Reductions:     reductions,
		Residual:       residual,
		ResidualRows:   residualRows,
		ResidualCols:   residualCols,
		Violator:       violator,
		BadDeterminant: badDeterminant,
	}

	if badDeterminant {
		res.Outcome = OutcomeWheel // 2x2 violator short-circuits; caller checks BadDeterminant first

		return res, nil
	}

	if residual == nil || (len(residualRows) <= 1 && len(residualCols) <= 1) {
		res.Outcome = OutcomeSeriesParallel

		return res, nil
	}

	classifyResidual(res)

	return res, nil
}

// supportKey is the sorted column (or row) set of a row (or column),
// used to find candidate duplicates; sign agreement is checked separately.
func supportKey(nz map[int]int8) string {
	keys := make([]int, 0, len(nz))
	for k := range nz {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return fmt.Sprint(keys)
}

// rowSign reports the global sign s such that b == s*a over their shared
// support, or 0 if no such consistent sign exists (a and b must already
// have identical supports).
func rowSign(a, b map[int]int8) int8 {
	var sign int8
	for col, av := range a {
		bv := b[col]
		want := av
		if sign == 0 {
			if bv == av {
				sign = 1
			} else if bv == -av {
				sign = -1
			} else {
				return 0
			}
		}
		if bv != sign*want {
			return 0
		}
	}

	return sign
}

// findSignViolator locates two columns (if isRow) or rows (otherwise) where
// a and b's entries are not a consistent global multiple of one another,
// and builds the 2x2 submatrix that certifies a bad (non-TU) determinant.
// indexA/indexB are the two rows (or columns) a and b belong to.
func findSignViolator(a, b map[int]int8, indexA, indexB int, isRow bool, hostRows, hostCols int) (*ternary.Submatrix, bool) {
	keys := make([]int, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	lo, hi := indexA, indexB
	if lo > hi {
		lo, hi = hi, lo
	}

	for x := 0; x < len(keys); x++ {
		for y := x + 1; y < len(keys); y++ {
			c1, c2 := keys[x], keys[y]
			// Determinant of [[a[c1], a[c2]], [b[c1], b[c2]]]; nonzero
			// certifies the pair is neither parallel nor consistently
			// signed.
			det := int(a[c1])*int(b[c2]) - int(a[c2])*int(b[c1])
			if det != 0 {
				var sub *ternary.Submatrix
				var err error
				if isRow {
					sub, err = ternary.NewSubmatrix(hostRows, hostCols, []int{lo, hi}, []int{c1, c2})
				} else {
					sub, err = ternary.NewSubmatrix(hostRows, hostCols, []int{c1, c2}, []int{lo, hi})
				}
				if err != nil {
					return nil, false
				}

				return sub, true
			}
		}
	}

	return nil, false
}
