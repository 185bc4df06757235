package nestedminor

import (
	"sort"

	"github.com/katalvlaran/seymour/ternary"
)

// Find searches m (assumed already series-parallel irreducible) for a
// simple 3-separation, trying the distributed-rank situation first and then
// the concentrated-rank situation, matching the order
// CMRregularitySimpleSearchThreeSeparation tries them in.
func Find(m *ternary.Matrix) (*Result, error) {
	rowSupport, colSupport := buildSupports(m)

	if res := findDistributedRank(rowSupport, colSupport); res != nil {
		return res, nil
	}
	if res := findConcentratedRank(rowSupport, colSupport); res != nil {
		return res, nil
	}

	return &Result{Found: false}, nil
}

func buildSupports(m *ternary.Matrix) ([]map[int]int8, []map[int]int8) {
	rows, cols := m.NumRows(), m.NumCols()
	rowSupport := make([]map[int]int8, rows)
	colSupport := make([]map[int]int8, cols)
	for i := 0; i < rows; i++ {
		rowSupport[i] = map[int]int8{}
	}
	for j := 0; j < cols; j++ {
		colSupport[j] = map[int]int8{}
	}
	for i := 0; i < rows; i++ {
		nzCols, vals := m.RowNonzeros(i)
		for k, j := range nzCols {
			rowSupport[i][j] = vals[k]
			colSupport[j][i] = vals[k]
		}
	}

	return rowSupport, colSupport
}

// findDistributedRank implements Situation A: a nonzero whose row and
// column each have exactly 2 nonzeros overall.
func findDistributedRank(rowSupport, colSupport []map[int]int8) *Result {
	for row1, support := range rowSupport {
		if len(support) != 2 {
			continue
		}
		cols := sortedKeys(support)
		for _, column1 := range cols {
			if len(colSupport[column1]) != 2 {
				continue
			}

			column2 := cols[0]
			if column2 == column1 {
				column2 = cols[1]
			}

			var row2 int
			for r := range colSupport[column1] {
				if r != row1 {
					row2 = r
				}
			}

			v11 := support[column1]
			v12 := support[column2]
			v21 := colSupport[column1][row2]
			v22 := rowSupport[row2][column2] // 0 if absent

			det := int(v11)*int(v22) - int(v12)*int(v21)
			if det < -1 || det > 1 {
				sub, err := ternary.NewSubmatrix(len(rowSupport), len(colSupport),
					sortedPair(row1, row2), sortedPair(column1, column2))
				if err == nil {
					return &Result{Found: true, Violator: sub}
				}
			}

			sep := &Separation{Type: DistributedRanks}
			for i := range rowSupport {
				if i == row1 || i == row2 {
					sep.RowsFirst = append(sep.RowsFirst, i)
				} else {
					sep.RowsSecond = append(sep.RowsSecond, i)
				}
			}
			for j := range colSupport {
				if j == column1 || j == column2 {
					sep.ColsFirst = append(sep.ColsFirst, j)
				} else {
					sep.ColsSecond = append(sep.ColsSecond, j)
				}
			}

			return &Result{Found: true, Separation: sep}
		}
	}

	return nil
}

// findConcentratedRank implements Situation B: a row with 2 nonzeros where
// removing one entry makes its column an almost-duplicate (up to sign) of
// another column.
func findConcentratedRank(rowSupport, colSupport []map[int]int8) *Result {
	colSignature := map[string][]int{}
	for j, support := range colSupport {
		key := supportKey(support)
		colSignature[key] = append(colSignature[key], j)
	}

	for row, support := range rowSupport {
		if len(support) != 2 {
			continue
		}
		cols := sortedKeys(support)
		for idx, column := range cols {
			otherColumn := cols[1-idx]

			reduced := map[int]int8{}
			for r, v := range colSupport[column] {
				if r != row {
					reduced[r] = v
				}
			}
			key := supportKey(reduced)
			for _, dup := range colSignature[key] {
				if dup == column {
					continue
				}
				if rowSign(reduced, colSupport[dup]) == 0 {
					continue
				}

				sep := &Separation{Type: ConcentratedRank}
				for i := range rowSupport {
					if i == row {
						sep.RowsFirst = append(sep.RowsFirst, i)
					} else {
						sep.RowsSecond = append(sep.RowsSecond, i)
					}
				}
				for j := range colSupport {
					if j == column || j == otherColumn || j == dup {
						sep.ColsFirst = append(sep.ColsFirst, j)
					} else {
						sep.ColsSecond = append(sep.ColsSecond, j)
					}
				}

				return &Result{Found: true, Separation: sep}
			}
		}
	}

	return nil
}

func sortedKeys(m map[int]int8) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

func sortedPair(a, b int) []int {
	if a > b {
		a, b = b, a
	}

	return []int{a, b}
}
