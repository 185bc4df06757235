package seymour

import (
	"sort"
	"time"

	"github.com/katalvlaran/seymour/nestedminor"
	"github.com/katalvlaran/seymour/spreduce"
	"github.com/katalvlaran/seymour/sumops"
	"github.com/katalvlaran/seymour/tdec"
	"github.com/katalvlaran/seymour/ternary"
)

// Decompose runs the work-queue driver on root until the queue drains or
// the time limit (if any) is exceeded. It mutates root and every node it
// creates in place and returns accumulated statistics.
func Decompose(root *Node, params *Params) (*Stats, error) {
	if params == nil {
		params = DefaultParams()
	}
	stats := &Stats{Regularity: FlagYes}

	var deadline time.Time
	hasDeadline := params.TimeLimit > 0
	if hasDeadline {
		deadline = time.Now().Add(params.TimeLimit)
	}

	queue := []*Node{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if hasDeadline && time.Now().After(deadline) {
			return stats, ErrTimeout
		}
		if node.Regularity != FlagUnknown {
			continue
		}
		stats.NodesProcessed++

		if enqueueOneSum(node, &queue) {
			continue
		}

		if done, err := processSeriesParallel(node, params, stats, &queue); err != nil {
			return stats, err
		} else if done {
			if node.Regularity == FlagNo && params.StopWhenIrregular {
				return stats, nil
			}
			continue
		}

		if done, err := processThreeSeparation(node, params, stats, &queue); err != nil {
			return stats, err
		} else if done {
			if node.Regularity == FlagNo && params.StopWhenIrregular {
				return stats, nil
			}
			continue
		}

		if testLeaves(node, params) {
			continue
		}

		node.Tag = TagIrregular
		node.Regularity = FlagNo
		stats.Regularity = FlagNo
		if params.StopWhenIrregular {
			return stats, nil
		}
	}

	return stats, nil
}

// enqueueOneSum runs the 1-sum split (spec.md §4.7 step 2). It reports
// whether the node was converted (and its children enqueued), in which
// case the caller should move on to the next queue entry.
func enqueueOneSum(node *Node, queue *[]*Node) bool {
	comps := sumops.DecomposeOneSum(node.Matrix)
	if len(comps) <= 1 {
		return false
	}

	node.Tag = TagOneSum
	for _, c := range comps {
		child := NewNode(c.Matrix)
		node.Children = append(node.Children, child)
		*queue = append(*queue, child)
	}

	return true
}

// processSeriesParallel runs step 3: SP reduction, classifying the node as
// fully reduced, a 2-sum, or (on a wheel) leaving it pending for the
// 3-separation search with the wheel minor recorded.
func processSeriesParallel(node *Node, params *Params, stats *Stats, queue *[]*Node) (done bool, err error) {
	if node.TestedSeriesParallel || !params.SeriesParallel {
		return false, nil
	}
	node.TestedSeriesParallel = true

	res, err := spreduce.Reduce(node.Matrix)
	if err != nil {
		return false, err
	}
	if res.BadDeterminant {
		node.Tag = TagSubmatrix
		node.Regularity = FlagNo
		node.Violator = res.Violator
		stats.Regularity = FlagNo

		return true, nil
	}

	switch res.Outcome {
	case spreduce.OutcomeSeriesParallel:
		node.Tag = TagSeriesParallel
		node.Regularity = FlagYes

		return true, nil
	case spreduce.OutcomeTwoSeparation:
		return true, splitTwoSum(node, res, queue)
	default: // OutcomeWheel
		node.WheelMinor = res.Violator

		return false, nil
	}
}

// splitTwoSum partitions node.Matrix along the 2-separation spreduce found,
// mapping the separation's residual-space indices back to node.Matrix's own
// indices via res.ResidualRows/res.ResidualCols.
func splitTwoSum(node *Node, res *spreduce.Result, queue *[]*Node) error {
	sep := res.Separation
	rowsA := mapIndices(sep.RowsFirst, res.ResidualRows)
	colsA := mapIndices(sep.ColsFirst, res.ResidualCols)
	rowsB := mapIndices(sep.RowsSecond, res.ResidualRows)
	colsB := mapIndices(sep.ColsSecond, res.ResidualCols)

	node.Tag = TagTwoSum

	return splitInto(node, rowsA, colsA, rowsB, colsB, queue)
}

func mapIndices(residualIdx, mapping []int) []int {
	out := make([]int, len(residualIdx))
	for i, idx := range residualIdx {
		out[i] = mapping[idx]
	}
	sort.Ints(out)

	return out
}

// processThreeSeparation runs step 4 (simple 3-separation search) and, on a
// find, step's own decomposeStrategy dispatch: Δ-sum/Y-sum/pivot for a
// distributed-rank separation, 3-sum/pivot for a concentrated-rank one.
func processThreeSeparation(node *Node, params *Params, stats *Stats, queue *[]*Node) (done bool, err error) {
	if node.TestedSimpleThreeSeparations {
		return false, nil
	}
	node.TestedSimpleThreeSeparations = true

	res, err := nestedminor.Find(node.Matrix)
	if err != nil {
		return false, err
	}
	if res.Violator != nil {
		node.Tag = TagSubmatrix
		node.Regularity = FlagNo
		node.Violator = res.Violator
		stats.Regularity = FlagNo

		return true, nil
	}
	if !res.Found {
		return false, nil
	}

	sep := res.Separation
	switch sep.Type {
	case nestedminor.DistributedRanks:
		switch {
		case params.DecomposeStrategy&DistributedYSum != 0:
			node.Tag = TagYSum
		case params.DecomposeStrategy&DistributedDeltaSum != 0:
			node.Tag = TagDeltaSum
		default:
			return true, pivotRetry(node, sep, stats, queue)
		}
	case nestedminor.ConcentratedRank:
		if params.DecomposeStrategy&ConcentratedThreeSum != 0 {
			node.Tag = TagThreeSum
		} else {
			return true, pivotRetry(node, sep, stats, queue)
		}
	}

	return true, splitInto(node, sep.RowsFirst, sep.ColsFirst, sep.RowsSecond, sep.ColsSecond, queue)
}

// splitInto builds the two child submatrices named by the row/column
// partitions, attaches them as node's children, and enqueues them in
// (first child, second child) order per spec.md §5's FIFO ordering
// guarantee.
func splitInto(node *Node, rowsA, colsA, rowsB, colsB []int, queue *[]*Node) error {
	matA, err := filterMatrix(node.Matrix, rowsA, colsA)
	if err != nil {
		return err
	}
	matB, err := filterMatrix(node.Matrix, rowsB, colsB)
	if err != nil {
		return err
	}

	childA, childB := NewNode(matA), NewNode(matB)
	node.Children = []*Node{childA, childB}
	*queue = append(*queue, childA, childB)

	return nil
}

func filterMatrix(m *ternary.Matrix, rows, cols []int) (*ternary.Matrix, error) {
	sub, err := ternary.NewSubmatrix(m.NumRows(), m.NumCols(), rows, cols)
	if err != nil {
		return nil, err
	}

	return ternary.Filter(m, sub)
}

// pivotRetry applies the DecomposeStrategy's pivot fallback: pivot on the
// first entry of the separation's first-side block (RowsFirst x ColsFirst)
// that is +1 or -1, clear
// TestedSimpleThreeSeparations so the node is re-scanned with the pivoted
// matrix, and requeue the same node.
func pivotRetry(node *Node, sep *nestedminor.Separation, stats *Stats, queue *[]*Node) error {
	for _, r := range sep.RowsFirst {
		for _, c := range sep.ColsFirst {
			v, verr := node.Matrix.At(r, c)
			if verr != nil || (v != 1 && v != -1) {
				continue
			}

			pivoted, violator, perr := ternary.TernaryPivot(node.Matrix, r, c)
			if perr != nil {
				node.Tag = TagSubmatrix
				node.Regularity = FlagNo
				node.Violator = violator
				stats.Regularity = FlagNo

				return nil
			}

			node.Tag = TagPivots
			node.Matrix = pivoted
			node.TestedSimpleThreeSeparations = false
			stats.Pivots++
			*queue = append(*queue, node)

			return nil
		}
	}

	return ErrStructure
}

// testLeaves runs step 6: graphicness, cographicness, then R10. Graphicness
// is a property of a matrix's {0,1} support (spec.md §3's definition), so a
// node that still carries ±1 signs at this point — reachable when the
// driver is testing total unimodularity rather than plain regularity — is
// converted to its binary support before either TestGraphicMatrix call;
// the signs themselves play no part in whether the underlying graph exists.
func testLeaves(node *Node, params *Params) bool {
	support := node.Matrix
	if !support.IsBinary() {
		if b, err := binarySupport(support); err == nil {
			support = b
		}
	}

	if params.DirectGraphicness {
		if ok, real, err := tdec.TestGraphicMatrix(support); err == nil && ok {
			node.Tag = TagGraphic
			node.Regularity = FlagYes
			node.Graphicness = FlagYes
			node.Realization = real
			if params.PlanarityCheck {
				testCographic(node, support)
			}

			return true
		}
	}

	if ok, real, err := tdec.TestGraphicMatrix(support.Transpose()); err == nil && ok {
		node.Tag = TagCographic
		node.Regularity = FlagYes
		node.Cographicness = FlagYes
		node.CoRealization = real

		return true
	}

	if isR10(node.Matrix) {
		node.Tag = TagR10
		node.Regularity = FlagYes

		return true
	}

	return false
}

func testCographic(node *Node, support *ternary.Matrix) {
	if ok, real, err := tdec.TestGraphicMatrix(support.Transpose()); err == nil && ok {
		node.Cographicness = FlagYes
		node.CoRealization = real
		node.Tag = TagPlanar
	}
}

// binarySupport replaces every nonzero entry of m with 1, dropping sign.
func binarySupport(m *ternary.Matrix) (*ternary.Matrix, error) {
	dense := m.Dense()
	grid := make([][]int8, len(dense))
	for r, row := range dense {
		grid[r] = make([]int8, len(row))
		for c, v := range row {
			if v != 0 {
				grid[r][c] = 1
			}
		}
	}

	return ternary.NewFromDense(grid)
}
