package tdec_test

import (
	"testing"

	"github.com/katalvlaran/seymour/tdec"
	"github.com/stretchr/testify/require"
)

func isOneFromRows(support [][]int) func(row, col int) bool {
	return func(row, col int) bool {
		for _, r := range support[col] {
			if r == row {
				return true
			}
		}

		return false
	}
}

func TestTestGraphicTriangle(t *testing.T) {
	// Path tree r0 = a-b, r1 = b-c; coforest edge a-c uses both tree edges.
	columns := [][]int{{0, 1}}
	ok, real, err := tdec.TestGraphic(2, 1, isOneFromRows(columns))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, real.Graph.NumNodes())
	require.Len(t, real.ForestEdges, 2)
	require.Len(t, real.CoforestEdges, 1)
}

func TestTestGraphicStarAllowsPairwiseAdjacency(t *testing.T) {
	// Three tree edges meeting at a common centre; any two are path-adjacent.
	columns := [][]int{{0, 1}, {0, 2}, {1, 2}}
	ok, real, err := tdec.TestGraphic(3, 3, isOneFromRows(columns))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, real.Graph.NumNodes())
}

func TestTestGraphicRejectsContradictorySupports(t *testing.T) {
	// No 3-edge tree shape (only "path" and "star" exist on 4 nodes) can
	// satisfy all four of these supports at once: a star breaks {0,1,2}
	// (the centre would need degree 3) and every path ordering leaves one
	// non-adjacent pair among {0,1}, {0,2}, {1,2}.
	columns := [][]int{{0, 1}, {0, 2}, {1, 2}, {0, 1, 2}}
	ok, real, err := tdec.TestGraphic(3, 4, isOneFromRows(columns))
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, real)
}

func TestDecompositionIncrementalCheck(t *testing.T) {
	d := tdec.New(2)
	ok, err := d.AddColumnCheck([]int{0, 1})
	require.NoError(t, err)
	require.True(t, ok)
	d.AddColumnApply([]int{0, 1})

	ok, real, err := d.Realize()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, real.Graph.NumNodes())
}
