package tdec_test

import (
	"testing"

	"github.com/katalvlaran/seymour/tdec"
	"github.com/katalvlaran/seymour/ternary"
	"github.com/stretchr/testify/require"
)

func TestTestGraphicMatrixRejectsTernary(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{{1, -1}, {0, 1}})
	require.NoError(t, err)

	_, _, err = tdec.TestGraphicMatrix(m)
	require.ErrorIs(t, err, tdec.ErrNotBinary)
}

func TestTestGraphicMatrixTriangle(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{{1}, {1}})
	require.NoError(t, err)

	ok, real, err := tdec.TestGraphicMatrix(m)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, real.Graph.NumNodes())
}
