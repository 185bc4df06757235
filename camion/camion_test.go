package camion_test

import (
	"testing"

	"github.com/katalvlaran/seymour/camion"
	"github.com/katalvlaran/seymour/ternary"
	"github.com/stretchr/testify/require"
)

func TestTestDetectsConsistentSigning(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{1, 1},
		{1, 1},
	})
	require.NoError(t, err)

	isSigned, violator, err := camion.Test(m)
	require.NoError(t, err)
	require.True(t, isSigned)
	require.Nil(t, violator)
}

func TestTestDetectsBadSigning(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{1, 1},
		{1, -1},
	})
	require.NoError(t, err)

	isSigned, violator, err := camion.Test(m)
	require.NoError(t, err)
	require.False(t, isSigned)
	require.NotNil(t, violator)
	require.Equal(t, []int{0, 1}, violator.Rows)
	require.Equal(t, []int{0, 1}, violator.Cols)
}

func TestSignLeavesConsistentMatrixUnchanged(t *testing.T) {
	// Support identical to the matrix above but with signs that are already
	// Camion-consistent, so Sign has nothing to flip.
	m, err := ternary.NewFromDense([][]int8{
		{1, 1},
		{1, 1},
	})
	require.NoError(t, err)

	signed, wasSigned, violator, err := camion.Sign(m)
	require.NoError(t, err)
	require.True(t, wasSigned)
	require.Nil(t, violator)
	require.True(t, ternary.Equal(signed, m))
}

func TestSignIdempotent(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{1, 1, 0},
		{0, 1, 1},
		{1, 0, 1},
	})
	require.NoError(t, err)

	once, _, _, err := camion.Sign(m)
	require.NoError(t, err)
	twice, _, _, err := camion.Sign(once)
	require.NoError(t, err)

	// Re-signing an already-consistent matrix must leave it unchanged.
	require.Equal(t, once.NumRows(), twice.NumRows())
	require.Equal(t, once.NumCols(), twice.NumCols())
	require.True(t, ternary.Equal(once, twice))
}
