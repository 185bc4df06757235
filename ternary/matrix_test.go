package ternary_test

import (
	"testing"

	"github.com/katalvlaran/seymour/ternary"
	"github.com/stretchr/testify/require"
)

func TestNewFromDenseAndAt(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{1, 0, -1},
		{0, 1, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 2, m.NumRows())
	require.Equal(t, 3, m.NumCols())

	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, int8(-1), v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int8(0), v)

	_, err = m.At(5, 0)
	require.ErrorIs(t, err, ternary.ErrOutOfRange)
}

func TestTransposeInvolution(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{1, 0, -1},
		{0, 1, 0},
	})
	require.NoError(t, err)

	tr := m.Transpose()
	require.Equal(t, 3, tr.NumRows())
	require.Equal(t, 2, tr.NumCols())
	require.True(t, ternary.Equal(tr.Transpose(), m))
}

func TestFilterAndPermute(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{1, 0, -1},
		{0, 1, 0},
		{1, 1, 1},
	})
	require.NoError(t, err)

	sub, err := ternary.NewSubmatrix(3, 3, []int{0, 2}, []int{0, 2})
	require.NoError(t, err)
	filtered, err := ternary.Filter(m, sub)
	require.NoError(t, err)
	want, _ := ternary.NewFromDense([][]int8{{1, -1}, {1, 1}})
	require.True(t, ternary.Equal(filtered, want))

	perm, err := ternary.Permute(m, []int{2, 1, 0}, []int{0, 1, 2})
	require.NoError(t, err)
	wantPerm, _ := ternary.NewFromDense([][]int8{
		{1, 1, 1},
		{0, 1, 0},
		{1, 0, -1},
	})
	require.True(t, ternary.Equal(perm, wantPerm))
}

func TestNewFromDenseRejectsNonTernary(t *testing.T) {
	_, err := ternary.NewFromTriplets(1, 1, []ternary.Triplet{{0, 0, 2}})
	require.ErrorIs(t, err, ternary.ErrNotTernary)
}

func TestDuplicateTripletRejected(t *testing.T) {
	_, err := ternary.NewFromTriplets(1, 2, []ternary.Triplet{{0, 0, 1}, {0, 0, -1}})
	require.ErrorIs(t, err, ternary.ErrUnsortedIndices)
}
