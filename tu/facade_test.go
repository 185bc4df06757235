package tu_test

import (
	"testing"

	"github.com/katalvlaran/seymour/cmrgraph"
	"github.com/katalvlaran/seymour/netbuild"
	"github.com/katalvlaran/seymour/tdec"
	"github.com/katalvlaran/seymour/ternary"
	"github.com/katalvlaran/seymour/tu"
	"github.com/stretchr/testify/require"
)

func TestTestGraphicMatrixRejectsNonBinaryInput(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{{1, -1}})
	require.NoError(t, err)

	res, err := tu.TestGraphicMatrix(m)
	require.Error(t, err)
	require.ErrorIs(t, err, tdec.ErrNotBinary)
	require.Equal(t, tu.StatusInvalidInput, res.Status)
}

func TestTestGraphicMatrixAcceptsTriangle(t *testing.T) {
	// 2 tree edges x 1 coforest edge closing the triangle: the verified
	// fixture tdec's own tests use directly (tdec/matrix_test.go's
	// TestTestGraphicMatrixTriangle).
	m, err := ternary.NewFromDense([][]int8{{1}, {1}})
	require.NoError(t, err)

	res, err := tu.TestGraphicMatrix(m)
	require.NoError(t, err)
	require.True(t, res.IsGraphic)
	require.NotNil(t, res.Realization)
	require.Equal(t, tu.StatusOk, res.Status)
}

func TestComputeCamionSignedOnTrivialMatrix(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{{1}})
	require.NoError(t, err)

	res, err := tu.ComputeCamionSigned(m)
	require.NoError(t, err)
	require.True(t, res.WasSigned)
	require.Nil(t, res.Violator)
	require.Equal(t, tu.StatusOk, res.Status)
}

func TestTestRegularRejectsTernaryInput(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{{1, -1}})
	require.NoError(t, err)

	res, err := tu.TestRegular(m, nil, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, ternary.ErrNotBinary)
	require.Equal(t, tu.StatusInvalidInput, res.Status)
}

func TestTestRegularOnBlockDiagonalMatrix(t *testing.T) {
	// A 1-sum of two unit entries: seymour.Decompose splits it into two
	// trivially series-parallel leaves, so it is regular.
	m, err := ternary.NewFromDense([][]int8{{1, 0}, {0, 1}})
	require.NoError(t, err)

	res, err := tu.TestRegular(m, nil, 0)
	require.NoError(t, err)
	require.True(t, res.IsRegular)
	require.Equal(t, tu.StatusOk, res.Status)
}

func TestTestTotallyUnimodularOnBlockDiagonalMatrix(t *testing.T) {
	// Already binary, so Camion-signing is a no-op; the same 1-sum leaves
	// that make TestRegular succeed above make this TU too.
	m, err := ternary.NewFromDense([][]int8{{1, 0}, {0, 1}})
	require.NoError(t, err)

	res, err := tu.TestTotallyUnimodular(m, nil, 0)
	require.NoError(t, err)
	require.True(t, res.IsTotallyUnimodular)
	require.Nil(t, res.Violator)
	require.Equal(t, tu.StatusOk, res.Status)
}

func TestTestTotallyUnimodularNilMatrix(t *testing.T) {
	res, err := tu.TestTotallyUnimodular(nil, nil, 0)
	require.Error(t, err)
	require.Equal(t, tu.StatusInvalidInput, res.Status)
}

func TestTestNetworkMatrixOnBuiltTriangle(t *testing.T) {
	g := cmrgraph.New(true)
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	e1 := g.AddEdge(a, b)
	e2 := g.AddEdge(b, c)
	g.AddEdge(a, c)

	built, err := netbuild.BuildMatrix(g, map[cmrgraph.Edge]bool{e1: true, e2: true}, true)
	require.NoError(t, err)

	res, err := tu.TestNetworkMatrix(built.Matrix)
	require.NoError(t, err)
	require.True(t, res.IsNetwork)
	require.NotNil(t, res.Realization)
	require.Equal(t, tu.StatusOk, res.Status)
}
