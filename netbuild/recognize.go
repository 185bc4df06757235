package netbuild

import (
	"github.com/katalvlaran/seymour/camion"
	"github.com/katalvlaran/seymour/tdec"
	"github.com/katalvlaran/seymour/ternary"
)

// TestNetworkMatrix decides whether m is the representation matrix of some
// graph with respect to some spanning forest: its support must be graphic
// (tdec) and its signs must already be a Camion-signed matrix, since the fundamental-cycle orientation BuildMatrix produces is
// always Camion-consistent by construction. On success it returns the
// realising graph via tdec's Realization.
func TestNetworkMatrix(m *ternary.Matrix) (bool, *tdec.Realization, error) {
	graphic, real, err := tdec.TestGraphicMatrix(supportOf(m))
	if err != nil || !graphic {
		return false, nil, err
	}

	_, _, violator, err := camion.Sign(m)
	if err != nil {
		return false, nil, err
	}
	if violator != nil {
		return false, nil, nil
	}

	return true, real, nil
}

// TestConetworkMatrix decides whether m is a conetwork matrix: the
// representation matrix of some graph's dual with respect to a spanning
// forest, i.e. a network matrix once transposed (spec.md's 1-sum dual
// supplement; grounded on network.c's network/conetwork symmetry).
func TestConetworkMatrix(m *ternary.Matrix) (bool, *tdec.Realization, error) {
	return TestNetworkMatrix(m.Transpose())
}

func supportOf(m *ternary.Matrix) *ternary.Matrix {
	dense := m.Dense()
	out := make([][]int8, len(dense))
	for i, row := range dense {
		out[i] = make([]int8, len(row))
		for j, v := range row {
			if v != 0 {
				out[i][j] = 1
			}
		}
	}
	support, _ := ternary.NewFromDense(out)

	return support
}
