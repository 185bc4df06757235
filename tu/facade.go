package tu

import (
	"time"

	"github.com/katalvlaran/seymour/camion"
	"github.com/katalvlaran/seymour/netbuild"
	"github.com/katalvlaran/seymour/seymour"
	"github.com/katalvlaran/seymour/tdec"
	"github.com/katalvlaran/seymour/ternary"
)

// TUResult is the outcome of TestTotallyUnimodular.
type TUResult struct {
	Status              Status
	IsTotallyUnimodular bool
	Root                *seymour.Node
	Stats               *seymour.Stats
	Violator            *ternary.Submatrix
}

// TestTotallyUnimodular decides total unimodularity of a ternary matrix
// (spec.md §6): m is TU iff its signs already are a Camion-consistent
// signing AND its binary support is regular. Matches
// src/cmr/tu.c's tuTest: Camion-sign first, run the Seymour decomposition
// on the support only if signing succeeded.
func TestTotallyUnimodular(m *ternary.Matrix, params *seymour.Params, timeLimit time.Duration) (*TUResult, error) {
	if m == nil {
		return &TUResult{Status: StatusInvalidInput}, errNilMatrix
	}

	signed, _, violator, err := camion.Sign(m)
	if err != nil {
		return &TUResult{Status: classifyStatus(err)}, err
	}
	if violator != nil {
		return &TUResult{IsTotallyUnimodular: false, Violator: violator}, nil
	}

	if params == nil {
		params = seymour.DefaultParams()
	}
	p := *params
	p.TimeLimit = timeLimit

	root := seymour.NewNode(binarySupport(signed))
	stats, err := seymour.Decompose(root, &p)
	if err != nil {
		return &TUResult{Status: classifyStatus(err), Root: root, Stats: stats}, err
	}

	return &TUResult{
		IsTotallyUnimodular: stats.Regularity == seymour.FlagYes,
		Root:                root,
		Stats:               stats,
	}, nil
}

// RegularResult is the outcome of TestRegular.
type RegularResult struct {
	Status    Status
	IsRegular bool
	Root      *seymour.Node
	Stats     *seymour.Stats
}

// TestRegular decides GF(2)-regularity of a binary matrix (spec.md §6) by
// running the Seymour decomposition directly, with no Camion step — matches
// src/cmr/regular.c's CMRregularTest, which rejects non-binary input
// up front rather than delegating to camion at all.
func TestRegular(m *ternary.Matrix, params *seymour.Params, timeLimit time.Duration) (*RegularResult, error) {
	if m == nil {
		return &RegularResult{Status: StatusInvalidInput}, errNilMatrix
	}
	if !m.IsBinary() {
		return &RegularResult{Status: StatusInvalidInput}, ternary.ErrNotBinary
	}

	if params == nil {
		params = seymour.DefaultParams()
	}
	p := *params
	p.TimeLimit = timeLimit

	root := seymour.NewNode(m)
	stats, err := seymour.Decompose(root, &p)
	if err != nil {
		return &RegularResult{Status: classifyStatus(err), Root: root, Stats: stats}, err
	}

	return &RegularResult{
		IsRegular: stats.Regularity == seymour.FlagYes,
		Root:      root,
		Stats:     stats,
	}, nil
}

// NetworkResult is the outcome of TestNetworkMatrix.
type NetworkResult struct {
	Status      Status
	IsNetwork   bool
	Realization *tdec.Realization
}

// TestNetworkMatrix decides whether m is a network matrix for some graph
// and spanning forest (spec.md §6), delegating to netbuild's recognizer.
func TestNetworkMatrix(m *ternary.Matrix) (*NetworkResult, error) {
	if m == nil {
		return &NetworkResult{Status: StatusInvalidInput}, errNilMatrix
	}

	isNetwork, real, err := netbuild.TestNetworkMatrix(m)
	if err != nil {
		return &NetworkResult{Status: classifyStatus(err)}, err
	}

	return &NetworkResult{IsNetwork: isNetwork, Realization: real}, nil
}

// GraphicResult is the outcome of TestGraphicMatrix.
type GraphicResult struct {
	Status      Status
	IsGraphic   bool
	Realization *tdec.Realization
}

// TestGraphicMatrix decides whether a binary matrix is a graph's incidence
// matrix (spec.md §6), delegating directly to tdec's t-decomposition
// engine.
func TestGraphicMatrix(m *ternary.Matrix) (*GraphicResult, error) {
	if m == nil {
		return &GraphicResult{Status: StatusInvalidInput}, errNilMatrix
	}

	ok, real, err := tdec.TestGraphicMatrix(m)
	if err != nil {
		return &GraphicResult{Status: classifyStatus(err)}, err
	}

	return &GraphicResult{IsGraphic: ok, Realization: real}, nil
}

// CamionResult is the outcome of ComputeCamionSigned.
type CamionResult struct {
	Status    Status
	Signed    *ternary.Matrix
	WasSigned bool
	Violator  *ternary.Submatrix
}

// ComputeCamionSigned flips m's signs to a Camion-consistent signing of its
// support, if one exists (spec.md §6). When m was not already signed,
// Violator names the submatrix of m from the first inconsistent cycle found.
func ComputeCamionSigned(m *ternary.Matrix) (*CamionResult, error) {
	if m == nil {
		return &CamionResult{Status: StatusInvalidInput}, errNilMatrix
	}

	signed, wasSigned, violator, err := camion.Sign(m)
	if err != nil {
		return &CamionResult{Status: classifyStatus(err)}, err
	}

	return &CamionResult{Signed: signed, WasSigned: wasSigned, Violator: violator}, nil
}

// binarySupport replaces every nonzero entry of m with 1, dropping sign —
// TestTotallyUnimodular needs the signed matrix's support, not its signs,
// once Camion-signing has certified those signs are TU-consistent.
func binarySupport(m *ternary.Matrix) *ternary.Matrix {
	dense := m.Dense()
	grid := make([][]int8, len(dense))
	for i, row := range dense {
		grid[i] = make([]int8, len(row))
		for j, v := range row {
			if v != 0 {
				grid[i][j] = 1
			}
		}
	}
	out, _ := ternary.NewFromDense(grid)

	return out
}
