// Package cmr is the overview package for this module: a decision
// procedure for total unimodularity, GF(2) regularity, and graphicness of
// {-1,0,1} and {0,1} matrices, built around Seymour's decomposition
// theorem for regular matroids.
//
// There is no code here — every operation lives in a subpackage, the way
// lvlath/graph once stood over graph/core, graph/matrix and
// graph/algorithms:
//
//	ternary/    — {-1,0,1} matrix storage, submatrix views, pivoting
//	camion/     — Camion sign testing and re-signing
//	spreduce/   — series-parallel reduction of a ternary matrix
//	nestedminor/— simple 3-separation search over an SP-irreducible matrix
//	sumops/     — 1-sum/2-sum/Δ-sum/Y-sum/3-sum composition and splitting
//	tdec/       — t-decomposition graphicness/cographicness recognition
//	netbuild/   — network matrix construction and recognition from a graph
//	cmrgraph/   — the integer-handle graph type netbuild and tdec share
//	dijkstrabasis/ — shortest-path spanning tree used by netbuild
//	unionfind/  — disjoint-set forest used by tdec's realisation search
//	onesum/     — 1-sum block splitting, used by camion and sumops
//	seymour/    — the decomposition tree and its driver loop
//	tu/         — the facade: TestTotallyUnimodular, TestRegular,
//	              TestNetworkMatrix, TestGraphicMatrix, ComputeCamionSigned
//
// Start at tu for the five entry points; everything else is the machinery
// behind them.
package cmr
