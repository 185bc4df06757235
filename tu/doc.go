// Package tu is the thin facade over the rest of this module's
// subpackages, the way the root package here once stood over graph/core,
// graph/matrix and graph/algorithms: it exposes the five entry points
// spec.md §6 names — TestTotallyUnimodular, TestRegular, TestNetworkMatrix,
// TestGraphicMatrix, ComputeCamionSigned — each a short pipeline over
// camion, seymour, tdec and netbuild, plus the Status exit-code enum
// those entry points report alongside their ordinary Go error.
//
// Grounded on src/cmr/tu.c's tuTest (Camion-sign the matrix, then hand the
// now-binary support to the regularity test; a matrix is totally
// unimodular iff both succeed) and src/cmr/regular.c's CMRregularTest
// (binary-only input, straight to the Seymour decomposition).
package tu
