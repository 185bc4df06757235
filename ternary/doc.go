// Package ternary implements the sparse {-1,0,+1} matrix that underlies the
// rest of this module: row-major compressed storage, transpose, submatrix
// extraction, permutation, and the binary/ternary pivot operations used by
// the Seymour driver and the nested-minor sequence.
//
// A Matrix never stores explicit zeros. Within a row, entries are sorted by
// ascending column index. A Matrix is immutable once built; every operation
// that would change entries (BinaryPivot, TernaryPivot, MultiPivot, Permute,
// Filter) returns a
// new Matrix.
package ternary
