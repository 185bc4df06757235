package ternary

import "errors"

// Sentinel errors for the ternary package. Check with errors.Is.
//
// Priority when more than one condition applies: shape/index first, then
// dimension mismatches, then value-domain violations (non-ternary entries),
// then structural violations raised mid-algorithm (bad pivot overflow).
var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("ternary: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("ternary: index out of range")

	// ErrUnsortedIndices indicates submatrix or triplet indices were not
	// strictly increasing.
	ErrUnsortedIndices = errors.New("ternary: indices must be strictly increasing")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("ternary: dimension mismatch")

	// ErrNotTernary indicates a value outside {-1,0,1} was supplied where a
	// ternary matrix is required.
	ErrNotTernary = errors.New("ternary: entry outside {-1,0,1}")

	// ErrNotBinary indicates a value outside {0,1} was supplied where a
	// binary (support-only) matrix is required.
	ErrNotBinary = errors.New("ternary: entry outside {0,1}")

	// ErrPivotZero indicates a pivot was requested on a zero entry.
	ErrPivotZero = errors.New("ternary: pivot entry is zero")

	// ErrBadEntry indicates a ternary pivot produced an entry outside
	// {-1,0,1}; the caller receives the 2x2 violator submatrix.
	ErrBadEntry = errors.New("ternary: pivot produced a non-ternary entry")

	// ErrNonSquare indicates a square matrix was required.
	ErrNonSquare = errors.New("ternary: matrix is not square")

	// ErrOverflow indicates a determinant or path-sum accumulator exceeded
	// its statically bounded range (see spec.md §9).
	ErrOverflow = errors.New("ternary: integer overflow")
)
