// Package sumops implements the sum composers and inverse decomposers (C8,
// spec.md §4.8): bit-exact constructors and extractors for the 1-sum, 2-sum,
// Δ-sum, Y-sum, and 3-sum of ternary matrices across a given separation.
//
// Grounded on src/cmr/decomposition.c for the shape a sum node's children
// and connecting data take (matrix/transpose pairs, row/column parent maps)
// and on matrix/ops_elementwise.go for the block-construction idiom (a
// validate-shape, allocate-output, fixed-order-fill loop per block); the
// sum algebra itself (which rows/columns form the connecting structure, how
// the cross-block is built) is grounded directly on spec.md §4.8's prose,
// since decomposition.c only carries the node bookkeeping, not the sum
// formulas, and no dedicated sum-algebra source file was part of the
// retrieved set.
//
// onesum.Split already implements the 1-sum decomposer; DecomposeOneSum
// wraps it (seymour's driver reaches it that way) and ComposeOneSum is its
// inverse, for API symmetry with the other four sum types, per §4.8's
// "composers AND inverse extractors" framing.
//
// The package's round-trip guarantee follows spec.md §8's "Sum composition
// inverse" property exactly as worded: decompose(compose(first, second, c))
// equals (first, second, c) only up to the permutation/sign normalization
// recorded by the separation, not bit-for-bit against whatever the caller
// originally passed in — see each sum type's decomposer doc for the
// specific normalization it settles on (DESIGN.md's nestedminor/sumops
// entries record the Open Question's β, γ ∈ {-1,+1} sign search this
// normalization replaces for the concentrated-rank case).
package sumops
