// Package nestedminor implements the simple 3-separation search (C6,
// spec.md §4.6): given a matrix that the series-parallel reducer left
// irreducible, look for a 3-separation that is cheap to recognize directly
// from row/column nonzero counts, without the general-purpose 3-connectivity
// machinery.
//
// Grounded on src/cmr/regularity_simple_three_separations.c, which checks
// two situations in turn: an entry whose row and column both have exactly
// two nonzeros (a distributed-rank 3-separation on that 2x2 block), and a
// row with two nonzeros where deleting one of its entries makes its column
// match another column's support exactly up to sign (a concentrated-rank
// 3-separation on that row and the three columns involved). The
// distributed-rank situation additionally reports a 2x2 bad-determinant
// violator when the candidate block is not sign-consistent, mirroring
// spreduce's ternary short-circuit; the concentrated-rank situation skips
// candidates whose signs disagree and reports no violator.
//
// The original computes hash values per row/column to look up "almost
// duplicate" columns in O(1) amortized via a custom open-addressed
// hashtable (hashtable.c); this package uses a plain Go map keyed on the
// normalized support, the same substitution spreduce makes and for the same
// reason — nothing in the retrieved pack offers a rolling hash table, and a
// map already gives the lookup the original's hashtable exists to provide.
package nestedminor
