// Package spreduce implements the series-parallel reducer (C5, spec.md
// §4.5): repeatedly strip zero rows/columns, unit rows/columns, and rows or
// columns that duplicate another up to sign, until none remain. It reports
// the reduction sequence, the residual matrix, and which of the three
// terminal outcomes (fully series-parallel, a wheel minor, or a
// 2-separation) the residual falls into.
//
// Grounded on src/cmr/regularity_series_parallel.c for the outcome shape
// (reductions / residual / wheel-or-separation) and spec.md §4.5 for the
// elimination rule itself, since the original's row/column elimination
// routine (series_parallel.c) was not part of the retrieved source set.
// Rows and columns are tracked with Go maps rather than src/cmr's explicit
// doubly-linked list plus rolling hash table — a map already is a
// hashtable, and a stdlib map of the normalized support gives duplicate
// detection without hand-rolling a rolling hash, so nothing from the pack
// was dropped in favor of the standard library here.
package spreduce
