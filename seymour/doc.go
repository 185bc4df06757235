// Package seymour implements the Seymour decomposition driver (C7, spec.md
// §4.7): a work queue over decomposition nodes that repeatedly tries, in
// order, a 1-sum split, a series-parallel reduction (spreduce), a simple
// 3-separation search (nestedminor), and finally the leaf tests
// (graphic/cographic/R10), converting the popped node into the
// corresponding tagged node and enqueuing any children it produces.
//
// Grounded on flow/dinic.go's explicit work-queue loop (BFS-style slice
// queue, a cooperative cancellation check at the top of every iteration)
// adapted from a level-graph task queue to a decomposition task queue, and
// on src/cmr/seymour_internal.h / src/cmr/decomposition.c for the node tag
// set and the single-threaded, cooperative-timeout execution model spec.md
// §5 describes. Go's garbage collector replaces decomposition.c's manual
// reference counting outright — there is no equivalent of CMR's release
// bookkeeping here, since nothing in this package ever needs it.
//
// Unlike the original, this driver does not reconstruct the full sum
// algebra (generator rows/columns, connecting signs) at decomposition time;
// sumops already implements and tests that reconstruction independently
// (spec.md §8's "Sum composition inverse" property). What this driver does,
// matching §4.7's own description of the work queue, is decide WHICH sum
// type applies and WHERE to split: it partitions the matrix into two
// submatrices along the rows/columns spreduce or nestedminor found and
// recurses on each independently, tagging the parent with the sum type
// the separation's rank structure implies.
package seymour
