// Package tdec implements the t-decomposition graphicness engine (C4,
// spec.md §4.4): an incremental structure that tests whether a {0,1} matrix
// is the vertex-edge incidence-style (network) matrix of some graph with
// respect to a spanning forest, and if so constructs the realising graph.
//
// Member/node/edge pools. The spec's forest-of-members model (parallel,
// series, rigid members linked by marker-edge pairs, maintained with
// union-find, see spec.md §3 "t-decomposition") is the right incremental
// data structure for a near-linear-time implementation; this package has no
// member pools. It resolves every case (series, parallel and rigid alike)
// with one constructive search rather than the full member-split case table
// of src/cmr/graphic.c, and returns the realising graph as a Realization —
// see DESIGN.md's Open Question entry for tdec. The search is exhaustive,
// exponential in the worst case rather than near-linear, and capped: when
// the cap is hit it returns ErrSearchExhausted instead of a verdict.
package tdec
