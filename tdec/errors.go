package tdec

import "errors"

// ErrNotBinary is returned when TestGraphicMatrix is given a matrix with an entry
// outside {0,1}; the graphicness test is only defined on {0,1} matrices
// (spec.md §4.4).
var ErrNotBinary = errors.New("tdec: matrix must be binary")

// ErrSearchExhausted is returned when the bounded realisation search hits its
// node-visit cap without reaching a verdict. It signals "try a smaller
// instance", not "not graphic" — see DESIGN.md's Open Question entry for
// tdec's rigid-member simplification.
var ErrSearchExhausted = errors.New("tdec: realisation search exceeded its bound")
