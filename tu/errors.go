package tu

import "errors"

// errNilMatrix guards the facade entry points against a nil *ternary.Matrix,
// which every lower package would otherwise fault on at the first NumRows
// call rather than reporting cleanly as invalid input.
var errNilMatrix = errors.New("tu: matrix is nil")
