package sumops

import "errors"

// ErrStructure reports that a matrix does not have the block shape its
// sum type claims (a cross-block expected to be zero is not, or a
// claimed-rank-1/2 block does not factor the way the sum type requires).
var ErrStructure = errors.New("sumops: separation inconsistent with sum structure")
