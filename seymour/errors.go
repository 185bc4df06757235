package seymour

import "errors"

var (
	// ErrTimeout is returned by Decompose when the cooperative time check
	// finds the deadline has passed (spec.md §5, §7's Timeout status).
	ErrTimeout = errors.New("seymour: time limit exceeded")
	// ErrStructure is returned when a found separation carries no usable
	// pivot candidate for the DecomposeStrategy's pivot fallback.
	ErrStructure = errors.New("seymour: separation has no pivotable entry")
)
