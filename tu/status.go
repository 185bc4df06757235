package tu

import (
	"errors"

	"github.com/katalvlaran/seymour/seymour"
	"github.com/katalvlaran/seymour/sumops"
	"github.com/katalvlaran/seymour/tdec"
	"github.com/katalvlaran/seymour/ternary"
)

// Status is the public exit code spec.md §6 names: callers that want a
// closed enum (for logging, metrics, or a C-style switch) read this field
// instead of inspecting the accompanying error with errors.Is themselves.
// The error is still returned alongside it — Status is a classification of
// that error, not a replacement for it.
type Status int

const (
	StatusOk Status = iota
	StatusOutOfMemory
	StatusInvalidInput
	StatusStructureError
	StatusOverflow
	StatusTimeout
	StatusNotImplemented
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusOutOfMemory:
		return "OutOfMemory"
	case StatusInvalidInput:
		return "InvalidInput"
	case StatusStructureError:
		return "StructureError"
	case StatusOverflow:
		return "Overflow"
	case StatusTimeout:
		return "Timeout"
	case StatusNotImplemented:
		return "NotImplemented"
	default:
		return "Unknown"
	}
}

// classifyStatus maps a lower-package sentinel error to the Status enum.
// Errors with no known classification (a genuine bug, or a future package
// this switch hasn't been taught about yet) fall back to StructureError
// rather than silently reporting Ok.
func classifyStatus(err error) Status {
	if err == nil {
		return StatusOk
	}

	switch {
	case errors.Is(err, seymour.ErrTimeout):
		return StatusTimeout
	case errors.Is(err, ternary.ErrOverflow):
		return StatusOverflow
	case errors.Is(err, ternary.ErrBadShape),
		errors.Is(err, ternary.ErrOutOfRange),
		errors.Is(err, ternary.ErrUnsortedIndices),
		errors.Is(err, ternary.ErrDimensionMismatch),
		errors.Is(err, ternary.ErrNotTernary),
		errors.Is(err, ternary.ErrNotBinary),
		errors.Is(err, ternary.ErrNonSquare),
		errors.Is(err, tdec.ErrNotBinary),
		errors.Is(err, errNilMatrix):
		return StatusInvalidInput
	case errors.Is(err, seymour.ErrStructure),
		errors.Is(err, sumops.ErrStructure),
		errors.Is(err, tdec.ErrSearchExhausted):
		return StatusStructureError
	default:
		return StatusStructureError
	}
}
