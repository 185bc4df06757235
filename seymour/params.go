package seymour

import "time"

// DecomposeStrategy is a bitfield selecting how the driver resolves a
// 3-separation once one is found: which sum type (or plain pivot) to use
// for the distributed-rank case, and similarly for the concentrated-rank
// case (spec.md §4.7's decomposeStrategy option).
type DecomposeStrategy uint8

const (
	DistributedDeltaSum DecomposeStrategy = 1 << iota
	DistributedYSum
	DistributedPivot
	ConcentratedThreeSum
	ConcentratedPivot
)

// Params is the driver's parameter bag (spec.md §4.7, §6's SeymourParams).
type Params struct {
	DirectGraphicness    bool
	PlanarityCheck       bool
	SeriesParallel       bool
	StopWhenIrregular    bool
	StopWhenNongraphic   bool
	StopWhenNoncographic bool
	DecomposeStrategy    DecomposeStrategy
	// TimeLimit, if positive, bounds wall-clock time spent in Decompose;
	// the cooperative check happens once per queue pop. Zero means no
	// limit.
	TimeLimit time.Duration
}

// DefaultParams matches spec.md §6's stated defaults.
func DefaultParams() *Params {
	return &Params{
		DirectGraphicness: true,
		SeriesParallel:    true,
		StopWhenIrregular: true,
		DecomposeStrategy: ConcentratedThreeSum | DistributedYSum,
	}
}
