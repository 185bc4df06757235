package seymour

import (
	"github.com/katalvlaran/seymour/tdec"
	"github.com/katalvlaran/seymour/ternary"
)

// Tag classifies a Node by the decomposition step that produced it, per
// spec.md §4.3's "polymorphic decomposition node" enumeration.
type Tag int

const (
	TagUnknown Tag = iota
	TagOneSum
	TagTwoSum
	TagDeltaSum
	TagYSum
	TagThreeSum
	TagPivots
	TagSeriesParallel
	TagGraphic
	TagCographic
	TagPlanar
	TagR10
	TagIrregular
	TagSubmatrix
)

// Flag is a three-valued decision: unknown, yes, or no.
type Flag int8

const (
	FlagUnknown Flag = 0
	FlagYes     Flag = 1
	FlagNo      Flag = -1
)

// Node is one vertex of the decomposition tree. The "common" fields below
// are set by every tag; Realization/CoRealization/Violator are set only by
// the tags that produce them.
type Node struct {
	Matrix   *ternary.Matrix
	Tag      Tag
	Children []*Node

	Regularity    Flag
	Graphicness   Flag
	Cographicness Flag

	TestedSeriesParallel         bool
	TestedTwoConnected           bool
	TestedSimpleThreeSeparations bool
	TestedR10                    bool

	// WheelMinor records the cycle spreduce's residual classifier found
	// when the reduction neither fully collapsed nor found a
	// 2-separation; it stays on the node through the 3-separation search
	// as a certificate that the node is at least 3-connected.
	WheelMinor *ternary.Submatrix

	Violator      *ternary.Submatrix
	Realization   *tdec.Realization
	CoRealization *tdec.Realization
}

// NewNode starts a fresh, untagged decomposition node for m.
func NewNode(m *ternary.Matrix) *Node {
	return &Node{Matrix: m}
}

// Stats accumulates counters and the overall verdict over one Decompose
// call. Regularity starts FlagYes and is set to FlagNo the moment any node
// in the tree is found irregular — spec.md §4.7 step 6's "the queue's
// regularity verdict becomes negative" is a property of the whole run, not
// of any single composite (1-sum/2-sum/.../pivot) node, which is why it
// lives here rather than being back-propagated onto every ancestor Node.
type Stats struct {
	NodesProcessed int
	Pivots         int
	Regularity     Flag
}
