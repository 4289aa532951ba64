// Package builder defines shared constants used by tree constructors,
// ensuring consistent minima and error prefixes.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodBuildTree = "BuildTree"
	methodComplete  = "Complete"
	methodPerfect   = "Perfect"
	methodPath      = "Path"
	methodRandom    = "Random"
	methodParse     = "Parse"
)

//-----------------------------------------------------------------------------
// Minimum / maximum sizes
//-----------------------------------------------------------------------------

const (
	// minNodes is the smallest tree any shape constructor produces.
	minNodes = 1

	// maxPerfectDepth caps Perfect so that 2^depth-1 stays far below
	// practical memory limits (≈16M nodes).
	maxPerfectDepth = 24
)

// Side selects where Path hangs each successive node.
type Side int

const (
	// SideLeft makes every node the left child of its predecessor.
	SideLeft Side = iota
	// SideRight makes every node the right child of its predecessor.
	SideRight
	// SideZigzag alternates: left from even indices, right from odd ones.
	SideZigzag
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideZigzag:
		return "zigzag"
	default:
		return "unknown"
	}
}
