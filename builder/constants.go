// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// Builder method names, used to prefix errors with the constructor name.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

// Parameter minima and probability bounds.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinSparseNodes   = 1

	probMin = 0.0
	probMax = 1.0
)
