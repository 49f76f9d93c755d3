// SPDX-License-Identifier: MIT
//
// constants.go — shared constants for the builder package: canonical method
// names (used as error-context prefixes), fixed vertex IDs, and parameter
// minima for each topology.

package builder

// Canonical constructor names; used to prefix wrapped errors with context.
const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomRegular is the canonical name for the RandomRegular constructor.
	MethodRandomRegular = "RandomRegular"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
)

// FirstVertexID is the identifier of the first vertex in sequential
// topologies under the default ID scheme.
const FirstVertexID = "0"

// CenterVertexID is the fixed identifier of the hub vertex in Star, Wheel,
// and stellated Platonic solids.
const CenterVertexID = "Center"

// MinCycleNodes is the smallest meaningful size for a cycle: fewer than 3
// nodes cannot form a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star: one center plus
// at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel: a 3-cycle rim
// plus the hub.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D grid.
// A 1×1 grid has no edges but is valid.
const MinGridDim = 1

// MinPartitionSize is the smallest allowed partition size in K_{n1,n2}.
const MinPartitionSize = 1

// MinProbability and MaxProbability bound the edge probability p in
// RandomSparse, inclusive on both ends.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
