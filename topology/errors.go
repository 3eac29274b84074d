// errors.go — sentinel error set for the topology package.
//
// Callers MUST use errors.Is to branch on these. Sentinels are never
// wrapped with formatted strings at definition site; context is attached
// with %w at call boundaries that have it (e.g. which vertex, which face).
package topology

import "errors"

var (
	// ErrGeneralPosition is raised when a HalfFacet would have side 0 — the
	// opposite vertex is affinely dependent with the facet's vertices.
	ErrGeneralPosition = errors.New("topology: points not in general position")

	// ErrVertexCount is raised when a Face is built from a vertex count
	// other than dimension+1.
	ErrVertexCount = errors.New("topology: face requires exactly dimension+1 vertices")

	// ErrFaceNotFound is raised when an operation references a Face no
	// longer present in the Complex.
	ErrFaceNotFound = errors.New("topology: face not found")

	// ErrVertexNotFound is raised when an operation references a Vertex no
	// longer present in the Complex.
	ErrVertexNotFound = errors.New("topology: vertex not found")

	// ErrDimensionMismatch is raised when a Point's dimension disagrees
	// with the Complex's established dimension.
	ErrDimensionMismatch = errors.New("topology: point dimension mismatch")

	// ErrNoTwin is raised when an operation that requires a twin (e.g.
	// FacetPop) is given a boundary HalfFacet.
	ErrNoTwin = errors.New("topology: half-facet has no twin")
)
