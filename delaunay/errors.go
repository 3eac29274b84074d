// errors.go — sentinel error set for the delaunay package.
package delaunay

import "errors"

var (
	// ErrEmptyInput is raised when NewTriangulation is given zero points.
	ErrEmptyInput = errors.New("delaunay: at least one point is required")

	// ErrEmptyComplex is raised when Locate is attempted before the outer
	// face has been installed — not reachable through NewTriangulation,
	// kept for defensive internal use.
	ErrEmptyComplex = errors.New("delaunay: complex has no faces to locate within")

	// ErrDimensionMismatch is raised when an inserted Point's dimension
	// disagrees with the Triangulation's established dimension.
	ErrDimensionMismatch = errors.New("delaunay: point dimension mismatch")
)
