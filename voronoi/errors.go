// errors.go — sentinel error set for the voronoi package.
package voronoi

import "errors"

var (
	// ErrWrongPointCount is raised when Circumcenter is given a point set
	// whose size does not equal dimension+1.
	ErrWrongPointCount = errors.New("voronoi: circumcenter requires exactly dimension+1 points")

	// ErrSingularMatrix is raised when the circumcenter linear system has
	// no unique solution — a degenerate Face (spec.md §7).
	ErrSingularMatrix = errors.New("voronoi: degenerate face has no circumcenter")
)
