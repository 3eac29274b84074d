package geom

import (
	"fmt"
	"math"
	"strings"
)

// Point is an immutable (d+1)-tuple of real numbers (x1,...,xd, w) in
// extended homogeneous coordinates. The last coordinate, Weight, is 1 for a
// finite point and 0 for a direction at infinity. Callers must never mutate
// the slice returned by Raw(); Point's equality and hashing depend on its
// coordinate values staying fixed for the lifetime of the value.
type Point struct {
	coords []float64 // length d+1; coords[len-1] is the homogeneous weight
}

// NewPoint builds a Point from a raw (d+1)-tuple whose last element is the
// homogeneous weight (0 or 1). The slice is copied, so the caller's backing
// array may be reused afterwards.
func NewPoint(coords ...float64) (Point, error) {
	if len(coords) == 0 {
		return Point{}, ErrEmptyPoint
	}
	cp := make([]float64, len(coords))
	copy(cp, coords)

	return Point{coords: cp}, nil
}

// NewFinite builds a finite Point (weight=1) from d Euclidean coordinates.
func NewFinite(euclidean ...float64) Point {
	coords := append(append([]float64(nil), euclidean...), 1)

	return Point{coords: coords}
}

// NewDirection builds a Point at infinity (weight=0) in the given direction.
func NewDirection(direction ...float64) Point {
	coords := append(append([]float64(nil), direction...), 0)

	return Point{coords: coords}
}

// Lift appends one more homogeneous coordinate to p, typically used by the
// all-infinite orientation fallback and by in-sphere's paraboloid lift.
// The returned Point has len(p.coords)+1 coordinates, so its Dimension() is
// one more than p's.
func (p Point) Lift(extra float64) Point {
	coords := make([]float64, len(p.coords)+1)
	copy(coords, p.coords)
	coords[len(coords)-1] = extra

	return Point{coords: coords}
}

// Scale returns a new Point with every coordinate multiplied by k (weight
// included). Used by in-sphere's K-scaling "finitize" convention before the
// +1 tail is re-appended by the caller.
func (p Point) Scale(k float64) Point {
	coords := make([]float64, len(p.coords))
	for i, v := range p.coords {
		coords[i] = v * k
	}

	return Point{coords: coords}
}

// WithTailAdded returns a copy of p with delta added to its last coordinate.
// Used by in_sphere to turn a scaled direction (...,0) into a far-but-finite
// point (...,1).
func (p Point) WithTailAdded(delta float64) Point {
	coords := append([]float64(nil), p.coords...)
	coords[len(coords)-1] += delta

	return Point{coords: coords}
}

// Raw returns the full (d+1)-tuple, last element is the homogeneous weight.
// Callers must treat the returned slice as read-only.
func (p Point) Raw() []float64 { return p.coords }

// Dimension returns d, the number of non-homogeneous coordinates.
func (p Point) Dimension() int { return len(p.coords) - 1 }

// Weight returns the homogeneous coordinate: 1 for finite points, 0 for
// directions at infinity.
func (p Point) Weight() float64 { return p.coords[len(p.coords)-1] }

// IsFinite reports whether p represents a finite Euclidean point.
func (p Point) IsFinite() bool { return p.Weight() != 0 }

// NonHomogeneous returns the Euclidean prefix (x1,...,xd), dropping the
// trailing homogeneous weight.
func (p Point) NonHomogeneous() []float64 {
	out := make([]float64, len(p.coords)-1)
	copy(out, p.coords[:len(p.coords)-1])

	return out
}

// NormSquared returns the squared Euclidean norm of the non-homogeneous
// prefix, the quantity in_sphere lifts onto the paraboloid.
func (p Point) NormSquared() float64 {
	var sum float64
	for _, v := range p.coords[:len(p.coords)-1] {
		sum += v * v
	}

	return sum
}

// Equal reports whether p and q agree component-wise. Vertex equality
// (package topology) delegates to this.
func (p Point) Equal(q Point) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}
	for i, v := range p.coords {
		if v != q.coords[i] {
			return false
		}
	}

	return true
}

// Less implements the lexicographic total order spec.md §3 mandates for
// deterministic iteration only (never a structural invariant).
func (p Point) Less(q Point) bool {
	n := len(p.coords)
	if len(q.coords) < n {
		n = len(q.coords)
	}
	for i := 0; i < n; i++ {
		if p.coords[i] != q.coords[i] {
			return p.coords[i] < q.coords[i]
		}
	}

	return len(p.coords) < len(q.coords)
}

// String renders p for diagnostics and observer hooks.
func (p Point) String() string {
	parts := make([]string, len(p.coords))
	for i, v := range p.coords {
		parts[i] = fmt.Sprintf("%g", v)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// Hash returns a stable string key for use as a map key, since []float64
// cannot itself be a map key. Used by topology.Vertex for identity.
func (p Point) Hash() string {
	var b strings.Builder
	for _, v := range p.coords {
		if math.Signbit(v) && v == 0 {
			v = 0 // normalize -0 to 0 so equal points hash identically
		}
		fmt.Fprintf(&b, "%.17g|", v)
	}

	return b.String()
}
