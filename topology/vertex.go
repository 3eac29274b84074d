package topology

import "github.com/katalvlaran/delaunay/geom"

// Vertex is a handle wrapping a Point. Two Vertices are equal iff their
// Points are equal component-wise; the Point field is fixed at construction
// because identity (equality/hash) depends on it. A Complex never hands out
// two distinct *Vertex for the same Point — see Complex.VertexFor.
type Vertex struct {
	point geom.Point
}

// newVertex wraps p in a Vertex. Unexported: callers obtain Vertices only
// through a Complex, which deduplicates by Point.
func newVertex(p geom.Point) *Vertex {
	return &Vertex{point: p}
}

// Point returns the Vertex's underlying immutable Point.
func (v *Vertex) Point() geom.Point { return v.point }

// Less implements the lexicographic total order spec.md §3 mandates for
// deterministic iteration only — it is never a structural invariant.
func (v *Vertex) Less(other *Vertex) bool { return v.point.Less(other.point) }

// key returns the stable map key used internally to dedupe and look up
// Vertices by coordinate value.
func (v *Vertex) key() string { return v.point.Hash() }

// String renders the Vertex's Point for diagnostics.
func (v *Vertex) String() string { return v.point.String() }
