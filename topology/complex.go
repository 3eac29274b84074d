package topology

import (
	"sync"

	"github.com/katalvlaran/delaunay/geom"
)

// Complex holds the current triangulation state (spec.md §3):
//   - faces: the set of Faces currently in the complex.
//   - vertices: the set of Vertices currently referenced by any Face.
//   - point history: an ordered record of successfully inserted points
//     (duplicates skipped).
//   - dimension: d, derived from the first Point's length minus one,
//     constant after construction.
//
// muVert guards the vertex catalog; muFace guards the face set. As in the
// lvlath's core.Graph, these locks exist so a read-only observer hook can
// safely inspect the Complex from another goroutine — the engine itself
// remains single-threaded and synchronous (spec.md §5): no method here
// blocks or suspends.
type Complex struct {
	muVert sync.RWMutex
	muFace sync.RWMutex

	dimension int
	vertices  map[string]*Vertex // keyed by Vertex.key()
	faces     map[string]*Face   // keyed by Face.key()

	pointHistory []geom.Point
}

// NewComplex creates an empty Complex of the given dimension.
func NewComplex(dimension int) *Complex {
	return &Complex{
		dimension: dimension,
		vertices:  make(map[string]*Vertex),
		faces:     make(map[string]*Face),
	}
}

// Dimension returns d.
func (c *Complex) Dimension() int { return c.dimension }

// VertexFor returns the Complex's canonical *Vertex for p, creating and
// registering one if this is the first time p is seen. The Complex never
// hands out two distinct *Vertex values for the same Point.
func (c *Complex) VertexFor(p geom.Point) (*Vertex, error) {
	if p.Dimension() != c.dimension {
		return nil, ErrDimensionMismatch
	}

	key := p.Hash()

	c.muVert.Lock()
	defer c.muVert.Unlock()

	if v, ok := c.vertices[key]; ok {
		return v, nil
	}
	v := newVertex(p)
	c.vertices[key] = v

	return v, nil
}

// HasVertex reports whether p has already been registered as a Vertex.
func (c *Complex) HasVertex(p geom.Point) bool {
	c.muVert.RLock()
	defer c.muVert.RUnlock()
	_, ok := c.vertices[p.Hash()]

	return ok
}

// VertexCount returns the number of distinct Vertices ever registered.
func (c *Complex) VertexCount() int {
	c.muVert.RLock()
	defer c.muVert.RUnlock()

	return len(c.vertices)
}

// HasInserted reports whether p appears in the point history — the basis
// of insert's idempotence (spec.md §4.5: "If p has already been inserted
// ... return without change").
func (c *Complex) HasInserted(p geom.Point) bool {
	c.muVert.RLock()
	defer c.muVert.RUnlock()
	for _, seen := range c.pointHistory {
		if seen.Equal(p) {
			return true
		}
	}

	return false
}

// RecordInsertion appends p to the point history.
func (c *Complex) RecordInsertion(p geom.Point) {
	c.muVert.Lock()
	defer c.muVert.Unlock()
	c.pointHistory = append(c.pointHistory, p)
}

// AddFace registers f in the Complex's face set.
func (c *Complex) AddFace(f *Face) {
	c.muFace.Lock()
	defer c.muFace.Unlock()
	c.faces[f.key()] = f
}

// HasFace reports whether f (by vertex-set identity) is still live.
func (c *Complex) HasFace(f *Face) bool {
	c.muFace.RLock()
	defer c.muFace.RUnlock()
	_, ok := c.faces[f.key()]

	return ok
}

// FaceCount returns the number of live Faces.
func (c *Complex) FaceCount() int {
	c.muFace.RLock()
	defer c.muFace.RUnlock()

	return len(c.faces)
}

// ShatterFace removes f from the Complex's face set and returns its
// HalfFacets for further processing by the builder (spec.md §4.3 "Face
// shatter"). f itself becomes garbage once its HalfFacets are re-consumed.
func (c *Complex) ShatterFace(f *Face) []*HalfFacet {
	c.muFace.Lock()
	delete(c.faces, f.key())
	c.muFace.Unlock()

	return f.HalfFacets()
}

// FacetPop punctures the complex through h: if h's twin lies in a still-live
// Face, that Face is shattered and its HalfFacets are returned excluding
// h.twin itself (spec.md §4.3 "Facet pop"). Returns ErrNoTwin if h is a
// boundary facet, or (nil, false, nil) if h.twin's Face is no longer live
// (the §4.5 step-4 use-after-free guard).
func (c *Complex) FacetPop(h *HalfFacet) (facets []*HalfFacet, popped bool, err error) {
	if h.twin == nil {
		return nil, false, ErrNoTwin
	}
	twinFace := h.twin.face
	if !c.HasFace(twinFace) {
		return nil, false, nil
	}

	all := c.ShatterFace(twinFace)
	out := make([]*HalfFacet, 0, len(all)-1)
	for _, hf := range all {
		if hf != h.twin {
			out = append(out, hf)
		}
	}

	return out, true, nil
}

// ArbitraryFace returns some live Face, used to seed point location. It
// returns false if the Complex has no Faces (only possible before the
// outer face is installed).
func (c *Complex) ArbitraryFace() (*Face, bool) {
	c.muFace.RLock()
	defer c.muFace.RUnlock()
	for _, f := range c.faces {
		return f, true
	}

	return nil, false
}

// Faces returns all live Faces, order unspecified. Use SortedFaces for a
// deterministic order.
func (c *Complex) Faces() []*Face {
	c.muFace.RLock()
	defer c.muFace.RUnlock()
	out := make([]*Face, 0, len(c.faces))
	for _, f := range c.faces {
		out = append(out, f)
	}

	return out
}

// Vertices returns all registered Vertices, order unspecified. Use
// SortedVertices for a deterministic order.
func (c *Complex) Vertices() []*Vertex {
	c.muVert.RLock()
	defer c.muVert.RUnlock()
	out := make([]*Vertex, 0, len(c.vertices))
	for _, v := range c.vertices {
		out = append(out, v)
	}

	return out
}

// PointHistory returns a copy of the ordered record of successfully
// inserted points.
func (c *Complex) PointHistory() []geom.Point {
	c.muVert.RLock()
	defer c.muVert.RUnlock()

	return append([]geom.Point(nil), c.pointHistory...)
}
