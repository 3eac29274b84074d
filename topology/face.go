package topology

import (
	"sort"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/predicate"
)

// Face is a d-simplex: an unordered set of exactly d+1 distinct Vertices.
// A Face owns a mapping from each Vertex v to the unique HalfFacet of this
// Face that is opposite v (the (d-1)-facet formed by the remaining d
// Vertices). Face equality and hash are defined on the vertex set alone.
type Face struct {
	dimension  int
	vertices   map[string]*Vertex
	halfFacets map[string]*HalfFacet // keyed by the opposite Vertex's key()
}

// NewFace builds the Face's HalfFacet map for the given vertices (exactly
// dimension+1 of them). initial optionally supplies, for some vertices, a
// pre-existing HalfFacet to reuse as the facet opposite that vertex — its
// face/opposite pointers are rewritten to point at this new Face. Every
// other vertex gets a freshly constructed HalfFacet whose side is computed
// via predicate.Orient over the remaining vertices' Points (in Vertex key
// order, as HalfFacet.Points returns them) plus the opposite vertex's
// Point; a zero side raises ErrGeneralPosition
// (spec.md §4.3, §3 invariants).
func NewFace(dimension int, vertices []*Vertex, initial map[*Vertex]*HalfFacet) (*Face, error) {
	if len(vertices) != dimension+1 {
		return nil, ErrVertexCount
	}

	f := &Face{
		dimension:  dimension,
		vertices:   verticesToMap(vertices),
		halfFacets: make(map[string]*HalfFacet, len(vertices)),
	}

	for _, v := range vertices {
		if hf, ok := initial[v]; ok {
			hf.changeFace(v, f)
			f.halfFacets[v.key()] = hf

			continue
		}

		remaining := make([]*Vertex, 0, dimension)
		for _, other := range vertices {
			if other != v {
				remaining = append(remaining, other)
			}
		}
		sort.Slice(remaining, func(i, j int) bool { return remaining[i].key() < remaining[j].key() })

		pts := make([]geom.Point, 0, dimension+1)
		for _, r := range remaining {
			pts = append(pts, r.Point())
		}
		pts = append(pts, v.Point())

		side, err := predicate.Orient(pts...)
		if err != nil {
			return nil, err
		}
		if side == 0 {
			return nil, ErrGeneralPosition
		}

		f.halfFacets[v.key()] = &HalfFacet{
			vertices: verticesToMap(remaining),
			opposite: v,
			face:     f,
			side:     side,
		}
	}

	return f, nil
}

// Dimension returns d.
func (f *Face) Dimension() int { return f.dimension }

// Vertices returns the d+1 Vertices of the Face, order unspecified.
func (f *Face) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(f.vertices))
	for _, v := range f.vertices {
		out = append(out, v)
	}

	return out
}

// Points returns the Points of the Face's Vertices, order unspecified.
func (f *Face) Points() []geom.Point {
	pts := make([]geom.Point, 0, len(f.vertices))
	for _, v := range f.vertices {
		pts = append(pts, v.Point())
	}

	return pts
}

// HalfFacets returns the Face's HalfFacets, order unspecified.
func (f *Face) HalfFacets() []*HalfFacet {
	out := make([]*HalfFacet, 0, len(f.halfFacets))
	for _, hf := range f.halfFacets {
		out = append(out, hf)
	}

	return out
}

// HalfFacetOpposite returns the HalfFacet opposite v within this Face, and
// whether v is actually a vertex of this Face.
func (f *Face) HalfFacetOpposite(v *Vertex) (*HalfFacet, bool) {
	hf, ok := f.halfFacets[v.key()]

	return hf, ok
}

// HasVertex reports whether v is one of this Face's d+1 Vertices.
func (f *Face) HasVertex(v *Vertex) bool {
	_, ok := f.vertices[v.key()]

	return ok
}

// IsFinite reports whether every Point of the Face is finite (weight 1).
func (f *Face) IsFinite() bool {
	for _, v := range f.vertices {
		if !v.Point().IsFinite() {
			return false
		}
	}

	return true
}

// SharesVertex reports whether f and other have any Vertex in common.
func (f *Face) SharesVertex(other *Face) bool {
	for k := range f.vertices {
		if _, ok := other.vertices[k]; ok {
			return true
		}
	}

	return false
}

// key is the Face's structural identity: its vertex set alone.
func (f *Face) key() string { return facetKey(f.vertices) }
