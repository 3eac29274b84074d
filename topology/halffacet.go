package topology

import (
	"sort"

	"github.com/katalvlaran/delaunay/geom"
)

// HalfFacet is an oriented (d-1)-facet: the set of d Vertices forming the
// facet, the opposite Vertex of its owning Face, a back-pointer to that
// Face, a non-zero side sign, and an optional twin HalfFacet.
//
// Invariants (spec.md §3):
//   - side = orient(facet_vertices..., opposite_vertex); side == 0 is
//     rejected at construction (ErrGeneralPosition).
//   - if h.twin == h' then h'.twin == h, their vertex sets are equal, and
//     their sides are opposite in sign.
//   - a HalfFacet without a twin is a boundary of the complex; in steady
//     state the outer face's directional vertices make every HalfFacet
//     have a twin.
type HalfFacet struct {
	vertices map[string]*Vertex // the d vertices of the facet, keyed by Vertex.key()
	opposite *Vertex             // the vertex of the owning Face this facet sits across from
	face     *Face               // owning Face
	side     int                 // orient(facet_vertices..., opposite); never 0
	twin     *HalfFacet          // non-owning cross-link to the adjacent Face's matching facet
}

// Vertices returns the d Vertices of the facet, ordered by Vertex key —
// the same order NewFace uses when it computes side.
func (h *HalfFacet) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(h.vertices))
	for _, v := range h.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key() < out[j].key() })

	return out
}

// Points returns the Points of the facet's Vertices, in Vertices' order.
func (h *HalfFacet) Points() []geom.Point {
	pts := make([]geom.Point, 0, len(h.vertices))
	for _, v := range h.Vertices() {
		pts = append(pts, v.Point())
	}

	return pts
}

// Opposite returns the Vertex of the owning Face that this facet sits
// opposite to.
func (h *HalfFacet) Opposite() *Vertex { return h.opposite }

// Face returns the owning Face.
func (h *HalfFacet) Face() *Face { return h.face }

// Side returns the orientation sign computed at construction.
func (h *HalfFacet) Side() int { return h.side }

// Twin returns the adjacent Face's matching HalfFacet, or nil at the
// boundary.
func (h *HalfFacet) Twin() *HalfFacet { return h.twin }

// IsInfinite reports whether any Point of the facet is a direction at
// infinity (weight 0).
func (h *HalfFacet) IsInfinite() bool {
	for _, v := range h.vertices {
		if !v.Point().IsFinite() {
			return true
		}
	}

	return false
}

// key is the facet's structural identity: its vertex set alone.
func (h *HalfFacet) key() string { return facetKey(h.vertices) }

// changeFace rewrites this HalfFacet's owning Face and opposite Vertex in
// place, used when a pre-existing HalfFacet is reused inside a freshly
// constructed Face (spec.md §4.3 "reuse the supplied HalfFacet").
func (h *HalfFacet) changeFace(opposite *Vertex, face *Face) {
	h.opposite = opposite
	h.face = face
}

// LinkTwins sets a and b as each other's twin. Both HalfFacets must share
// the same vertex set and opposite sides, per the twin-relation invariant;
// callers (the insertion algorithm) are responsible for that precondition.
func LinkTwins(a, b *HalfFacet) {
	a.twin = b
	b.twin = a
}
