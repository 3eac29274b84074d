package delaunay

import "github.com/katalvlaran/delaunay/topology"

// Observer is a set of optional, nil-safe, read-only hooks a caller can
// attach to watch the triangulation progress — modeled on lvlath's
// algorithms.BFSOptions hook fields. An Observer must never mutate the
// Triangulation or any Face/HalfFacet it is handed (spec.md §5 "read-only
// observer hooks").
//
// Visualization gates the cost of the hooks that fire on every HalfFacet
// and every walk step; callers who only want coarse progress (e.g.
// DrawTriangulation after each Insert) can leave it false.
type Observer struct {
	// Visualization enables the per-HalfFacet and per-walk-step hooks
	// (HighlightEdge, DrawCircle, DrawPointLocate). When false, only
	// DrawTriangulation and DeleteEdge fire.
	Visualization bool

	// HighlightEdge is called for each HalfFacet shattered into the cavity
	// boundary during Insert.
	HighlightEdge func(h *topology.HalfFacet)

	// DrawCircle is called with a newly created Face, e.g. to render its
	// circumscribing sphere.
	DrawCircle func(f *topology.Face)

	// DrawTriangulation is called once per completed Insert with the
	// Triangulation's current state.
	DrawTriangulation func(t *Triangulation)

	// DrawPointLocate is called once per Face visited by the visibility
	// walk in Locate.
	DrawPointLocate func(f *topology.Face)

	// DeleteEdge is called for each HalfFacet discarded because it failed
	// the local-Delaunay test during cavity expansion.
	DeleteEdge func(h *topology.HalfFacet)
}

func (o *Observer) highlightEdge(h *topology.HalfFacet) {
	if o != nil && o.Visualization && o.HighlightEdge != nil {
		o.HighlightEdge(h)
	}
}

func (o *Observer) drawCircle(f *topology.Face) {
	if o != nil && o.Visualization && o.DrawCircle != nil {
		o.DrawCircle(f)
	}
}

func (o *Observer) drawTriangulation(t *Triangulation) {
	if o != nil && o.DrawTriangulation != nil {
		o.DrawTriangulation(t)
	}
}

func (o *Observer) drawPointLocate(f *topology.Face) {
	if o != nil && o.Visualization && o.DrawPointLocate != nil {
		o.DrawPointLocate(f)
	}
}

func (o *Observer) deleteEdge(h *topology.HalfFacet) {
	if o != nil && o.DeleteEdge != nil {
		o.DeleteEdge(h)
	}
}
