// Package topology represents the simplicial complex an incremental
// Delaunay triangulation maintains: Vertices, Faces (d-simplices), and
// HalfFacets (oriented (d-1)-faces carrying a side sign and a twin
// pointer).
//
// Adapted from lvlath's core package (Graph/Vertex/Edge, two-mutex
// guard shape, sentinel-error set, functional-option constructor) with the
// domain re-derived from spec.md §3-4.3: Edge/adjacency-list is replaced by
// Face/half-facet-map/twin-links, and every invariant is the triangulation's,
// not a generic graph's.
package topology
