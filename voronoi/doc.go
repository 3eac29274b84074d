// Package voronoi extracts the Voronoi diagram dual to a delaunay.Triangulation:
// one vertex per finite Face (its circumcenter) and one edge per pair of
// finite Faces sharing a HalfFacet, with unbounded Voronoi edges
// represented as a finite origin plus a direction at infinity (spec.md
// §4.8). Grounded on original_source/pyVor/structures.py's Voronoi class.
package voronoi
