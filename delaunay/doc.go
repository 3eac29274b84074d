// Package delaunay implements incremental Delaunay triangulation by
// Bowyer-Watson insertion over a topology.Complex: point location via
// visibility walk, cavity expansion/shatter/pop/fill, and twin re-linking
// of the newly created Faces (spec.md §4.5-4.7).
//
// Adapted from lvlath's algorithms package (walker-struct control flow,
// context-checked loop, nil-safe optional hooks) and builder package
// (functional-option constructor config), with the algorithm itself
// re-derived from original_source/pyVor/structures.py's
// DelaunayTriangulation class.
package delaunay
