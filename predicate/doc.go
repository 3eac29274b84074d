// Package predicate implements the two geometric tests the engine is built
// on: Orient (orientation of d+1 points) and InSphere (point-in-circumball
// test). Both are defined over geom.Point's extended homogeneous
// coordinates and reduce to the sign of a determinant computed through
// package linalg.
//
// Grounded on original_source/pyVor/predicates.py (ccw, incircle).
package predicate
