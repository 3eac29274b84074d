// Package linalg provides the fixed-width vector and square-matrix kernel
// that the geometric predicates are built on.
//
// What & Why:
//
//	Orient and InSphere reduce to the sign of a determinant. This package
//	gives them a uniform, bounds-checked Matrix abstraction backed by a
//	flat row-major slice, plus a SignDet operation computed by
//	division-free cofactor (Laplace) expansion, so that exactly degenerate
//	inputs give an exact zero. Solve (used for circumcenters) is the only
//	operation delegated to gonum.org/v1/gonum/mat.
//
// Complexity:
//
//	At/Set run in O(1). Det/SignDet run in O(n!) via cofactor expansion.
package linalg
