package linalg

// Matrix is the abstraction the predicates program against. Dense is the
// only implementation in this package, but keeping the interface separate
// documents the contract (bounds-checked access, deep clone, determinant
// sign) independent of storage layout.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error
	Clone() *Dense
	Det() (float64, error)
	SignDet() (int, error)
}

var _ Matrix = (*Dense)(nil)
