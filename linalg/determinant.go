package linalg

// Det returns the determinant of m as a real number.
//
// Implementation: cofactor (Laplace) expansion along the first row. This is
// exact (no floating-point division) for inputs whose entries are exactly
// representable, which matters here: the predicates rely on degenerate
// configurations producing an *exact* zero determinant rather than a
// near-zero floating-point residue, so that GeneralPositionError fires
// reliably on cocircular/coplanar test inputs built from small integers.
// Complexity: O(n!) — acceptable because the predicate matrices this
// package sees are small (dimension+2 at most), per spec.
func (m *Dense) Det() (float64, error) {
	if m.r != m.c {
		return 0, ErrNonSquare
	}

	return m.det(), nil
}

// SignDet returns the sign of the determinant: -1, 0, or +1. This is the
// only output the geometric predicates consume.
func (m *Dense) SignDet() (int, error) {
	d, err := m.Det()
	if err != nil {
		return 0, err
	}

	switch {
	case d > 0:
		return 1, nil
	case d < 0:
		return -1, nil
	default:
		return 0, nil
	}
}

// det computes the determinant of the whole (square) matrix, via recursive
// Laplace expansion over all rows and columns.
func (m *Dense) det() float64 {
	return m.detSub(allRows(m.r), allCols(m.c))
}

func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}

	return rows
}

func allCols(n int) []int {
	return allRows(n)
}

// detSub computes the determinant of the submatrix selected by the given
// row and column index sets (both of the same length).
func (m *Dense) detSub(rows, cols []int) float64 {
	n := len(rows)
	if n == 0 {
		return 1 // determinant of the empty matrix, by convention
	}
	if n == 1 {
		v, _ := m.At(rows[0], cols[0])

		return v
	}
	if n == 2 {
		a, _ := m.At(rows[0], cols[0])
		b, _ := m.At(rows[0], cols[1])
		c, _ := m.At(rows[1], cols[0])
		d, _ := m.At(rows[1], cols[1])

		return a*d - b*c
	}

	// Expand along the first of the selected rows.
	var sum float64
	sign := 1.0
	subRows := rows[1:]
	for k, col := range cols {
		v, _ := m.At(rows[0], col)
		if v != 0 {
			subCols := make([]int, 0, n-1)
			subCols = append(subCols, cols[:k]...)
			subCols = append(subCols, cols[k+1:]...)
			sum += sign * v * m.detSub(subRows, subCols)
		}
		sign = -sign
	}

	return sum
}
