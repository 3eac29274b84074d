package linalg

import "fmt"

// denseErrorf wraps an underlying error with method context, matching the
// lvlath matrix package's convention of attaching (row, col) coordinates to
// bounds errors.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates an r x c zero matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromColumns builds a Dense matrix whose columns are the given
// vectors: len(vector) rows by len(columns) columns. It is square only when
// the counts agree; squareness is not checked here (Det reports
// ErrNonSquare). All vectors must share the same length; otherwise
// ErrDimensionMismatch is returned. This is the constructor the predicates
// use: orient and in_sphere both assemble a matrix from a list of
// homogeneous point vectors treated as columns.
func NewDenseFromColumns(columns ...[]float64) (*Dense, error) {
	if len(columns) == 0 {
		return nil, ErrInvalidDimensions
	}

	n := len(columns[0])
	for _, col := range columns[1:] {
		if len(col) != n {
			return nil, ErrDimensionMismatch
		}
	}

	m, err := NewDense(n, len(columns))
	if err != nil {
		return nil, err
	}
	for j, col := range columns {
		for i, v := range col {
			_ = m.Set(i, j, v)
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or reports ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep, independent copy of m.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}
