package linalg_test

import (
	"testing"

	"github.com/katalvlaran/delaunay/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDet_NonSquare(t *testing.T) {
	m, err := linalg.NewDense(2, 3)
	require.NoError(t, err)

	_, err = m.Det()
	require.ErrorIs(t, err, linalg.ErrNonSquare)
}

func TestSignDet_Identity(t *testing.T) {
	m, err := linalg.NewDense(3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, m.Set(i, i, 1))
	}

	sign, err := m.SignDet()
	require.NoError(t, err)
	assert.Equal(t, 1, sign)
}

func TestSignDet_SingularIsZero(t *testing.T) {
	// Two identical rows -> determinant is exactly zero.
	m, err := linalg.NewDense(3, 3)
	require.NoError(t, err)
	rows := [][]float64{{1, 2, 3}, {1, 2, 3}, {4, 5, 6}}
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	sign, err := m.SignDet()
	require.NoError(t, err)
	assert.Equal(t, 0, sign)
}

func TestSignDet_NegativeSwap(t *testing.T) {
	// Swapping two rows of the identity flips the determinant's sign.
	m, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 0))
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 1))
	require.NoError(t, m.Set(1, 1, 0))

	sign, err := m.SignDet()
	require.NoError(t, err)
	assert.Equal(t, -1, sign)
}

func TestSolve_SimpleSystem(t *testing.T) {
	// [[2,0],[0,2]] x = [4,6] -> x = [2,3]
	m, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 2))
	require.NoError(t, m.Set(1, 1, 2))

	x, err := linalg.Solve(m, []float64{4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x[0], 1e-9)
	assert.InDelta(t, 3.0, x[1], 1e-9)
}

func TestSolve_Singular(t *testing.T) {
	m, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 1))
	require.NoError(t, m.Set(1, 1, 1))

	_, err = linalg.Solve(m, []float64{1, 2})
	require.ErrorIs(t, err, linalg.ErrSingular)
}
