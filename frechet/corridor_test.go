package frechet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajmetric/frechet"
)

// TestNewDistanceMatrix_Shape verifies length normalization: rows always
// index the longer trajectory, and Swapped reports when the arguments were
// exchanged to achieve that.
func TestNewDistanceMatrix_Shape(t *testing.T) {
	short := [][]float64{{0, 0}, {1, 0}}
	long := [][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}}

	dm, err := frechet.NewDistanceMatrix(long, short)
	require.NoError(t, err)
	assert.Equal(t, 4, dm.Rows())
	assert.Equal(t, 2, dm.Cols())
	assert.False(t, dm.Swapped())

	dm, err = frechet.NewDistanceMatrix(short, long)
	require.NoError(t, err)
	assert.Equal(t, 4, dm.Rows(), "shorter-first arguments are swapped internally")
	assert.Equal(t, 2, dm.Cols())
	assert.True(t, dm.Swapped())
}

// TestNewDistanceMatrix_DiagMax pins the core-diagonal bound on a crafted
// pair: with equal lengths the diagonal couples index to index, so diagMax
// is the largest pointwise distance.
func TestNewDistanceMatrix_DiagMax(t *testing.T) {
	a := [][]float64{{0, 0}, {1, 0}, {2, 0}}
	b := [][]float64{{0, 0}, {1, 0}, {5, 0}}

	dm, err := frechet.NewDistanceMatrix(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3.0, dm.DiagMax())
}

// TestNewDistanceMatrix_BandExtension pins the band walk semantics: cells
// cheaper than diagMax are populated walking away from the diagonal, and a
// row stops for good at its first non-smaller distance.
func TestNewDistanceMatrix_BandExtension(t *testing.T) {
	a := [][]float64{{0, 0}, {1, 0}, {2, 0}}
	b := [][]float64{{0, 0}, {1, 0}, {5, 0}}

	dm, err := frechet.NewDistanceMatrix(a, b)
	require.NoError(t, err)
	require.Equal(t, 3.0, dm.DiagMax())

	// Upper-right band, row 0: d(a0,b1)=1 < 3 populated; d(a0,b2)=5 ≥ 3 stops the row.
	d, ok := dm.At(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 1.0, d)
	_, ok = dm.At(0, 2)
	assert.False(t, ok, "first non-smaller distance must stop the row walk")

	// Row 1 stops immediately: d(a1,b2)=4 ≥ 3.
	_, ok = dm.At(1, 2)
	assert.False(t, ok)

	// Lower-left band, column 0 walks down: d(a1,b0)=1, d(a2,b0)=2, both < 3.
	d, ok = dm.At(1, 0)
	assert.True(t, ok)
	assert.Equal(t, 1.0, d)
	d, ok = dm.At(2, 0)
	assert.True(t, ok)
	assert.Equal(t, 2.0, d)

	// Column 1 walks down: d(a2,b1)=1 < 3.
	d, ok = dm.At(2, 1)
	assert.True(t, ok)
	assert.Equal(t, 1.0, d)
}

// TestNewDistanceMatrix_ZeroDiagMax covers identical trajectories: the bound
// is zero, every band walk stops on its first probe, and the corridor is
// exactly the diagonal.
func TestNewDistanceMatrix_ZeroDiagMax(t *testing.T) {
	a := [][]float64{{0, 0}, {1, 0}, {2, 0}}

	dm, err := frechet.NewDistanceMatrix(a, a)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dm.DiagMax())

	for i := 0; i < dm.Rows(); i++ {
		for j := 0; j < dm.Cols(); j++ {
			_, ok := dm.At(i, j)
			assert.Equal(t, i == j, ok, "cell (%d,%d)", i, j)
		}
	}
}

// TestNewDistanceMatrix_SteppedDiagonal verifies every row and column of a
// 5×2 matrix receives a diagonal cell (q=2, r=1: rows {0,1,2}→0, {3,4}→1).
func TestNewDistanceMatrix_SteppedDiagonal(t *testing.T) {
	a := [][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	b := [][]float64{{0, 0}, {4, 0}}

	dm, err := frechet.NewDistanceMatrix(a, b)
	require.NoError(t, err)

	wantCol := []int{0, 0, 0, 1, 1}
	for i, j := range wantCol {
		_, ok := dm.At(i, j)
		assert.True(t, ok, "diagonal cell (%d,%d) must be populated", i, j)
	}
	for j := 0; j < dm.Cols(); j++ {
		populated := false
		for i := 0; i < dm.Rows(); i++ {
			if _, ok := dm.At(i, j); ok {
				populated = true
			}
		}
		assert.True(t, populated, "column %d must hold at least one cell", j)
	}
}

// TestNewDistanceMatrix_InputsUntouched verifies the builder never reorders
// caller-owned data, even when it swaps roles internally.
func TestNewDistanceMatrix_InputsUntouched(t *testing.T) {
	a := [][]float64{{9, 9}}
	b := [][]float64{{0, 0}, {1, 1}, {2, 2}}

	_, err := frechet.NewDistanceMatrix(a, b)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{9, 9}}, a)
	assert.Equal(t, [][]float64{{0, 0}, {1, 1}, {2, 2}}, b)
}
