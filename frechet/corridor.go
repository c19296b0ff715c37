package frechet

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/trajmetric/metric"
)

// NewDistanceMatrix builds the corridor-pruned distance matrix between two
// trajectories and computes the diagMax bound.
//
// Algorithm Outline:
//  1. Normalize so rows ≥ cols by swapping local slice headers if needed;
//     caller-owned data is never reordered or mutated.
//  2. With q = n/m and r = n%m, evaluate the stepped core diagonal: row i
//     couples to column i/(q+1) while i < r·(q+1), and to (i−r)/q beyond.
//     The mapping advances by at most one column per row and lands on
//     (n−1, m−1), so it is a valid coupling touching every row and column.
//     diagMax is the maximum distance over these n cells.
//  3. Upper-right band: each row walks right from one past its diagonal
//     column, populating cells while each freshly computed distance stays
//     strictly below diagMax, and stops the row at the first that does not.
//  4. Lower-left band: each column walks down from one past its last
//     diagonal row under the same rule.
//
// The first probe of every band walk is a freshly computed distance, so no
// stale "current distance" is ever consulted, and a walk whose first probe
// fails populates nothing — both rows and columns still hold their diagonal
// cell.
//
// Errors:
//   - ErrEmptyInput               — either trajectory has zero points.
//   - metric.ErrDimensionMismatch — points of differing dimensionality.
//
// Complexity: O(populated cells) distance evaluations, O(n·m) memory.
func NewDistanceMatrix[T constraints.Float](a, b [][]T) (*DistanceMatrix[T], error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if err := metric.ValidateTrajectories(a, b); err != nil {
		return nil, err
	}

	long, short := a, b
	swapped := false
	if len(long) < len(short) {
		long, short = short, long
		swapped = true
	}
	n, m := len(long), len(short)

	dm := &DistanceMatrix[T]{
		rows:    n,
		cols:    m,
		swapped: swapped,
		dist:    make([][]T, n),
		set:     make([][]bool, n),
		lo:      make([]int, n),
		hi:      make([]int, n),
	}
	for i := 0; i < n; i++ {
		dm.dist[i] = make([]T, m)
		dm.set[i] = make([]bool, m)
		dm.lo[i] = m
		dm.hi[i] = -1
	}

	q, r := n/m, n%m

	// Core diagonal.
	var d T
	for i := 0; i < n; i++ {
		j := diagCol(i, q, r)
		d = metric.Euclidean(long[i], short[j])
		dm.place(i, j, d)
		if d > dm.diagMax {
			dm.diagMax = d
		}
	}

	// Upper-right band.
	for i := 0; i < n; i++ {
		for j := diagCol(i, q, r) + 1; j < m; j++ {
			d = metric.Euclidean(long[i], short[j])
			if d >= dm.diagMax {
				break
			}
			dm.place(i, j, d)
		}
	}

	// Lower-left band.
	for j := 0; j < m; j++ {
		for i := lastDiagRow(j, q, r) + 1; i < n; i++ {
			d = metric.Euclidean(long[i], short[j])
			if d >= dm.diagMax {
				break
			}
			dm.place(i, j, d)
		}
	}

	log.Debug().
		Int("rows", n).
		Int("cols", m).
		Int("populated", dm.count).
		Int("full", n*m).
		Float64("diag_max", float64(dm.diagMax)).
		Msg("frechet: corridor built")

	return dm, nil
}

// place records a computed distance and widens the row's populated bounds.
func (dm *DistanceMatrix[T]) place(i, j int, d T) {
	dm.dist[i][j] = d
	dm.set[i][j] = true
	dm.count++
	if j < dm.lo[i] {
		dm.lo[i] = j
	}
	if j > dm.hi[i] {
		dm.hi[i] = j
	}
}

// diagCol maps a row of the longer trajectory to its core-diagonal column:
// the first r·(q+1) rows advance one column per q+1 rows, the remainder one
// column per q rows. Surjective onto [0, m) and monotonically non-decreasing.
func diagCol(i, q, r int) int {
	if i < r*(q+1) {
		return i / (q + 1)
	}

	return (i - r) / q
}

// lastDiagRow is the inverse bound of diagCol: the largest row whose
// diagonal column is j. Lower-left band walks start one row below it.
func lastDiagRow(j, q, r int) int {
	if j < r {
		return (j+1)*(q+1) - 1
	}

	return r + (j+1)*q - 1
}
