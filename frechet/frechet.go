package frechet

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Distance — discrete Fréchet distance between two trajectories.
//
// Description:
//
//	Builds the corridor-pruned distance matrix (NewDistanceMatrix), runs the
//	min-max dynamic program over its populated cells, and returns the
//	terminal accumulated value. The argument order never affects the
//	result: the matrix normalizes by length, not identity.
//
// Complexity:
//
//	Time   = O(corridor cells); O(n·m) worst case
//	Memory = O(n·m)
//
// Errors:
//   - ErrEmptyInput               — either trajectory has zero points.
//   - metric.ErrDimensionMismatch — points of differing dimensionality.
//   - ErrInternalInconsistency    — corridor-coverage invariant violated
//     (defect-class; unreachable through this entry point).
func Distance[T constraints.Float](a, b [][]T) (T, error) {
	dm, err := NewDistanceMatrix(a, b)
	if err != nil {
		return 0, err
	}

	accum, err := dm.accumulate()
	if err != nil {
		return 0, err
	}

	return accum[dm.rows-1][dm.cols-1], nil
}

// accumulate runs the Fréchet recurrence over the populated corridor:
//
//	accum[i][j] = max(dist[i][j], min of the populated DP predecessors
//	              (i-1,j-1), (i-1,j), (i,j-1))
//
// restricted to populated cells, row by row. Each row is scanned across its
// recorded [first, last] populated span; unset cells inside the span are
// skipped, not computed. accum[0][0] = dist[0][0]. A populated cell with no
// populated predecessor is unreachable by any monotonic coupling and
// accumulates +Inf, so it can never win a minimum.
//
// Returns ErrInternalInconsistency if any row, or the terminal cell, has
// nothing populated — the diagonal construction guarantees coverage, so
// hitting this means the matrix was corrupted, and the DP must not read out
// of range on it.
func (dm *DistanceMatrix[T]) accumulate() ([][]T, error) {
	accum := make([][]T, dm.rows)
	for i := range accum {
		accum[i] = make([]T, dm.cols)
	}

	inf := T(math.Inf(1))

	var best T
	for i := 0; i < dm.rows; i++ {
		if dm.lo[i] > dm.hi[i] {
			return nil, ErrInternalInconsistency
		}
		for j := dm.lo[i]; j <= dm.hi[i]; j++ {
			if !dm.set[i][j] {
				continue
			}
			if i == 0 && j == 0 {
				accum[0][0] = dm.dist[0][0]

				continue
			}

			best = inf
			if i > 0 && j > 0 && dm.set[i-1][j-1] && accum[i-1][j-1] < best {
				best = accum[i-1][j-1]
			}
			if i > 0 && dm.set[i-1][j] && accum[i-1][j] < best {
				best = accum[i-1][j]
			}
			if j > 0 && dm.set[i][j-1] && accum[i][j-1] < best {
				best = accum[i][j-1]
			}
			if best < dm.dist[i][j] {
				best = dm.dist[i][j]
			}
			accum[i][j] = best
		}
	}

	if !dm.set[dm.rows-1][dm.cols-1] {
		return nil, ErrInternalInconsistency
	}

	return accum, nil
}
