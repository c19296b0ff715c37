package metric

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrDimensionMismatch indicates that two points being compared do not share
// the same dimensionality.
var ErrDimensionMismatch = errors.New("metric: point dimensionality mismatch")

// SquaredEuclidean returns the squared Euclidean (L2²) distance between two
// points of equal dimension. Use it wherever only comparisons are needed:
// x² < y² ⇔ x < y for non-negative x, y, and skipping the square root keeps
// the per-pair cost to pure multiply-adds.
//
// Dimension mismatch is not checked; see ValidateTrajectories.
func SquaredEuclidean[T constraints.Float](a, b []T) T {
	var sum T
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}

// Euclidean returns the Euclidean (L2) distance between two points of equal
// dimension.
//
// Dimension mismatch is not checked; see ValidateTrajectories.
func Euclidean[T constraints.Float](a, b []T) T {
	return T(math.Sqrt(float64(SquaredEuclidean(a, b))))
}

// ValidateTrajectories verifies that every point of both trajectories shares
// one dimensionality, so the kernels above may run unchecked. It returns
// ErrDimensionMismatch on the first violating point and nil otherwise.
//
// Emptiness is deliberately not checked here: each algorithm package owns its
// empty-input sentinel and checks it before calling this.
//
// Complexity: O((n+m)·1) time, O(1) space.
func ValidateTrajectories[T constraints.Float](a, b [][]T) error {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	dim := len(a[0])
	for _, p := range a {
		if len(p) != dim {
			return ErrDimensionMismatch
		}
	}
	for _, p := range b {
		if len(p) != dim {
			return ErrDimensionMismatch
		}
	}

	return nil
}
