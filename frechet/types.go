package frechet

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by this package.
var (
	// ErrEmptyInput indicates one or both input trajectories have zero points.
	ErrEmptyInput = errors.New("frechet: input trajectories must be non-empty")

	// ErrInternalInconsistency indicates the pruned matrix violated the
	// corridor-coverage invariant the dynamic program relies on (a row or the
	// terminal cell with nothing populated). The diagonal construction makes
	// this unreachable from the public API; it is surfaced as a defect-class
	// error rather than a silent wrong result or an out-of-range read.
	ErrInternalInconsistency = errors.New("frechet: pruned matrix left a row without populated cells")
)

// DistanceMatrix is the corridor-pruned pairwise distance matrix between two
// trajectories, together with the diagMax pruning bound. Rows index the
// longer trajectory, columns the shorter (Swapped reports whether the
// arguments were exchanged to achieve that). Only cells on the core diagonal
// or inside the extension bands are populated; membership is tracked with an
// explicit presence flag, never a sentinel value.
//
// A DistanceMatrix is built fresh per query by NewDistanceMatrix and is not
// safe for concurrent mutation (it has no mutating methods after build).
type DistanceMatrix[T constraints.Float] struct {
	rows int
	cols int

	swapped bool
	diagMax T

	dist  [][]T
	set   [][]bool
	count int

	// Populated column bounds per row. Band stop rules may leave gaps inside
	// a span, so these bound the scan, they do not promise contiguity.
	lo []int
	hi []int
}

// Rows returns the row count (length of the longer trajectory).
func (dm *DistanceMatrix[T]) Rows() int { return dm.rows }

// Cols returns the column count (length of the shorter trajectory).
func (dm *DistanceMatrix[T]) Cols() int { return dm.cols }

// Swapped reports whether the two trajectories were exchanged during length
// normalization, i.e. whether rows correspond to the second argument.
func (dm *DistanceMatrix[T]) Swapped() bool { return dm.swapped }

// DiagMax returns the largest distance found on the core diagonal. It is the
// cost of one valid coupling and therefore an upper bound on the discrete
// Fréchet distance, and the threshold the extension bands pruned against.
func (dm *DistanceMatrix[T]) DiagMax() T { return dm.diagMax }

// At returns the distance stored at (i, j) and whether that cell was
// populated. The distance of an unpopulated cell is meaningless and returned
// as zero.
func (dm *DistanceMatrix[T]) At(i, j int) (T, bool) {
	if !dm.set[i][j] {
		return 0, false
	}

	return dm.dist[i][j], true
}
