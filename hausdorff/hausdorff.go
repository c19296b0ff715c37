package hausdorff

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/trajmetric/metric"
)

// Distance — symmetric Hausdorff distance with randomized early break.
//
// Description:
//
//	For each point of one trajectory the scan finds the distance to its
//	nearest neighbor in the other; the Hausdorff distance is the largest
//	such value over both directions. The engine keeps one running maximum
//	cMax (in squared space) shared by both directed passes: as soon as a
//	candidate point sees any neighbor closer than cMax, that point can no
//	longer raise the maximum and its inner loop is abandoned.
//
// Algorithm Outline:
//  1. Validate both trajectories non-empty (ErrEmptyInput) and of one
//     dimensionality (metric.ErrDimensionMismatch).
//  2. Resolve the RNG: opts.Rand if set, else a deterministic stream from
//     opts.Seed (seed==0 ⇒ fixed default). nil opts ⇒ DefaultOptions().
//  3. Run the directed pass A→B, then B→A, sharing cMax. Each pass draws
//     fresh Fisher–Yates permutations of both index ranges; randomizing the
//     scan order is what makes the early break effective — a sorted or
//     adversarial order can degrade to the full O(n·m) cost.
//  4. Return sqrt(cMax). Every comparison before this point is on squared
//     distances, so exactly one square root is spent per call.
//
// Complexity:
//
//	Time   = O(n·m) worst case, typically much less
//	Memory = O(n+m)
//
// Errors:
//   - ErrEmptyInput              — either trajectory has zero points.
//   - metric.ErrDimensionMismatch — points of differing dimensionality.
func Distance[T constraints.Float](a, b [][]T, opts *Options) (T, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyInput
	}
	if err := metric.ValidateTrajectories(a, b); err != nil {
		return 0, err
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	var cMax T
	cMax, pairsAB := directedMax(a, b, cMax, rng)
	cMax, pairsBA := directedMax(b, a, cMax, rng)

	log.Debug().
		Int("pairs", pairsAB+pairsBA).
		Int("worst_case", 2*len(a)*len(b)).
		Msg("hausdorff: scan complete")

	return T(math.Sqrt(float64(cMax))), nil
}

// directedMax runs one directed max-min pass over shuffled indices, carrying
// the squared running maximum cMax into and out of the pass. It also reports
// how many point pairs were actually evaluated.
func directedMax[T constraints.Float](from, to [][]T, cMax T, rng *rand.Rand) (T, int) {
	outer := permRange(len(from), rng)
	inner := permRange(len(to), rng)

	inf := T(math.Inf(1))
	pairs := 0

	var (
		cMin  T
		d     T
		broke bool
	)
	for _, ia := range outer {
		cMin = inf
		broke = false
		for _, ib := range inner {
			d = metric.SquaredEuclidean(from[ia], to[ib])
			pairs++
			if d < cMax {
				// This point's nearest neighbor is at most d away, so it
				// cannot raise cMax. Abandon it without touching cMin.
				broke = true

				break
			}
			if d < cMin {
				cMin = d
			}
		}
		if !broke && cMin < inf && cMin >= cMax {
			cMax = cMin
		}
	}

	return cMax, pairs
}
