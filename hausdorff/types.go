package hausdorff

import (
	"errors"
	"math/rand"
)

// ErrEmptyInput indicates one or both input trajectories have zero points.
var ErrEmptyInput = errors.New("hausdorff: input trajectories must be non-empty")

// Options configures the randomized Hausdorff scan.
//
// Fields:
//   - Seed — selects the deterministic permutation stream. Seed == 0 maps to
//     a fixed default seed, so the zero value of Options is fully
//     reproducible; pass distinct seeds to vary the scan order.
//   - Rand — optional RNG handle overriding Seed entirely. Supply one to
//     share a stream across calls or to plug in pre-seeded test RNGs.
//     math/rand.Rand is not goroutine-safe; do not share one handle across
//     concurrent calls.
//
// The permutation only affects how quickly the early break triggers, never
// the returned distance.
//
// Example:
//
//	opts := hausdorff.DefaultOptions()
//	opts.Seed = 7
//	dist, err := hausdorff.Distance(a, b, &opts)
type Options struct {
	Seed int64
	Rand *rand.Rand
}

// DefaultOptions returns the default configuration: the fixed default seed
// and no external RNG.
func DefaultOptions() Options {
	return Options{}
}
