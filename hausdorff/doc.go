// Package hausdorff computes the symmetric Hausdorff distance between two
// discrete trajectories using a randomized, early-terminating max-min scan.
//
// 🚀 What is the Hausdorff distance?
//
//	The largest distance from any point of one trajectory to the nearest
//	point of the other, taken in the more demanding direction. It answers
//	“how far can these two sampled paths stray from each other, anywhere?”
//	and is widely used for:
//	  • Comparing flow-field strainline trajectories
//	  • Classifying orbits and GPS traces
//	  • Shape matching over point samples
//
// ✨ Key features:
//   - early break: a candidate point is abandoned as soon as it provably
//     cannot raise the running maximum
//   - randomized scan order (Fisher–Yates permutations of both index
//     ranges) keeps the early break effective on structured inputs
//   - a single shared bound drives both scan directions, so the result is
//     the full symmetric distance, not a directed one
//   - all inner-loop comparisons run on squared distances; one sqrt total
//   - deterministic by default: injectable seed or *rand.Rand
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/trajmetric/hausdorff"
//
//	opts := hausdorff.DefaultOptions()
//	opts.Seed = 42 // reproducible permutations
//
//	dist, err := hausdorff.Distance(trajA, trajB, &opts)
//	if err != nil {
//	  // hausdorff.ErrEmptyInput or metric.ErrDimensionMismatch
//	}
//
// Performance:
//
//   - Time:   O(n·m) worst case; typically far less thanks to the early
//     break. An adversarial scan order can defeat the pruning entirely,
//     which degrades speed but never correctness.
//   - Memory: O(n+m) for the two index permutations.
package hausdorff
