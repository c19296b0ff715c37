// Package frechet computes the discrete Fréchet distance between two
// trajectories via a corridor-pruned dynamic program, following the
// optimized scheme of Devogele, Esnault, Étienne & Lardy (2017).
//
// 🚀 What is the discrete Fréchet distance?
//
//	The minimum, over all monotonic index couplings of the two point
//	sequences, of the largest pairwise distance along the coupling — the
//	shortest leash that lets a walker traverse one trajectory while a dog
//	traverses the other, neither ever backing up. Typical uses:
//	  • Trajectory clustering and classification
//	  • Map-matching and route similarity
//	  • Comparing sampled flow-field curves
//
// ✨ How the pruning works:
//
//  1. The trajectories are normalized so the first is the longer (n ≥ m);
//     the distance is invariant to argument order.
//  2. A “core diagonal” — an evenly spaced stepped coupling touching every
//     row and every column — is fully evaluated. Its largest distance,
//     diagMax, is the cost of one valid coupling and therefore an upper
//     bound on the answer.
//  3. The matrix is extended in bands around the diagonal: each row walks
//     right and each column walks down while freshly computed distances
//     stay below diagMax. Everything else is left unset — cells are
//     tracked with an explicit presence flag, so a genuine zero distance
//     (coincident points) is never confused with “not computed”.
//  4. A min-max dynamic program over the populated cells yields the
//     terminal accumulated value.
//
// Only cells near the provably-good diagonal, plus cells cheaper than the
// bound, are ever evaluated: the corridor avoids the full O(n·m) matrix.
// The result always lies between the exact distance and diagMax, and equals
// the exact distance whenever some optimal coupling stays inside the
// corridor — which holds for trajectories without large local speed
// disparities.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/trajmetric/frechet"
//
//	dist, err := frechet.Distance(trajA, trajB)
//	if err != nil {
//	  // frechet.ErrEmptyInput or metric.ErrDimensionMismatch
//	}
//
// Performance:
//
//   - Time:   O(corridor) distance evaluations; O(n·m) worst case
//   - Memory: O(n·m) for the matrix storage
package frechet
