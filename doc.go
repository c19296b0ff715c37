// Package trajmetric measures similarity between discrete trajectories —
// ordered point sequences sampled from curves in d-dimensional space.
//
// 🚀 What is trajmetric?
//
//	A small, focused library computing two classic curve-similarity metrics:
//		• Hausdorff distance — randomized max-min scan with early termination
//		• Discrete Fréchet distance — corridor-pruned min-max dynamic program
//		  (core diagonal + banded extension, Devogele et al. 2017)
//
//	Typical uses: comparing flow-field trajectories, classifying orbits,
//	matching GPS traces or any sampled paths of agreeing dimensionality.
//
// ✨ Why choose trajmetric?
//
//   - Minimal API – two entry points, one options struct, sentinel errors
//   - Deterministic – injectable seeds/RNGs, no hidden entropy sources
//   - Generic – float32 or float64 coordinates via type parameters
//   - Pure compute – no goroutines, no I/O, nothing shared across calls
//
// Everything is organized under three subpackages:
//
//	metric/    — Euclidean point-distance primitives & trajectory validation
//	hausdorff/ — symmetric Hausdorff distance with randomized early break
//	frechet/   — pruned distance-matrix corridor + discrete Fréchet DP
//
// Quick ASCII example:
//
//	A: ●──●──●──●        two sampled paths; both metrics report how far
//	B:  ●───●───●        one must deviate to trace the other
//
//	go get github.com/katalvlaran/trajmetric
package trajmetric
