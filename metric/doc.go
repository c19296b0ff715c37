// Package metric provides the point-distance primitives shared by the
// trajectory similarity algorithms in this module.
//
// Two kernels are exposed, both generic over float32/float64 coordinates:
//
//   - Euclidean         — the L2 distance between two points
//   - SquaredEuclidean  — the same quantity without the square root, for
//     callers that only compare distances against a threshold and want to
//     skip one sqrt per pair
//
// The kernels are hot-loop code: they perform no validation, and comparing
// points of different dimensionality is a precondition violation. Whole
// trajectories are validated once at algorithm entry via
// ValidateTrajectories, which reports ErrDimensionMismatch before any
// kernel runs.
//
// Complexity: both kernels are O(d) time, O(1) space for dimension d.
package metric
