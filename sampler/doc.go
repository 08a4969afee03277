// Package sampler computes the exact probability distribution of pending
// subtree populations produced by repeatedly, randomly splitting a
// binary-tree-indexed set of leaves.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - config.go: Config, the canonical (subtree size, count) multiset that
//     keys every distribution
//   - sample.go: SampleOnce (one split event) and Sample (the multi-step
//     simulator with its call-scoped memo cache)
//   - histogram.go: projection of a distribution onto total node counts,
//     expectation, and quantile thresholds
//
// vcparam.go decomposes the external (csp, tau) cost parameters into the
// initial leaf count and step count the simulator consumes; tree.go holds
// the binary-tree index arithmetic (root at index 1, children of i at 2i
// and 2i+1).
//
// All computation is exact: probabilities are propagated analytically, not
// estimated by sampling. The engine is single-threaded and allocates fresh
// state per call; independent invocations may safely run concurrently.
package sampler
