// Package tree implements a k-dimensional binary space-partitioning tree
// (KD-tree) over points of a fixed dimensionality.
//
// Two construction paths populate the same node arena:
//   - Insert adds points one at a time, descending on successive cut
//     dimensions. The resulting shape depends on insertion order and no
//     rebalancing is performed.
//   - Build partitions a batch of points by the median along a rotating cut
//     dimension. When the recursion reaches the maximum depth the remaining
//     points collapse into a single centroid leaf (quantization mode).
//
// Incrementally built trees keep the strict ordering invariant: every point
// in a left subtree has a smaller key on the node's cut dimension, every
// point in a right subtree a greater or equal key. Balanced trees keep a
// relaxed form where left keys may also be equal, and centroid leaves are
// exempt. Contains accounts for the relaxed form by exploring both sides on
// an exact key tie; Validate checks whichever form applies.
//
// A Tree is not safe for concurrent mutation. Concurrent queries are safe as
// long as no goroutine inserts at the same time.
package tree
