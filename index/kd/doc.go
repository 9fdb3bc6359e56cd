// Package kd provides an index.Index backed by a balanced KD-tree. Queries
// return the single nearest vector; snapshots reuse the bruteforce layout
// compressed with zstd and rebuild the tree on load.
package kd
