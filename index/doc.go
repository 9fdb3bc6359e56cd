// Package index defines the abstraction shared by the vector indexes of this
// module: built from (id, vector) pairs, queried for nearest neighbours by
// Euclidean distance, and serialized for persistence.
// Implementations are a linear-scan baseline (bruteforce) and a KD-tree (kd).
package index
