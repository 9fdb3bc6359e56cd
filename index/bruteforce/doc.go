// Package bruteforce provides a vector index that answers nearest-neighbour
// queries by scanning every vector. It is the reference the KD-tree index is
// checked against and defines the binary layout both indexes persist.
package bruteforce
