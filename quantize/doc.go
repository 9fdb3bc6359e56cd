// Package quantize provides a vector quantizer whose codebook is the set of
// leaves of a depth-bounded balanced KD-tree. Subtrees deeper than the
// maximum depth collapse into their centroid, so a depth D tree yields at
// most 2^D codewords. Vectors are encoded as the 4-byte index of their
// nearest codeword.
package quantize
