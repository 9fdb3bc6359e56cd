package index

// Index defines an id-addressed vector index answering nearest-neighbour
// queries under Euclidean distance.
type Index interface {
	// Build constructs the index from the given ids and vectors.
	// ids and vectors must have the same length and every vector the same dimension.
	Build(ids []string, vectors [][]float32) error

	// Query returns up to k matches as parallel slices of ids and scores,
	// where the score is the Euclidean distance to query (lower is closer).
	Query(query []float32, k int) (ids []string, scores []float64, err error)

	// MarshalBinary serializes the index into a byte slice.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary reconstructs the index from a serialized byte slice.
	UnmarshalBinary(data []byte) error
}
