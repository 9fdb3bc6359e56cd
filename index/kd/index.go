package kd

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/klauspost/compress/zstd"
	"github.com/viant/kdtree/index"
	"github.com/viant/kdtree/index/bruteforce"
	"github.com/viant/kdtree/tree"
)

var magic = []byte("KDT1")

// ErrInvalidSnapshot is returned by UnmarshalBinary for foreign or corrupt data.
var ErrInvalidSnapshot = errors.New("kd: invalid snapshot")

// Index is a KD-tree nearest-neighbour index.
type Index struct {
	ids    []string
	vecs   [][]float32
	tree   *tree.Tree[entry]
	level  zstd.EncoderLevel
	logger *slog.Logger
}

// Option configures an Index.
type Option func(*Index)

// WithLogger sets the logger used for build and load events.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Index) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithCompression sets the zstd level used by MarshalBinary.
func WithCompression(level zstd.EncoderLevel) Option {
	return func(i *Index) { i.level = level }
}

// New returns an empty index.
func New(opts ...Option) *Index {
	i := &Index{
		level:  zstd.SpeedDefault,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Build replaces the index content with a balanced tree over copies of vectors.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("kd: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(vectors) == 0 {
		i.ids, i.vecs, i.tree = nil, nil, nil
		return nil
	}
	vecs := make([][]float32, len(vectors))
	entries := make([]entry, len(vectors))
	for j, v := range vectors {
		vecs[j] = append([]float32(nil), v...)
		entries[j] = entry{vec: vecs[j], pos: j}
	}
	t, err := tree.Build(len(vectors[0]), entries, tree.NoDepthLimit)
	if err != nil {
		return fmt.Errorf("kd: %w", err)
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = vecs
	i.tree = t
	i.logger.Debug("kd index built", "count", t.Len(), "dim", t.Dim(), "nodes", t.NodeCount())
	return nil
}

// Len returns the number of indexed vectors.
func (i *Index) Len() int { return len(i.ids) }

// Nearest returns the id of the closest vector and its Euclidean distance.
func (i *Index) Nearest(query []float32) (string, float64, error) {
	if i.tree == nil {
		return "", 0, fmt.Errorf("kd: %w", tree.ErrEmptyTree)
	}
	q := entry{vec: tree.Vector(query), pos: -1}
	nb, err := i.tree.NearestNeighbor(q)
	if err != nil {
		return "", 0, fmt.Errorf("kd: %w", err)
	}
	return i.ids[nb.Point.pos], float64(q.vec.Distance(nb.Point.vec)), nil
}

// Contains reports whether vector is stored in the index.
func (i *Index) Contains(vector []float32) (bool, error) {
	if i.tree == nil {
		return false, nil
	}
	found, err := i.tree.Contains(entry{vec: tree.Vector(vector), pos: -1})
	if err != nil {
		return false, fmt.Errorf("kd: %w", err)
	}
	return found, nil
}

// Query returns the nearest vector for any k > 0; only single-neighbour
// search is supported. An empty index or k <= 0 yields no matches.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	if i.tree == nil || k <= 0 {
		return nil, nil, nil
	}
	id, dist, err := i.Nearest(query)
	if err != nil {
		return nil, nil, err
	}
	return []string{id}, []float64{dist}, nil
}

// MarshalBinary writes the magic header followed by the zstd-compressed
// bruteforce layout.
func (i *Index) MarshalBinary() ([]byte, error) {
	bf := &bruteforce.Index{}
	if err := bf.Build(i.ids, i.vecs); err != nil {
		return nil, err
	}
	raw, err := bf.MarshalBinary()
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(i.level))
	if err != nil {
		return nil, fmt.Errorf("kd: %w", err)
	}
	defer enc.Close()
	out := append([]byte(nil), magic...)
	return enc.EncodeAll(raw, out), nil
}

// UnmarshalBinary restores a snapshot written by MarshalBinary.
func (i *Index) UnmarshalBinary(data []byte) error {
	if !bytes.HasPrefix(data, magic) {
		return ErrInvalidSnapshot
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return fmt.Errorf("kd: %w", err)
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(data[len(magic):], nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	ids, vecs, err := bruteforce.Decode(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if err := i.Build(ids, vecs); err != nil {
		return err
	}
	i.logger.Debug("kd index loaded", "count", len(ids), "bytes", len(data))
	return nil
}

var _ index.Index = (*Index)(nil)
