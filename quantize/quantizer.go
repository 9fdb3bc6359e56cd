package quantize

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/viant/kdtree/tree"
)

// CodeSize is the encoded size of one vector in bytes.
const CodeSize = 4

// MaxDepth bounds the codebook to 2^MaxDepth codewords.
const MaxDepth = 24

var (
	// ErrNotTrained is returned when encoding or decoding before Train.
	ErrNotTrained = errors.New("quantize: quantizer not trained")
	// ErrInvalidCode is returned by Decode for malformed or unknown codes.
	ErrInvalidCode = errors.New("quantize: invalid code")
)

type codeword struct {
	vec  tree.Vector
	code int
}

func (c codeword) Dim() int                   { return len(c.vec) }
func (c codeword) Coord(i int) float64        { return c.vec.Coord(i) }
func (c codeword) SqrDist(o codeword) float64 { return c.vec.SqrDist(o.vec) }
func (c codeword) Equal(o codeword) bool      { return c.vec.Equal(o.vec) }
func (c codeword) Div(scalar float64)         { c.vec.Div(scalar) }
func (c codeword) New(coords []float64) codeword {
	return codeword{vec: c.vec.New(coords), code: -1}
}

// Quantizer maps vectors to the nearest leaf of a balanced KD-tree.
type Quantizer struct {
	maxDepth int
	dim      int
	codebook []tree.Vector
	lookup   *tree.Tree[codeword]
	logger   *slog.Logger
}

// Option configures a Quantizer.
type Option func(*Quantizer)

// WithLogger sets the logger used to report training.
func WithLogger(logger *slog.Logger) Option {
	return func(q *Quantizer) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// New returns an untrained quantizer building trees of at most maxDepth levels.
func New(maxDepth int, opts ...Option) (*Quantizer, error) {
	if maxDepth < 0 || maxDepth > MaxDepth {
		return nil, fmt.Errorf("quantize: max depth %d outside [0, %d]", maxDepth, MaxDepth)
	}
	q := &Quantizer{maxDepth: maxDepth, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(q)
	}
	return q, nil
}

// Train builds the codebook from vectors.
func (q *Quantizer) Train(vectors [][]float32) error {
	if len(vectors) == 0 {
		return errors.New("quantize: no vectors provided for training")
	}
	points := make([]tree.Vector, len(vectors))
	for i, v := range vectors {
		points[i] = tree.Vector(v)
	}
	dim := len(vectors[0])
	t, err := tree.Build(dim, points, q.maxDepth)
	if err != nil {
		return fmt.Errorf("quantize: %w", err)
	}
	codebook := t.Leaves()
	words := make([]codeword, len(codebook))
	for i, v := range codebook {
		codebook[i] = append(tree.Vector(nil), v...)
		words[i] = codeword{vec: codebook[i], code: i}
	}
	lookup, err := tree.Build(dim, words, tree.NoDepthLimit)
	if err != nil {
		return fmt.Errorf("quantize: %w", err)
	}
	q.dim = dim
	q.codebook = codebook
	q.lookup = lookup
	q.logger.Info("quantizer trained", "vectors", len(vectors), "codewords", len(codebook), "depth", q.maxDepth)
	return nil
}

// Codebook returns a copy of the trained codewords indexed by code.
func (q *Quantizer) Codebook() [][]float32 {
	out := make([][]float32, len(q.codebook))
	for i, v := range q.codebook {
		out[i] = append([]float32(nil), v...)
	}
	return out
}

// Code returns the index of the codeword nearest to v.
func (q *Quantizer) Code(v []float32) (int, error) {
	if q.lookup == nil {
		return 0, ErrNotTrained
	}
	nb, err := q.lookup.NearestNeighbor(codeword{vec: tree.Vector(v), code: -1})
	if err != nil {
		return 0, fmt.Errorf("quantize: %w", err)
	}
	return nb.Point.code, nil
}

// Encode returns the little-endian code of the codeword nearest to v.
func (q *Quantizer) Encode(v []float32) ([]byte, error) {
	code, err := q.Code(v)
	if err != nil {
		return nil, err
	}
	return binary.LittleEndian.AppendUint32(make([]byte, 0, CodeSize), uint32(code)), nil
}

// Decode returns a copy of the codeword addressed by b.
func (q *Quantizer) Decode(b []byte) ([]float32, error) {
	if q.lookup == nil {
		return nil, ErrNotTrained
	}
	if len(b) != CodeSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidCode, len(b))
	}
	code := binary.LittleEndian.Uint32(b)
	if int(code) >= len(q.codebook) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidCode, code, len(q.codebook))
	}
	return append([]float32(nil), q.codebook[code]...), nil
}
