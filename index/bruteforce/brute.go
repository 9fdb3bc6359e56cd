package bruteforce

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/viant/kdtree/tree"
)

// Index is a linear-scan Euclidean index.
type Index struct {
	ids  []string
	vecs []tree.Vector
	dim  int
}

// Build validates and stores ids and vectors.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.ids, i.vecs, i.dim = nil, nil, 0
		return nil
	}
	dim := len(vectors[0])
	if dim == 0 {
		return errors.New("bruteforce: empty vector")
	}
	vecs := make([]tree.Vector, len(vectors))
	for j := range vectors {
		if len(vectors[j]) != dim {
			return fmt.Errorf("bruteforce: inconsistent vector dims %d vs %d", len(vectors[j]), dim)
		}
		vecs[j] = tree.Vector(vectors[j])
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = vecs
	i.dim = dim
	return nil
}

// Dim returns the vector dimension, zero for an empty index.
func (i *Index) Dim() int { return i.dim }

// Len returns the number of stored vectors.
func (i *Index) Len() int { return len(i.vecs) }

// Entries returns the stored ids and vectors.
func (i *Index) Entries() ([]string, [][]float32) {
	vecs := make([][]float32, len(i.vecs))
	for j, v := range i.vecs {
		vecs[j] = v
	}
	return i.ids, vecs
}

// Query returns the k closest vectors ordered by increasing distance. Equal
// distances keep build order. k <= 0 returns every vector.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	if i.dim == 0 || len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if len(query) != i.dim {
		return nil, nil, fmt.Errorf("bruteforce: query dim %d != index dim %d", len(query), i.dim)
	}
	q := tree.Vector(query)
	type scored struct {
		idx  int
		dist float64
	}
	scoreds := make([]scored, 0, len(i.vecs))
	for j, v := range i.vecs {
		d := q.SqrDist(v)
		if math.IsNaN(d) {
			continue
		}
		scoreds = append(scoreds, scored{idx: j, dist: d})
	}
	sort.SliceStable(scoreds, func(a, b int) bool { return scoreds[a].dist < scoreds[b].dist })
	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	outIDs := make([]string, k)
	outScores := make([]float64, k)
	for n := 0; n < k; n++ {
		outIDs[n] = i.ids[scoreds[n].idx]
		outScores[n] = float64(q.Distance(i.vecs[scoreds[n].idx]))
	}
	return outIDs, outScores, nil
}

// MarshalBinary stores: dim(uint32), n(uint32), then for each item:
// idLen(uint32), id bytes, vec(float32[dim]).
func (i *Index) MarshalBinary() ([]byte, error) {
	size := 8
	for _, id := range i.ids {
		size += 4 + len(id) + 4*i.dim
	}
	out := make([]byte, 0, size)
	out = binary.LittleEndian.AppendUint32(out, uint32(i.dim))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(i.ids)))
	for idx, id := range i.ids {
		out = binary.LittleEndian.AppendUint32(out, uint32(len(id)))
		out = append(out, id...)
		for _, c := range i.vecs[idx] {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(c))
		}
	}
	return out, nil
}

// UnmarshalBinary restores the index from bytes.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, vecs, err := Decode(data)
	if err != nil {
		return err
	}
	return i.Build(ids, vecs)
}

// Decode parses the layout written by MarshalBinary.
func Decode(data []byte) ([]string, [][]float32, error) {
	if len(data) < 8 {
		return nil, nil, errors.New("bruteforce: invalid data")
	}
	off := 0
	getU32 := func() uint32 { v := binary.LittleEndian.Uint32(data[off : off+4]); off += 4; return v }
	dim := int(getU32())
	n := int(getU32())
	if n > 0 && dim == 0 {
		return nil, nil, errors.New("bruteforce: zero dimension")
	}
	ids := make([]string, 0, min(n, len(data)/4))
	vecs := make([][]float32, 0, cap(ids))
	for idx := 0; idx < n; idx++ {
		if off+4 > len(data) {
			return nil, nil, errors.New("bruteforce: truncated")
		}
		idlen := int(getU32())
		if idlen < 0 || off+idlen > len(data) {
			return nil, nil, errors.New("bruteforce: truncated id")
		}
		id := string(data[off : off+idlen])
		off += idlen
		if off+4*dim > len(data) {
			return nil, nil, errors.New("bruteforce: truncated vec")
		}
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = math.Float32frombits(getU32())
		}
		ids = append(ids, id)
		vecs = append(vecs, vec)
	}
	if off != len(data) {
		return nil, nil, fmt.Errorf("bruteforce: %d trailing bytes", len(data)-off)
	}
	return ids, vecs, nil
}
