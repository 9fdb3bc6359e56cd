package bruteforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Query(t *testing.T) {
	idx := &Index{}
	require.NoError(t, idx.Build(
		[]string{"a", "b", "c", "d"},
		[][]float32{{0, 0}, {3, 4}, {1, 1}, {-1, -1}},
	))

	ids, scores, err := idx.Query([]float32{0, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d"}, ids, "ties keep build order")
	require.Len(t, scores, 3)
	assert.InDelta(t, 0, scores[0], 1e-6)
	assert.InDelta(t, 1.4142135, scores[1], 1e-6)

	ids, _, err = idx.Query([]float32{3, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids)

	_, _, err = idx.Query([]float32{1}, 1)
	assert.Error(t, err)
}

func TestIndex_BuildErrors(t *testing.T) {
	idx := &Index{}
	assert.Error(t, idx.Build([]string{"a"}, nil))
	assert.Error(t, idx.Build([]string{"a", "b"}, [][]float32{{1, 2}, {1}}))
	assert.Error(t, idx.Build([]string{"a"}, [][]float32{{}}))

	require.NoError(t, idx.Build(nil, nil))
	ids, scores, err := idx.Query([]float32{1}, 1)
	require.NoError(t, err)
	assert.Nil(t, ids)
	assert.Nil(t, scores)
}

func TestIndex_Binary(t *testing.T) {
	idx := &Index{}
	require.NoError(t, idx.Build([]string{"x", "yy"}, [][]float32{{1.5, -2}, {0, 8}}))
	data, err := idx.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 8+(4+1+8)+(4+2+8))

	restored := &Index{}
	require.NoError(t, restored.UnmarshalBinary(data))
	ids, vecs := restored.Entries()
	assert.Equal(t, []string{"x", "yy"}, ids)
	assert.Equal(t, [][]float32{{1.5, -2}, {0, 8}}, vecs)
	assert.Equal(t, 2, restored.Dim())

	assert.Error(t, restored.UnmarshalBinary(data[:len(data)-1]))
	assert.Error(t, restored.UnmarshalBinary(append(data, 0)))
	assert.Error(t, restored.UnmarshalBinary([]byte{1, 2}))
}

func TestIndex_BinaryEmpty(t *testing.T) {
	idx := &Index{}
	data, err := idx.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 8)

	restored := &Index{}
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.Equal(t, 0, restored.Len())
}
