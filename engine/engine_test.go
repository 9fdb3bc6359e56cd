package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInMemory(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE t(x INTEGER)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO t(x) VALUES (1),(2),(3)")
	require.NoError(t, err)
}

func TestEncodeDecodeVector(t *testing.T) {
	orig := []float32{0.0, 1.5, -2.25, 3.75}
	b := EncodeVector(orig)
	assert.Len(t, b, 16)
	decoded, err := DecodeVector(b)
	require.NoError(t, err)
	assert.Equal(t, orig, decoded)

	assert.Nil(t, EncodeVector(nil))
	vec, err := DecodeVector(nil)
	require.NoError(t, err)
	assert.Nil(t, vec)

	_, err = DecodeVector([]byte{1, 2, 3})
	assert.Error(t, err)
}
