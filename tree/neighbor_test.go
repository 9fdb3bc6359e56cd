package tree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bruteNearest(points []Vector, q Vector) float64 {
	best := -1.0
	for _, p := range points {
		if d := q.SqrDist(p); best < 0 || d < best {
			best = d
		}
	}
	return best
}

func TestNearestNeighbor_Scenario(t *testing.T) {
	tr := scenarioTree(t)
	got, err := tr.NearestNeighbor(Vector{9, 2})
	require.NoError(t, err)
	assert.Equal(t, Vector{8, 1}, got.Point)
	assert.Equal(t, 2.0, got.Distance)
}

func TestNearestNeighbor_Empty(t *testing.T) {
	tr, err := New[Vector](2)
	require.NoError(t, err)
	_, err = tr.NearestNeighbor(Vector{0, 0})
	assert.ErrorIs(t, err, ErrEmptyTree)
}

func TestNearestNeighbor_DimensionMismatch(t *testing.T) {
	tr := scenarioTree(t)
	_, err := tr.NearestNeighbor(Vector{0, 0, 0})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNearestNeighbor_SinglePoint(t *testing.T) {
	tr, err := New[Vector](3)
	require.NoError(t, err)
	require.NoError(t, tr.Insert(Vector{1, 2, 3}))
	rnd := rand.New(rand.NewSource(3))
	for _, q := range randomVectors(rnd, 50, 3, 100) {
		got, err := tr.NearestNeighbor(q)
		require.NoError(t, err)
		assert.Equal(t, Vector{1, 2, 3}, got.Point)
	}
}

func TestNearestNeighbor_TieKeepsFirstCandidate(t *testing.T) {
	tr, err := New[Vector](2)
	require.NoError(t, err)
	require.NoError(t, tr.Insert(Vector{0, 0}))
	require.NoError(t, tr.Insert(Vector{2, 0}))

	got, err := tr.NearestNeighbor(Vector{1, 0})
	require.NoError(t, err)
	assert.Equal(t, Vector{0, 0}, got.Point)
	assert.Equal(t, 1.0, got.Distance)
}

func TestNearestNeighbor_TiePrefersNearSide(t *testing.T) {
	tr, err := New[Vector](2)
	require.NoError(t, err)
	for _, p := range []Vector{{5, 5}, {4, 0}, {6, 0}} {
		require.NoError(t, tr.Insert(p))
	}
	// The query sits on the root's cut plane, so the right child is the near side.
	got, err := tr.NearestNeighbor(Vector{5, 0})
	require.NoError(t, err)
	assert.Equal(t, Vector{6, 0}, got.Point)
	assert.Equal(t, 1.0, got.Distance)
}

func TestNearestNeighbor_Random(t *testing.T) {
	for _, dim := range []int{1, 2, 3, 5} {
		for _, population := range []int{1, 2, 10, 100, 500} {
			name := fmt.Sprintf("dim_%d_pop_%d", dim, population)
			t.Run(name, func(t *testing.T) {
				rnd := rand.New(rand.NewSource(int64(dim*1000 + population)))
				points := randomVectors(rnd, population, dim, 50)

				incremental, err := New[Vector](dim)
				require.NoError(t, err)
				for _, p := range points {
					require.NoError(t, incremental.Insert(p))
				}
				balanced, err := Build(dim, points, NoDepthLimit)
				require.NoError(t, err)

				for i := 0; i < 50; i++ {
					q := randomVectors(rnd, 1, dim, 60)[0]
					want := bruteNearest(points, q)
					for name, tr := range map[string]*Tree[Vector]{"incremental": incremental, "balanced": balanced} {
						got, err := tr.NearestNeighbor(q)
						require.NoError(t, err)
						assert.Equal(t, want, got.Distance, "%s query %v", name, q)
						assert.Equal(t, want, q.SqrDist(got.Point), "%s query %v", name, q)
					}
				}
			})
		}
	}
}
