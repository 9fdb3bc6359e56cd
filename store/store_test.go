package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/kdtree/engine"
)

func openStore(t *testing.T) (*sql.DB, *PointStore) {
	t.Helper()
	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	// A single connection keeps every statement on the same in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	s, err := New(context.Background(), db)
	require.NoError(t, err)
	return db, s
}

func TestPointStore_AddLoad(t *testing.T) {
	ctx := context.Background()
	_, s := openStore(t)

	points := []Point{
		{ID: "a", Vector: []float32{2, 3}},
		{ID: "b", Vector: []float32{5, 4}},
		{ID: "c", Vector: []float32{9, 6}},
	}
	require.NoError(t, s.AddPoints(ctx, "demo", points))
	require.NoError(t, s.AddPoints(ctx, "other", []Point{{ID: "a", Vector: []float32{1, 1, 1}}}))

	got, err := s.LoadPoints(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, points, got)

	n, err := s.Count(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	dim, err := s.Dim(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, 3, dim)

	dim, err = s.Dim(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, dim)

	ids, vecs := Split(got)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Equal(t, []float32{5, 4}, vecs[1])
}

func TestPointStore_Validation(t *testing.T) {
	ctx := context.Background()
	_, s := openStore(t)

	require.NoError(t, s.AddPoints(ctx, "demo", []Point{{ID: "a", Vector: []float32{1, 2}}}))
	err := s.AddPoints(ctx, "demo", []Point{{ID: "b", Vector: []float32{1, 2, 3}}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Error(t, s.AddPoints(ctx, "demo", []Point{{Vector: []float32{1, 2}}}))

	// A failing batch is rolled back as a whole.
	err = s.AddPoints(ctx, "demo", []Point{{ID: "c", Vector: []float32{0, 0}}, {ID: "d", Vector: []float32{0}}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	n, err := s.Count(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPointStore_OrderByDistance(t *testing.T) {
	ctx := context.Background()
	db, s := openStore(t)
	require.NoError(t, s.AddPoints(ctx, "demo", []Point{
		{ID: "far", Vector: []float32{9, 6}},
		{ID: "near", Vector: []float32{8, 1}},
		{ID: "mid", Vector: []float32{7, 2}},
	}))

	rows, err := db.QueryContext(ctx, `SELECT id FROM points WHERE dataset_id = ? ORDER BY vec_sqrdist(embedding, ?)`, "demo", engine.EncodeVector([]float32{9, 2}))
	require.NoError(t, err)
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"near", "mid", "far"}, ids)
}

func TestNew_NilDB(t *testing.T) {
	_, err := New(context.Background(), nil)
	assert.Error(t, err)
}
