package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/viant/kdtree/engine"
)

// ErrDimensionMismatch is returned when a dataset would mix dimensions.
var ErrDimensionMismatch = errors.New("store: dimension mismatch")

// Point is a stored vector.
type Point struct {
	ID     string
	Vector []float32
}

// PointStore is a SQLite-backed point store.
type PointStore struct {
	db *sql.DB
}

// New creates a PointStore and ensures its schema exists.
func New(ctx context.Context, db *sql.DB) (*PointStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	return &PointStore{db: db}, nil
}

// AddPoints inserts or replaces points in dataset within one transaction.
// Every point needs an id and must match the dimension of the dataset.
func (s *PointStore) AddPoints(ctx context.Context, dataset string, points []Point) error {
	if len(points) == 0 {
		return nil
	}
	dim, err := s.Dim(ctx, dataset)
	if err != nil {
		return err
	}
	if dim == 0 {
		dim = len(points[0].Vector)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO points(dataset_id, id, dim, embedding) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range points {
		if p.ID == "" {
			return fmt.Errorf("store: point id must be set")
		}
		if len(p.Vector) == 0 || len(p.Vector) != dim {
			return fmt.Errorf("%w: point %s has %d coordinates, dataset %s has %d", ErrDimensionMismatch, p.ID, len(p.Vector), dataset, dim)
		}
		if _, err := stmt.ExecContext(ctx, dataset, p.ID, dim, engine.EncodeVector(p.Vector)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadPoints returns every point of dataset ordered by insertion.
func (s *PointStore) LoadPoints(ctx context.Context, dataset string) ([]Point, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, embedding FROM points WHERE dataset_id = ? ORDER BY rowid`, dataset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Point
	for rows.Next() {
		var p Point
		var blob []byte
		if err := rows.Scan(&p.ID, &blob); err != nil {
			return nil, err
		}
		if p.Vector, err = engine.DecodeVector(blob); err != nil {
			return nil, fmt.Errorf("store: point %s: %w", p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Count returns the number of points in dataset.
func (s *PointStore) Count(ctx context.Context, dataset string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM points WHERE dataset_id = ?`, dataset).Scan(&n)
	return n, err
}

// Dim returns the dimension of dataset, zero when it is empty.
func (s *PointStore) Dim(ctx context.Context, dataset string) (int, error) {
	var dim sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MAX(dim) FROM points WHERE dataset_id = ?`, dataset).Scan(&dim)
	if err != nil {
		return 0, err
	}
	return int(dim.Int64), nil
}

// Split returns the ids and vectors of points as parallel slices.
func Split(points []Point) ([]string, [][]float32) {
	ids := make([]string, len(points))
	vecs := make([][]float32, len(points))
	for i, p := range points {
		ids[i] = p.ID
		vecs[i] = p.Vector
	}
	return ids, vecs
}
