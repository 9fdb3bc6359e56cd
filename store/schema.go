package store

import (
	"context"
	"database/sql"
)

const pointsSchema = `
CREATE TABLE IF NOT EXISTS points (
    dataset_id TEXT NOT NULL,
    id         TEXT NOT NULL,
    dim        INTEGER NOT NULL,
    embedding  BLOB NOT NULL,
    PRIMARY KEY(dataset_id, id)
);
`

// EnsureSchema creates the points table if it does not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, pointsSchema)
	return err
}
