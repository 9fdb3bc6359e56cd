package engine

import (
	"database/sql"
	"sync"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

var registerOnce sync.Once
var registerErr error

// Open opens a SQLite database using the modernc.org/sqlite driver, after
// registering the vector functions so every connection sees them.
//
// For file-based databases, pass a path like "./points.sqlite". For in-memory
// databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterVectorFunctions(); err != nil {
		return nil, err
	}
	return sql.Open("sqlite", dsn)
}

// RegisterVectorFunctions registers vec_l2 and vec_sqrdist with the driver.
// Connections opened before the first call do not see them.
func RegisterVectorFunctions() error {
	registerOnce.Do(func() { registerErr = registerFunctions() })
	return registerErr
}
