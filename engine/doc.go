// Package engine wraps the modernc.org/sqlite driver for this module: it
// opens connections with the vector scalar functions registered and defines
// the BLOB layout vectors are stored in.
package engine
