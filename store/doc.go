// Package store persists named datasets of (id, vector) points in SQLite so
// they can be reloaded into a KD-tree or an index.Index.
package store
