package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTree is returned by queries that need at least one point.
	ErrEmptyTree = errors.New("tree: empty tree")
	// ErrDimensionMismatch is returned when a point does not have the tree dimension.
	ErrDimensionMismatch = errors.New("tree: dimension mismatch")
	// ErrInvalidDimension is returned for a tree dimension below one.
	ErrInvalidDimension = errors.New("tree: invalid dimension")
	// ErrInvalidCoordinate is returned for NaN or infinite coordinates.
	ErrInvalidCoordinate = errors.New("tree: invalid coordinate")
	// ErrInvalidDepth is returned by Build for a negative max depth other than NoDepthLimit.
	ErrInvalidDepth = errors.New("tree: invalid max depth")
	// ErrInvariantViolation is returned by Validate.
	ErrInvariantViolation = errors.New("tree: invariant violation")
	// ErrDeleteUnsupported is returned by every Delete call.
	ErrDeleteUnsupported = fmt.Errorf("tree: delete: %w", errors.ErrUnsupported)
)
