package tree

import (
	"fmt"
	"math"
)

type bound struct {
	lo, hi   float64
	hiStrict bool
}

// Validate checks the structural and ordering invariants of the tree: every
// node is reachable exactly once, cut dimensions rotate from zero at the root,
// and every stored point lies inside the region carved out by its ancestors.
// Incrementally built trees are held to strict left bounds, balanced trees to
// inclusive ones, and centroid leaves are exempt from the region check.
func (t *Tree[P]) Validate() error {
	if t.root == absent {
		if len(t.nodes) != 0 {
			return fmt.Errorf("%w: empty tree holds %d nodes", ErrInvariantViolation, len(t.nodes))
		}
		return nil
	}
	if !t.relaxed && t.count != len(t.nodes) {
		return fmt.Errorf("%w: count %d, nodes %d", ErrInvariantViolation, t.count, len(t.nodes))
	}
	bounds := make([]bound, t.dim)
	for i := range bounds {
		bounds[i] = bound{lo: math.Inf(-1), hi: math.Inf(+1)}
	}
	visited := make([]bool, len(t.nodes))
	if err := t.validate(t.root, 0, bounds, visited); err != nil {
		return err
	}
	for i, seen := range visited {
		if !seen {
			return fmt.Errorf("%w: node %d unreachable", ErrInvariantViolation, i)
		}
	}
	return nil
}

func (t *Tree[P]) validate(idx int32, cut int, bounds []bound, visited []bool) error {
	if visited[idx] {
		return fmt.Errorf("%w: node %d reached twice", ErrInvariantViolation, idx)
	}
	visited[idx] = true
	n := &t.nodes[idx]
	if n.cut != cut {
		return fmt.Errorf("%w: node %d has cut %d, want %d", ErrInvariantViolation, idx, n.cut, cut)
	}
	if !n.centroid {
		for i, b := range bounds {
			x := n.point.Coord(i)
			if x < b.lo || x > b.hi || (b.hiStrict && x == b.hi) {
				return fmt.Errorf("%w: node %d coordinate %d = %v outside [%v, %v]", ErrInvariantViolation, idx, i, x, b.lo, b.hi)
			}
		}
	}
	key := n.point.Coord(n.cut)
	next := (cut + 1) % t.dim
	if n.left != absent {
		sub := append([]bound(nil), bounds...)
		sub[n.cut].hi = key
		sub[n.cut].hiStrict = !t.relaxed
		if err := t.validate(n.left, next, sub, visited); err != nil {
			return err
		}
	}
	if n.right != absent {
		sub := append([]bound(nil), bounds...)
		sub[n.cut].lo = key
		if err := t.validate(n.right, next, sub, visited); err != nil {
			return err
		}
	}
	return nil
}
