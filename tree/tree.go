package tree

import (
	"fmt"
	"math"
)

// Tree is a KD-tree over points of dimension Dim.
type Tree[P Point[P]] struct {
	dim     int
	nodes   []node[P]
	root    int32
	count   int
	relaxed bool
}

// New returns an empty tree for points of the given dimension.
func New[P Point[P]](dim int) (*Tree[P], error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	return &Tree[P]{dim: dim, root: absent}, nil
}

// Dim returns the tree dimension.
func (t *Tree[P]) Dim() int { return t.dim }

// Len returns the number of points the tree was given. For balanced builds
// this includes points folded into centroid leaves.
func (t *Tree[P]) Len() int { return t.count }

// NodeCount returns the number of nodes in the tree.
func (t *Tree[P]) NodeCount() int { return len(t.nodes) }

// Root returns the root node, if any.
func (t *Tree[P]) Root() (Node[P], bool) {
	if t.root == absent {
		return Node[P]{}, false
	}
	return Node[P]{t: t, idx: t.root}, true
}

// Insert adds p to the tree. The counter is incremented for every accepted
// point, duplicates included.
func (t *Tree[P]) Insert(p P) error {
	if err := t.check(p); err != nil {
		return err
	}
	t.count++
	if t.root == absent {
		t.root = t.add(p, 0)
		return nil
	}
	parent := t.insertionParent(p)
	cut := (t.nodes[parent].cut + 1) % t.dim
	if t.nodes[parent].signedAxisDistance(p) < 0 {
		if t.nodes[parent].left != absent {
			panic("tree: insert: left slot already occupied")
		}
		child := t.add(p, cut)
		t.nodes[parent].left = child
		return nil
	}
	if t.nodes[parent].right != absent {
		panic("tree: insert: right slot already occupied")
	}
	child := t.add(p, cut)
	t.nodes[parent].right = child
	return nil
}

// Delete is not supported and always returns ErrDeleteUnsupported.
func (t *Tree[P]) Delete(P) error {
	return ErrDeleteUnsupported
}

// InsertionParent returns the node whose empty child slot p would occupy if
// it were inserted.
func (t *Tree[P]) InsertionParent(p P) (Node[P], error) {
	if err := t.check(p); err != nil {
		return Node[P]{}, err
	}
	if t.root == absent {
		return Node[P]{}, ErrEmptyTree
	}
	return Node[P]{t: t, idx: t.insertionParent(p)}, nil
}

func (t *Tree[P]) insertionParent(p P) int32 {
	next, last := t.root, absent
	for next != absent {
		last = next
		if t.nodes[last].signedAxisDistance(p) < 0 {
			next = t.nodes[last].left
		} else {
			next = t.nodes[last].right
		}
	}
	return last
}

// Contains reports whether a point equal to p is stored in the tree.
//
// The search follows a single descent path and relies on the ordering
// invariant. On balanced trees, where equal keys may sit on either side, an
// exact tie on the cut dimension explores both subtrees. Points folded into
// centroid leaves are not stored and are never found.
func (t *Tree[P]) Contains(p P) (bool, error) {
	if err := t.check(p); err != nil {
		return false, err
	}
	return t.contains(t.root, p), nil
}

func (t *Tree[P]) contains(idx int32, p P) bool {
	for idx != absent {
		n := &t.nodes[idx]
		if p.Equal(n.point) {
			return true
		}
		d := n.signedAxisDistance(p)
		if d < 0 {
			idx = n.left
			continue
		}
		if d == 0 && t.relaxed && t.contains(n.left, p) {
			return true
		}
		idx = n.right
	}
	return false
}

func (t *Tree[P]) add(p P, cut int) int32 {
	t.nodes = append(t.nodes, node[P]{point: p, cut: cut, left: absent, right: absent})
	return int32(len(t.nodes) - 1)
}

func (t *Tree[P]) check(p P) error {
	if p.Dim() != t.dim {
		return fmt.Errorf("%w: point has %d coordinates, tree has %d", ErrDimensionMismatch, p.Dim(), t.dim)
	}
	for i := 0; i < t.dim; i++ {
		if c := p.Coord(i); math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: %v at index %d", ErrInvalidCoordinate, c, i)
		}
	}
	return nil
}
