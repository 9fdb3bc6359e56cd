package tree

// AppendLeaves appends the point of every childless node to dst, left
// subtree before right, and returns the extended slice.
func (t *Tree[P]) AppendLeaves(dst []P) []P {
	if t.root == absent {
		return dst
	}
	return t.appendLeaves(t.root, dst)
}

// Leaves returns the leaf points in left-to-right order.
func (t *Tree[P]) Leaves() []P {
	return t.AppendLeaves(nil)
}

func (t *Tree[P]) appendLeaves(idx int32, dst []P) []P {
	n := &t.nodes[idx]
	if n.left == absent && n.right == absent {
		return append(dst, n.point)
	}
	if n.left != absent {
		dst = t.appendLeaves(n.left, dst)
	}
	if n.right != absent {
		dst = t.appendLeaves(n.right, dst)
	}
	return dst
}
