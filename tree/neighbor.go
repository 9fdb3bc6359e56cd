package tree

// Neighbor is the result of a nearest-neighbour search.
type Neighbor[P Point[P]] struct {
	Point P
	// Distance is the squared distance to the query.
	Distance float64
}

// NearestNeighbor returns the stored point closest to q.
//
// The near child is visited first; the far child only when the squared
// distance to the cut plane is strictly smaller than the best squared
// distance so far, so exact ties keep the near-side candidate.
func (t *Tree[P]) NearestNeighbor(q P) (Neighbor[P], error) {
	if err := t.check(q); err != nil {
		return Neighbor[P]{}, err
	}
	if t.root == absent {
		return Neighbor[P]{}, ErrEmptyTree
	}
	root := t.nodes[t.root].point
	best := Neighbor[P]{Point: root, Distance: q.SqrDist(root)}
	t.nearest(t.root, q, &best)
	return best, nil
}

func (t *Tree[P]) nearest(idx int32, q P, best *Neighbor[P]) {
	n := &t.nodes[idx]
	if d := q.SqrDist(n.point); d < best.Distance {
		best.Point = n.point
		best.Distance = d
	}
	axis := n.signedAxisDistance(q)
	near, far := n.right, n.left
	if axis < 0 {
		near, far = n.left, n.right
	}
	if near != absent {
		t.nearest(near, q, best)
	}
	if far != absent && axis*axis < best.Distance {
		t.nearest(far, q, best)
	}
}
