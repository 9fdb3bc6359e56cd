package tree

// absent marks an empty child slot or an empty tree root.
const absent int32 = -1

type node[P Point[P]] struct {
	point    P
	cut      int
	left     int32
	right    int32
	centroid bool
}

// signedAxisDistance is negative when q belongs to the left subtree.
func (n *node[P]) signedAxisDistance(q P) float64 {
	return q.Coord(n.cut) - n.point.Coord(n.cut)
}

// Node is a read-only view of a tree node.
type Node[P Point[P]] struct {
	t   *Tree[P]
	idx int32
}

func (n Node[P]) get() *node[P] { return &n.t.nodes[n.idx] }

// Point returns the point stored at the node.
func (n Node[P]) Point() P { return n.get().point }

// CutDim returns the coordinate axis compared at the node.
func (n Node[P]) CutDim() int { return n.get().cut }

// IsCentroid reports whether the node is a quantization leaf produced by Build.
func (n Node[P]) IsCentroid() bool { return n.get().centroid }

// IsLeaf reports whether the node has no children.
func (n Node[P]) IsLeaf() bool {
	nd := n.get()
	return nd.left == absent && nd.right == absent
}

// Left returns the left child, if any.
func (n Node[P]) Left() (Node[P], bool) {
	return n.child(n.get().left)
}

// Right returns the right child, if any.
func (n Node[P]) Right() (Node[P], bool) {
	return n.child(n.get().right)
}

// SignedAxisDistance returns q[cut] - position[cut].
func (n Node[P]) SignedAxisDistance(q P) float64 {
	return n.get().signedAxisDistance(q)
}

func (n Node[P]) child(idx int32) (Node[P], bool) {
	if idx == absent {
		return Node[P]{}, false
	}
	return Node[P]{t: n.t, idx: idx}, true
}
