package tree

import (
	"cmp"
	"fmt"
	"slices"
)

// NoDepthLimit disables the centroid cutoff in Build.
const NoDepthLimit = -1

// Build returns a balanced tree over points. Each level stable-sorts its
// points on the cut dimension depth%dim and stores the element at index
// len/2 at the node; lower indexes go left, higher indexes go right. Equal
// keys next to the median may therefore land on either side, so heavily
// duplicated data does not split evenly.
//
// When depth reaches maxDepth the remaining points are replaced by a single
// leaf holding their coordinate-wise mean. Pass NoDepthLimit to keep every
// point. The input slice is not modified.
func Build[P Point[P]](dim int, points []P, maxDepth int) (*Tree[P], error) {
	t, err := New[P](dim)
	if err != nil {
		return nil, err
	}
	if maxDepth < NoDepthLimit {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, maxDepth)
	}
	for i, p := range points {
		if err := t.check(p); err != nil {
			return nil, fmt.Errorf("tree: build: point %d: %w", i, err)
		}
	}
	t.relaxed = true
	t.nodes = make([]node[P], 0, len(points))
	t.root = t.build(slices.Clone(points), 0, maxDepth)
	t.count = len(points)
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("tree: build: %w", err)
	}
	return t, nil
}

func (t *Tree[P]) build(points []P, depth, maxDepth int) int32 {
	if len(points) == 0 {
		return absent
	}
	cut := depth % t.dim
	if depth == maxDepth {
		idx := t.add(centroid(points), cut)
		t.nodes[idx].centroid = true
		return idx
	}
	slices.SortStableFunc(points, func(a, b P) int {
		return cmp.Compare(a.Coord(cut), b.Coord(cut))
	})
	med := len(points) / 2
	left := t.build(points[:med], depth+1, maxDepth)
	right := t.build(points[med+1:], depth+1, maxDepth)
	idx := t.add(points[med], cut)
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

// centroid returns the coordinate-wise mean of a non-empty point set.
func centroid[P Point[P]](points []P) P {
	sum := make([]float64, points[0].Dim())
	for _, p := range points {
		for i := range sum {
			sum[i] += p.Coord(i)
		}
	}
	c := points[0].New(sum)
	c.Div(float64(len(points)))
	return c
}
