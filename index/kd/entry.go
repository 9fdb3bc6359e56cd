package kd

import "github.com/viant/kdtree/tree"

// entry tags a vector with its position in the id list; centroids use -1.
type entry struct {
	vec tree.Vector
	pos int
}

func (e entry) Dim() int                { return len(e.vec) }
func (e entry) Coord(i int) float64     { return e.vec.Coord(i) }
func (e entry) SqrDist(o entry) float64 { return e.vec.SqrDist(o.vec) }
func (e entry) Equal(o entry) bool      { return e.vec.Equal(o.vec) }
func (e entry) Div(scalar float64)      { e.vec.Div(scalar) }

func (e entry) New(coords []float64) entry {
	return entry{vec: e.vec.New(coords), pos: -1}
}
