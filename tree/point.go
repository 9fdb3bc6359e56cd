package tree

import "github.com/viant/vec/search"

// Point is the capability a coordinate type must provide to be stored in a
// Tree. P is the implementing type itself.
type Point[P any] interface {
	// Dim returns the number of coordinates.
	Dim() int
	// Coord returns the coordinate at index i, 0 <= i < Dim().
	Coord(i int) float64
	// SqrDist returns the sum of squared per-coordinate differences.
	SqrDist(other P) float64
	// Equal reports value equality.
	Equal(other P) bool
	// Div divides every coordinate by scalar in place.
	Div(scalar float64)
	// New returns a point of the same kind holding coords.
	New(coords []float64) P
}

// Vector is a float32 point.
type Vector []float32

// NewVector returns a vector holding coords.
func NewVector(coords ...float32) Vector {
	return Vector(coords)
}

// Dim returns the number of coordinates.
func (v Vector) Dim() int { return len(v) }

// Coord returns the i-th coordinate.
func (v Vector) Coord(i int) float64 { return float64(v[i]) }

// SqrDist returns the squared Euclidean distance accumulated in float64.
func (v Vector) SqrDist(o Vector) float64 {
	var sum float64
	for i := range v {
		d := float64(v[i]) - float64(o[i])
		sum += d * d
	}
	return sum
}

// Equal reports whether both vectors hold the same coordinates.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Div divides every coordinate by scalar in place.
func (v Vector) Div(scalar float64) {
	for i := range v {
		v[i] = float32(float64(v[i]) / scalar)
	}
}

// New returns a freshly allocated vector holding coords.
func (v Vector) New(coords []float64) Vector {
	out := make(Vector, len(coords))
	for i, c := range coords {
		out[i] = float32(c)
	}
	return out
}

// Distance returns the Euclidean distance between v and o.
func (v Vector) Distance(o Vector) float32 {
	return search.Float32s(v).EuclideanDistance([]float32(o))
}
