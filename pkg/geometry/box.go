// Package geometry provides axis-aligned bounding box primitives.
//
// All coordinates are IEEE-754 double precision. Boxes use a top-left
// corner plus width/height representation; a box with zero width or
// height is empty.
package geometry

// Box is an axis-aligned bounding box.
// (X, Y) is the top-left corner; W and H are non-negative.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// NewBox creates a box from its top-left corner and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the box covers no area.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Intersect computes the intersection of two boxes.
// The second return value is false when the boxes do not overlap.
// Edge-touching boxes do not overlap: the overlap test is strict.
func Intersect(a, b Box) (Box, bool) {
	x := max(a.X, b.X)
	y := max(a.Y, b.Y)
	w := min(a.X+a.W, b.X+b.W) - x
	h := min(a.Y+a.H, b.Y+b.H) - y

	if w <= 0 || h <= 0 {
		return Box{}, false
	}

	return Box{X: x, Y: y, W: w, H: h}, true
}
