// Package roi provides the region-of-interest rectangle used for motion
// detection. Rectangles are defined by two corner points in source pixel
// coordinates and may arrive in any corner order.
package roi

import "image"

// Rect is a rectangular region of interest with integer pixel bounds.
// A zero Rect is a valid "no region" value.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// New creates a normalized Rect from two corner points given in any order.
func New(x1, y1, x2, y2 int) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}.Normalize()
}

// Normalize returns a Rect with X1<=X2 and Y1<=Y2, swapping coordinates
// as needed.
func (r Rect) Normalize() Rect {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

// Clamp returns the Rect normalized and clipped to [0,width]x[0,height].
func (r Rect) Clamp(width, height int) Rect {
	r = r.Normalize()
	r.X1 = max(0, r.X1)
	r.Y1 = max(0, r.Y1)
	r.X2 = min(width, r.X2)
	r.Y2 = min(height, r.Y2)
	return r
}

// Empty reports whether the Rect covers no pixels. A clamped rectangle may
// become empty when it lies entirely outside the frame; that is a valid
// "no region" value, not an error.
func (r Rect) Empty() bool {
	return r.X2 <= r.X1 || r.Y2 <= r.Y1
}

// Width returns the horizontal extent in pixels.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the vertical extent in pixels.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Area returns the pixel count covered by the Rect.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width() * r.Height()
}

// ToImageRect converts to a stdlib image.Rectangle for use with gocv regions.
func (r Rect) ToImageRect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}
