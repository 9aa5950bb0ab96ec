package gamemath

import "github.com/solarlune/resolv"

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect builds a w x h box centered on (cx, cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// ObjectRect returns the bounds of a resolv object.
func ObjectRect(obj *resolv.Object) Rect {
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether a and b share interior area. Boxes that only
// touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom()
}

// CenterYOnTop returns the center Y that puts a box of height h flush on top of surfaceY.
func CenterYOnTop(surfaceY, h float64) float64 {
	return surfaceY - h/2
}
