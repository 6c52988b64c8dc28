package game

import "math"

// Rect is an axis aligned rectangle given by its top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromCenter builds a rectangle around a center point
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// CircleIntersectsRect reports whether the circle at (cx, cy) touches r
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	halfW := r.W / 2
	halfH := r.H / 2
	dx := math.Abs(cx - (r.X + halfW))
	dy := math.Abs(cy - (r.Y + halfH))

	if dx > halfW+radius || dy > halfH+radius {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}

	// Corner region
	cornerX := dx - halfW
	cornerY := dy - halfH
	return cornerX*cornerX+cornerY*cornerY <= radius*radius
}
