package game

import "math"

// Serve direction components, applied as multiples of the current speed
const (
	ServeX = 0.8
	ServeY = 0.2
)

// Ball is the puck. Speed is the target magnitude, VX/VY its direction.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Speed  float64
}

func NewBall(x, y, radius float64) *Ball {
	return &Ball{X: x, Y: y, Radius: radius}
}

// Move advances the ball by one frame of velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// BounceHorizontal reverses horizontal direction (paddle bounce)
func (b *Ball) BounceHorizontal() {
	b.VX = -b.VX
}

// SetSpeed sets the target speed and rescales velocity so that
// |VX|+|VY| equals it. Signs are kept. A still ball stays still.
func (b *Ball) SetSpeed(speed float64) {
	b.Speed = speed
	norm := math.Abs(b.VX) + math.Abs(b.VY)
	if norm == 0 {
		return
	}
	scale := speed / norm
	b.VX *= scale
	b.VY *= scale
}

// Launch points the ball at one side using the current speed.
// The result is not normalized until the next SetSpeed.
func (b *Ball) Launch(towardLeft bool) {
	if towardLeft {
		b.VX = b.Speed * -ServeX
		b.VY = b.Speed * -ServeY
	} else {
		b.VX = b.Speed * ServeX
		b.VY = b.Speed * ServeY
	}
}

// Reset places the ball at the given point and drops it to speed
func (b *Ball) Reset(x, y, speed float64) {
	b.X = x
	b.Y = y
	b.SetSpeed(speed)
}

// ManhattanSpeed returns |VX|+|VY|
func (b *Ball) ManhattanSpeed() float64 {
	return math.Abs(b.VX) + math.Abs(b.VY)
}
