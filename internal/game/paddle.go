package game

// Side identifies the left or right player
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

// PlayerName is the display name used for the winner
func (s Side) PlayerName() string {
	if s == SideLeft {
		return "Left Player"
	}
	return "Right Player"
}

// Paddle edge offsets, in width slices
const (
	LeftPaddleSlices  = 0.5
	RightPaddleSlices = 11.5
)

// Paddle is a player bat, X/Y is its center
type Paddle struct {
	Side   Side
	X, Y   float64
	Width  float64
	Height float64
}

func NewPaddle(side Side, width, height float64) *Paddle {
	return &Paddle{
		Side:   side,
		Width:  width,
		Height: height,
	}
}

// Pin fixes the horizontal position relative to the viewport edge
func (p *Paddle) Pin(v Viewport) {
	if p.Side == SideLeft {
		p.X = v.X(LeftPaddleSlices)
	} else {
		p.X = v.X(RightPaddleSlices)
	}
}

// MoveUp moves by delta while the paddle is still below minY.
// The check runs before the move so one frame of overshoot is possible.
func (p *Paddle) MoveUp(delta, minY float64) {
	if p.Y > minY {
		p.Y -= delta
	}
}

// MoveDown moves by delta while the paddle is still above maxY
func (p *Paddle) MoveDown(delta, maxY float64) {
	if p.Y < maxY {
		p.Y += delta
	}
}

func (p *Paddle) Rect() Rect {
	return RectFromCenter(p.X, p.Y, p.Width, p.Height)
}

func (p *Paddle) TopY() float64 {
	return p.Y - p.Height/2
}

func (p *Paddle) BottomY() float64 {
	return p.Y + p.Height/2
}
