package game

import "github.com/diegok/pong/internal/input"

// BallState is the drawable view of the ball
type BallState struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Speed  float64
}

// Frame is a read-only snapshot of the game after an update
type Frame struct {
	Tick        int
	Viewport    Viewport
	LeftPaddle  Rect
	RightPaddle Rect
	Ball        BallState
	LeftScore   int
	RightScore  int
	WinScore    int
	Phase       Phase
	Winner      string
	Debug       bool
	RestartKey  input.Key
}

// Frame converts the current state into a presenter snapshot
func (gs *GameState) Frame() Frame {
	return Frame{
		Tick:        gs.Tick,
		Viewport:    gs.Viewport,
		LeftPaddle:  gs.Left.Rect(),
		RightPaddle: gs.Right.Rect(),
		Ball: BallState{
			X:      gs.Ball.X,
			Y:      gs.Ball.Y,
			VX:     gs.Ball.VX,
			VY:     gs.Ball.VY,
			Radius: gs.Ball.Radius,
			Speed:  gs.Ball.Speed,
		},
		LeftScore:  gs.LeftScore,
		RightScore: gs.RightScore,
		WinScore:   gs.Settings.WinScore,
		Phase:      gs.Phase,
		Winner:     gs.Winner,
		Debug:      gs.Debug,
		RestartKey: gs.Settings.Keys.Restart,
	}
}
