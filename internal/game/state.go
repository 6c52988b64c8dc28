package game

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/diegok/pong/internal/input"
)

// Phase is the top level mode of a match
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Input is the per-frame keyboard snapshot the game reads from.
// *input.State implements it.
type Input interface {
	IsKeyDown(k input.Key) bool
	IsKeyPressed(k input.Key) bool
	AnyKeyPressed() bool
}

// GameState owns the complete simulation. Update must not be called
// concurrently or re-entrantly.
type GameState struct {
	Settings   Settings
	Viewport   Viewport
	Left       *Paddle
	Right      *Paddle
	Ball       *Ball
	LeftScore  int
	RightScore int
	Phase      Phase
	Winner     string
	Debug      bool
	Tick       int

	rng *rand.Rand
}

// NewGameState creates a match in the NotStarted phase.
// A nil rng is replaced by a time seeded one.
func NewGameState(settings Settings, rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	gs := &GameState{
		Settings: settings,
		Left:     NewPaddle(SideLeft, settings.PaddleWidth, settings.PaddleHeight),
		Right:    NewPaddle(SideRight, settings.PaddleWidth, settings.PaddleHeight),
		Ball:     NewBall(0, 0, settings.BallRadius),
		Phase:    PhaseNotStarted,
		rng:      rng,
	}
	gs.Ball.Speed = settings.InitSpeed
	return gs
}

// Start lays out the court for the initial viewport and serves the ball
func (gs *GameState) Start(width, height int) {
	gs.updateViewport(width, height)
	gs.launchBall()
	gs.resetBall()
	gs.resetPaddles()
}

// SetBindings swaps the key layout, used for live config reloads
func (gs *GameState) SetBindings(b Bindings) {
	gs.Settings.Keys = b
}

// Update runs one frame. frameTime is in seconds; width and height are the
// current viewport size. The returned Frame is what presenters draw.
func (gs *GameState) Update(frameTime float64, in Input, width, height int) Frame {
	gs.Tick++
	gs.updateViewport(width, height)

	keys := gs.Settings.Keys
	if in.IsKeyPressed(keys.Debug) {
		gs.Debug = !gs.Debug
	}

	switch gs.Phase {
	case PhaseNotStarted:
		// Track resizes until play begins
		gs.Ball.X = gs.Viewport.CenterX
		gs.Ball.Y = gs.Viewport.CenterY
		gs.resetPaddles()

		if in.AnyKeyPressed() {
			gs.Phase = PhasePlaying
		}

	case PhasePlaying:
		if in.IsKeyPressed(keys.Reset) {
			gs.ResetGame()
			break
		}
		gs.movePaddles(frameTime, in)
		gs.moveBall()
		gs.checkWinner()

	case PhaseEnded:
		if in.IsKeyPressed(keys.Restart) {
			gs.ResetGame()
		}
	}

	return gs.Frame()
}

// ResetGame returns to the menu with zeroed scores and a fresh serve
func (gs *GameState) ResetGame() {
	gs.Phase = PhaseNotStarted
	gs.Winner = ""
	gs.LeftScore = 0
	gs.RightScore = 0
	gs.launchBall()
	gs.resetBall()
	gs.resetPaddles()
}

// updateViewport recomputes the grid and pins the paddles to the edges
func (gs *GameState) updateViewport(width, height int) {
	gs.Viewport = NewViewport(width, height)
	gs.Left.Pin(gs.Viewport)
	gs.Right.Pin(gs.Viewport)
}

// movePaddles applies held movement keys, frame rate independent
func (gs *GameState) movePaddles(frameTime float64, in Input) {
	keys := gs.Settings.Keys
	delta := frameTime * gs.Settings.PaddleSpeed
	minY := gs.Viewport.Y(PaddleMinSlices)
	maxY := gs.Viewport.Y(PaddleMaxSlices)

	if in.IsKeyDown(keys.LeftUp) {
		gs.Left.MoveUp(delta, minY)
	}
	if in.IsKeyDown(keys.LeftDown) {
		gs.Left.MoveDown(delta, maxY)
	}
	if in.IsKeyDown(keys.RightUp) {
		gs.Right.MoveUp(delta, minY)
	}
	if in.IsKeyDown(keys.RightDown) {
		gs.Right.MoveDown(delta, maxY)
	}
}

// moveBall runs collisions, scoring and integration in that order.
// Integration is one velocity step per frame, not scaled by frame time.
func (gs *GameState) moveBall() {
	b := gs.Ball
	left := gs.Left.Rect()
	right := gs.Right.Rect()

	if CircleIntersectsRect(b.X, b.Y, b.Radius, left) {
		b.SetSpeed(gs.Settings.FullSpeed)
		b.BounceHorizontal()
	}

	// Right paddle also flips the vertical component
	if CircleIntersectsRect(b.X, b.Y, b.Radius, right) {
		b.SetSpeed(gs.Settings.FullSpeed)
		b.BounceHorizontal()
		b.BounceVertical()
	}

	if b.Y <= b.Radius/2 || b.Y >= float64(gs.Viewport.Height)-b.Radius {
		b.SetSpeed(gs.Settings.FullSpeed)
		b.BounceVertical()
	}

	gs.CheckScore()

	b.Move()
}

// CheckScore awards a point when the ball leaves the court and serves again
func (gs *GameState) CheckScore() {
	// Ball past left edge - right player scores
	if gs.Ball.X <= 0 {
		gs.RightScore++
		gs.serve()
		return
	}

	// Ball past right edge - left player scores
	if gs.Ball.X >= float64(gs.Viewport.Width) {
		gs.LeftScore++
		gs.serve()
	}
}

func (gs *GameState) serve() {
	gs.launchBall()
	gs.resetBall()
}

// checkWinner ends the match once a side reaches the win score
func (gs *GameState) checkWinner() {
	switch {
	case gs.LeftScore >= gs.Settings.WinScore:
		gs.Phase = PhaseEnded
		gs.Winner = SideLeft.PlayerName()
	case gs.RightScore >= gs.Settings.WinScore:
		gs.Phase = PhaseEnded
		gs.Winner = SideRight.PlayerName()
	}
}

// launchBall picks a serve direction with even odds
func (gs *GameState) launchBall() {
	gs.Ball.Launch(gs.rng.Intn(2) == 0)
}

func (gs *GameState) resetBall() {
	gs.Ball.Reset(gs.Viewport.CenterX, gs.Viewport.CenterY, gs.Settings.InitSpeed)
}

func (gs *GameState) resetPaddles() {
	y := gs.Viewport.Y(6)
	gs.Left.Y = y
	gs.Right.Y = y
}

// IsGameOver returns true once a winner is decided
func (gs *GameState) IsGameOver() bool {
	return gs.Phase == PhaseEnded
}
