package game

import "github.com/diegok/pong/internal/input"

// Default tuning values
const (
	DefaultWinScore     = 10
	DefaultPaddleSpeed  = 1000.0 // units per second
	DefaultInitSpeed    = 8.0    // units per frame after a serve
	DefaultFullSpeed    = 12.0   // units per frame after any bounce
	DefaultPaddleWidth  = 50.0
	DefaultPaddleHeight = 250.0
	DefaultBallRadius   = 20.0
)

// Paddle travel band, in height slices
const (
	PaddleMinSlices = 1.6
	PaddleMaxSlices = 10.4
)

// Bindings maps game actions to keys
type Bindings struct {
	LeftUp    input.Key
	LeftDown  input.Key
	RightUp   input.Key
	RightDown input.Key
	Reset     input.Key
	Restart   input.Key
	Debug     input.Key
}

// DefaultBindings returns the stock key layout
func DefaultBindings() Bindings {
	return Bindings{
		LeftUp:    input.KeyW,
		LeftDown:  input.KeyS,
		RightUp:   input.KeyUp,
		RightDown: input.KeyDown,
		Reset:     input.KeyR,
		Restart:   input.KeyEnter,
		Debug:     input.KeyF3,
	}
}

// Settings holds the tunables of a match
type Settings struct {
	WinScore     int
	PaddleSpeed  float64
	InitSpeed    float64
	FullSpeed    float64
	PaddleWidth  float64
	PaddleHeight float64
	BallRadius   float64
	Keys         Bindings
}

// DefaultSettings returns the stock game tuning
func DefaultSettings() Settings {
	return Settings{
		WinScore:     DefaultWinScore,
		PaddleSpeed:  DefaultPaddleSpeed,
		InitSpeed:    DefaultInitSpeed,
		FullSpeed:    DefaultFullSpeed,
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		BallRadius:   DefaultBallRadius,
		Keys:         DefaultBindings(),
	}
}
