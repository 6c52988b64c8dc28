package app

import (
	"github.com/charmbracelet/log"

	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/scene"
)

// Session wraps a match with its presentation settings. It applies config
// reloads between frames and logs what happened in each frame.
type Session struct {
	state   *game.GameState
	ui      scene.UIProperties
	palette scene.Palette
	reloads <-chan *config.File
	errs    <-chan error
	logger  *log.Logger

	started bool
	prev    game.Frame
}

// NewSession creates a session. reloads and errs may be nil.
func NewSession(state *game.GameState, ui scene.UIProperties, palette scene.Palette,
	reloads <-chan *config.File, errs <-chan error, logger *log.Logger) *Session {
	return &Session{
		state:   state,
		ui:      ui,
		palette: palette,
		reloads: reloads,
		errs:    errs,
		logger:  logger,
	}
}

// Step runs one frame of the match
func (s *Session) Step(frameTime float64, in game.Input, width, height int) game.Frame {
	s.pollReload()

	if !s.started {
		s.state.Start(width, height)
		s.started = true
		s.logger.Info("match ready", "width", width, "height", height, "win_score", s.state.Settings.WinScore)
	}

	f := s.state.Update(frameTime, in, width, height)
	s.detectEvents(f)
	s.prev = f
	return f
}

// Look returns the current font sizes and colors
func (s *Session) Look() (scene.UIProperties, scene.Palette) {
	return s.ui, s.palette
}

// Bindings returns the key layout in use
func (s *Session) Bindings() game.Bindings {
	return s.state.Settings.Keys
}

func (s *Session) pollReload() {
	select {
	case f := <-s.reloads:
		s.Apply(f)
	case err := <-s.errs:
		s.logger.Warn("config reload failed", "err", err)
	default:
	}
}

// Apply takes keys, font sizes and colors from a reloaded config.
// Game tuning only changes on restart.
func (s *Session) Apply(f *config.File) {
	b, err := f.Bindings()
	if err != nil {
		s.logger.Warn("ignoring reloaded keys", "err", err)
		return
	}
	p, err := f.Palette()
	if err != nil {
		s.logger.Warn("ignoring reloaded colors", "err", err)
		return
	}

	s.state.SetBindings(b)
	s.ui = f.UIProperties()
	s.palette = p
	s.logger.Info("config reloaded")
}

// detectEvents compares the new frame with the previous one and logs changes
func (s *Session) detectEvents(f game.Frame) {
	prev := s.prev

	if f.Phase != prev.Phase {
		s.logger.Info("phase changed", "from", prev.Phase, "to", f.Phase)
	}

	if f.Debug != prev.Debug {
		s.logger.Debug("debug overlay", "on", f.Debug)
	}

	scored := false
	if f.LeftScore > prev.LeftScore {
		s.logger.Info("point scored", "side", "left", "left", f.LeftScore, "right", f.RightScore)
		scored = true
	}
	if f.RightScore > prev.RightScore {
		s.logger.Info("point scored", "side", "right", "left", f.LeftScore, "right", f.RightScore)
		scored = true
	}

	if f.Winner != "" && prev.Winner == "" {
		s.logger.Info("match won", "winner", f.Winner, "left", f.LeftScore, "right", f.RightScore)
	}

	// Bounces only mean something during a rally
	if scored || prev.Phase != game.PhasePlaying || f.Phase != game.PhasePlaying {
		return
	}
	if (prev.Ball.VX > 0 && f.Ball.VX < 0) || (prev.Ball.VX < 0 && f.Ball.VX > 0) {
		s.logger.Debug("paddle hit", "x", f.Ball.X, "y", f.Ball.Y, "speed", f.Ball.Speed)
	}
	if (prev.Ball.VY > 0 && f.Ball.VY < 0) || (prev.Ball.VY < 0 && f.Ball.VY > 0) {
		s.logger.Debug("wall bounce", "x", f.Ball.X, "y", f.Ball.Y)
	}
}
