package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/input"
	"github.com/diegok/pong/internal/logging"
	"github.com/diegok/pong/internal/scene"
)

const frameTime = 1.0 / 60.0

func newTestSession(t *testing.T, reloads chan *config.File, errs chan error) (*Session, *game.GameState, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	state := game.NewGameState(game.DefaultSettings(), rand.New(rand.NewSource(1)))
	s := NewSession(state, scene.DefaultUIProperties(), scene.DefaultPalette(), reloads, errs, logging.New(&buf, log.DebugLevel))
	return s, state, &buf
}

func step(s *Session, in *input.State) game.Frame {
	f := s.Step(frameTime, in, 1200, 1200)
	in.EndFrame()
	return f
}

// startMatch leaves the menu
func startMatch(t *testing.T, s *Session, in *input.State) {
	t.Helper()
	step(s, in)
	in.MarkAnyPressed()
	if f := step(s, in); f.Phase != game.PhasePlaying {
		t.Fatalf("expected playing, got %v", f.Phase)
	}
}

func TestSession_StartsOnFirstStep(t *testing.T) {
	s, state, buf := newTestSession(t, nil, nil)
	in := input.NewState()

	f := step(s, in)
	if f.Viewport.Width != 1200 || state.Ball.X != 600 {
		t.Errorf("expected court laid out on first step, got %+v", f.Viewport)
	}
	if !strings.Contains(buf.String(), "match ready") {
		t.Errorf("expected start record, got %q", buf.String())
	}
}

func TestSession_LogsPhaseChange(t *testing.T) {
	s, _, buf := newTestSession(t, nil, nil)
	in := input.NewState()

	startMatch(t, s, in)

	if !strings.Contains(buf.String(), "phase changed") || !strings.Contains(buf.String(), "to=playing") {
		t.Errorf("expected phase change record, got %q", buf.String())
	}
}

func TestSession_LogsScoreAndWinner(t *testing.T) {
	s, state, buf := newTestSession(t, nil, nil)
	in := input.NewState()
	startMatch(t, s, in)

	state.Ball.X = -5
	state.Ball.Y = 100
	f := step(s, in)
	if f.RightScore != 1 {
		t.Fatalf("expected right to score, got %d", f.RightScore)
	}
	if !strings.Contains(buf.String(), "point scored") || !strings.Contains(buf.String(), "side=right") {
		t.Errorf("expected score record, got %q", buf.String())
	}

	state.RightScore = state.Settings.WinScore - 1
	state.Ball.X = -5
	state.Ball.Y = 100
	f = step(s, in)
	if f.Phase != game.PhaseEnded {
		t.Fatalf("expected match to end, got %v", f.Phase)
	}
	if !strings.Contains(buf.String(), "match won") || !strings.Contains(buf.String(), "Right Player") {
		t.Errorf("expected winner record, got %q", buf.String())
	}
}

func TestSession_AppliesReload(t *testing.T) {
	reloads := make(chan *config.File, 1)
	s, state, buf := newTestSession(t, reloads, nil)
	in := input.NewState()

	f := config.DefaultFile()
	f.Keys.LeftUp = "i"
	f.UI.TitleSize = 99
	f.Colors.Accent = "#ff0000"
	f.Game.WinScore = 2
	reloads <- f

	step(s, in)

	if state.Settings.Keys.LeftUp != input.KeyI {
		t.Errorf("expected reloaded binding, got %v", state.Settings.Keys.LeftUp)
	}
	if state.Settings.WinScore != game.DefaultWinScore {
		t.Errorf("win score must not change mid session, got %d", state.Settings.WinScore)
	}
	ui, palette := s.Look()
	if ui.TitleSize != 99 {
		t.Errorf("expected reloaded title size, got %v", ui.TitleSize)
	}
	if r, g, b := palette.RGB255(scene.RoleAccent); r != 255 || g != 0 || b != 0 {
		t.Errorf("expected reloaded accent, got (%d, %d, %d)", r, g, b)
	}
	if !strings.Contains(buf.String(), "config reloaded") {
		t.Errorf("expected reload record, got %q", buf.String())
	}
}

func TestSession_RejectsBadReload(t *testing.T) {
	s, state, buf := newTestSession(t, nil, nil)

	f := config.DefaultFile()
	f.Keys.Reset = "hyper"
	f.UI.TitleSize = 99
	s.Apply(f)

	if state.Settings.Keys != game.DefaultBindings() {
		t.Errorf("bindings changed by invalid reload: %+v", state.Settings.Keys)
	}
	if ui, _ := s.Look(); ui.TitleSize == 99 {
		t.Error("ui changed by invalid reload")
	}
	if !strings.Contains(buf.String(), "ignoring reloaded keys") {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestSession_LogsReloadError(t *testing.T) {
	errs := make(chan error, 1)
	s, _, buf := newTestSession(t, nil, errs)

	errs <- errors.New("decode config: bad toml")
	step(s, input.NewState())

	if !strings.Contains(buf.String(), "config reload failed") {
		t.Errorf("expected reload failure record, got %q", buf.String())
	}
}
