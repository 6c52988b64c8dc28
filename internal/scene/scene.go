package scene

import (
	"fmt"
	"strings"

	"github.com/diegok/pong/internal/game"
)

// UIProperties are the font sizes handed to the hosts
type UIProperties struct {
	TitleSize  float64
	PromptSize float64
	ScoreSize  float64
	WinnerSize float64
	DebugSize  float64
}

func DefaultUIProperties() UIProperties {
	return UIProperties{
		TitleSize:  80,
		PromptSize: 30,
		ScoreSize:  60,
		WinnerSize: 70,
		DebugSize:  20,
	}
}

// Align is the horizontal anchoring of a text
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
)

type Rect struct {
	X, Y, W, H float64
	Role       Role
}

type Circle struct {
	X, Y, Radius float64
	Role         Role
}

// Text is anchored at X (per Align) and vertically centered on Y
type Text struct {
	X, Y  float64
	Text  string
	Size  float64
	Role  Role
	Align Align
}

// DrawList describes one frame for a host to draw
type DrawList struct {
	Width   int
	Height  int
	Rects   []Rect
	Circles []Circle
	Texts   []Text
}

const (
	debugX      = 40.0
	debugY      = 40.0
	netWidth    = 4.0
	lineSpacing = 1.25
)

// Build lays out a frame on the viewport slice grid
func Build(f game.Frame, ui UIProperties, fps float64) DrawList {
	v := f.Viewport
	dl := DrawList{Width: v.Width, Height: v.Height}

	switch f.Phase {
	case game.PhaseNotStarted:
		dl.text(v.CenterX, v.Y(3), "PONG", ui.TitleSize, RoleForeground, AlignCenter)
		dl.text(v.CenterX, v.Y(8), "Press any key to start", ui.PromptSize, RoleAccent, AlignCenter)

	case game.PhasePlaying:
		dl.net(v)
		dl.Rects = append(dl.Rects, paddleRect(f.LeftPaddle), paddleRect(f.RightPaddle))
		dl.Circles = append(dl.Circles, Circle{X: f.Ball.X, Y: f.Ball.Y, Radius: f.Ball.Radius, Role: RoleForeground})
		dl.text(v.X(5), v.Y(1), fmt.Sprintf("%d", f.LeftScore), ui.ScoreSize, RoleForeground, AlignCenter)
		dl.text(v.X(7), v.Y(1), fmt.Sprintf("%d", f.RightScore), ui.ScoreSize, RoleForeground, AlignCenter)

	case game.PhaseEnded:
		dl.text(v.CenterX, v.Y(4), f.Winner+" Wins!", ui.WinnerSize, RoleAccent, AlignCenter)
		dl.text(v.CenterX, v.Y(6), fmt.Sprintf("%d - %d", f.LeftScore, f.RightScore), ui.ScoreSize, RoleForeground, AlignCenter)
		prompt := fmt.Sprintf("Press %s to restart", strings.ToUpper(f.RestartKey.String()))
		dl.text(v.CenterX, v.Y(8), prompt, ui.PromptSize, RoleForeground, AlignCenter)
	}

	if f.Debug {
		dl.debug(f, ui, fps)
	}

	return dl
}

func (dl *DrawList) text(x, y float64, s string, size float64, role Role, align Align) {
	dl.Texts = append(dl.Texts, Text{X: x, Y: y, Text: s, Size: size, Role: role, Align: align})
}

// net draws the dashed center line, one dash per half slice
func (dl *DrawList) net(v game.Viewport) {
	step := v.Y(0.5)
	if step <= 0 {
		return
	}
	for y := 0.0; y < float64(v.Height); y += step {
		dl.Rects = append(dl.Rects, Rect{
			X:    v.CenterX - netWidth/2,
			Y:    y,
			W:    netWidth,
			H:    step / 2,
			Role: RoleAccent,
		})
	}
}

func (dl *DrawList) debug(f game.Frame, ui UIProperties, fps float64) {
	lines := []string{
		fmt.Sprintf("FPS: %.0f", fps),
		fmt.Sprintf("Tick: %d", f.Tick),
		fmt.Sprintf("Phase: %s", f.Phase),
		fmt.Sprintf("Ball: (%.1f, %.1f)", f.Ball.X, f.Ball.Y),
		fmt.Sprintf("Velocity: (%.2f, %.2f)", f.Ball.VX, f.Ball.VY),
		fmt.Sprintf("Speed: %.1f", f.Ball.Speed),
		fmt.Sprintf("Viewport: %dx%d", f.Viewport.Width, f.Viewport.Height),
	}
	for i, l := range lines {
		dl.text(debugX, debugY+float64(i)*ui.DebugSize*lineSpacing, l, ui.DebugSize, RoleDebug, AlignLeft)
	}
}

func paddleRect(r game.Rect) Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H, Role: RoleForeground}
}
