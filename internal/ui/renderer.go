package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/constraints"

	"github.com/diegok/pong/internal/scene"
)

// Every terminal cell stands for CellWidth x CellHeight virtual pixels
const (
	CellWidth  = 16
	CellHeight = 32
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
	NetChar    = '\u2502' // │
)

// Texts at least this large are drawn bold
const boldSize = 50.0

// VirtualSize converts a terminal size in cells to the viewport fed to the game
func VirtualSize(cols, rows int) (int, int) {
	return cols * CellWidth, rows * CellHeight
}

// Renderer draws scene draw lists onto the terminal
type Renderer struct {
	screen  *Screen
	palette scene.Palette
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen, palette scene.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

func (r *Renderer) SetPalette(p scene.Palette) {
	r.palette = p
}

func (r *Renderer) color(role scene.Role) tcell.Color {
	red, green, blue := r.palette.RGB255(role)
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}

func (r *Renderer) style(role scene.Role) tcell.Style {
	return tcell.StyleDefault.
		Background(r.color(scene.RoleBackground)).
		Foreground(r.color(role))
}

// Render draws one frame and shows it
func (r *Renderer) Render(dl scene.DrawList) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	r.screen.FillRect(0, 0, screenW, screenH, r.style(scene.RoleBackground), ' ')

	for _, rect := range dl.Rects {
		r.drawRect(rect, screenW, screenH)
	}
	for _, c := range dl.Circles {
		r.drawCircle(c, screenW, screenH)
	}
	for _, t := range dl.Texts {
		r.drawText(t, screenW, screenH)
	}

	r.screen.Show()
}

func (r *Renderer) drawRect(rect scene.Rect, screenW, screenH int) {
	x0 := int(math.Floor(rect.X / CellWidth))
	y0 := int(math.Floor(rect.Y / CellHeight))
	x1 := max(int(math.Ceil((rect.X+rect.W)/CellWidth)), x0+1)
	y1 := max(int(math.Ceil((rect.Y+rect.H)/CellHeight)), y0+1)

	ch := PaddleChar
	if rect.W < CellWidth {
		// Thinner than a cell, draw a line through the center
		ch = NetChar
		x0 = int(math.Floor((rect.X + rect.W/2) / CellWidth))
		x1 = x0 + 1
	}

	x0, x1 = clamp(x0, 0, screenW), clamp(x1, 0, screenW)
	y0, y1 = clamp(y0, 0, screenH), clamp(y1, 0, screenH)
	r.screen.FillRect(x0, y0, x1-x0, y1-y0, r.style(rect.Role), ch)
}

func (r *Renderer) drawCircle(c scene.Circle, screenW, screenH int) {
	x := int(math.Floor(c.X / CellWidth))
	y := int(math.Floor(c.Y / CellHeight))
	if x < 0 || x >= screenW || y < 0 || y >= screenH {
		return
	}
	r.screen.SetCell(x, y, r.style(c.Role), BallChar)
}

func (r *Renderer) drawText(t scene.Text, screenW, screenH int) {
	y := int(math.Floor(t.Y / CellHeight))
	if y < 0 || y >= screenH {
		return
	}

	w := TextWidth(t.Text)
	x := int(math.Floor(t.X / CellWidth))
	if t.Align == scene.AlignCenter {
		x -= w / 2
	}
	x = clamp(x, 0, max(screenW-w, 0))

	style := r.style(t.Role)
	if t.Size >= boldSize {
		style = style.Bold(true)
	}
	r.screen.DrawText(x, y, t.Text, style)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
