package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/input"
	"github.com/diegok/pong/internal/scene"
)

// TPS is the fixed update rate of the window host
const TPS = 60

// Session is the match the window host drives, one Step per tick
type Session interface {
	Step(frameTime float64, in game.Input, width, height int) game.Frame
	Look() (scene.UIProperties, scene.Palette)
}

// Game adapts a Session to ebiten.Game
type Game struct {
	session Session
	quit    <-chan struct{}
	in      *input.State
	frame   game.Frame
	width   int
	height  int
	face    *text.GoXFace
	pressed []ebiten.Key
}

func NewGame(session Session, quit <-chan struct{}) *Game {
	return &Game{
		session: session,
		quit:    quit,
		in:      input.NewState(),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

func (g *Game) Update() error {
	select {
	case <-g.quit:
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.poll()
	g.frame = g.session.Step(1.0/TPS, g.in, g.width, g.height)
	g.in.EndFrame()
	return nil
}

// poll copies the keyboard into the input snapshot
func (g *Game) poll() {
	for k, ek := range keymap {
		if inpututil.IsKeyJustPressed(ek) {
			g.in.Press(k)
		}
		g.in.SetDown(k, ebiten.IsKeyPressed(ek))
	}

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	if len(g.pressed) > 0 {
		g.in.MarkAnyPressed()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	ui, palette := g.session.Look()
	dl := scene.Build(g.frame, ui, ebiten.ActualFPS())

	screen.Fill(palette.Color(scene.RoleBackground))

	for _, r := range dl.Rects {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), palette.Color(r.Role), false)
	}
	for _, c := range dl.Circles {
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), palette.Color(c.Role), true)
	}
	for _, t := range dl.Texts {
		g.drawText(screen, t, palette)
	}
}

// drawText scales the bitmap face up to the requested size
func (g *Game) drawText(screen *ebiten.Image, t scene.Text, palette scene.Palette) {
	scale := t.Size / float64(basicfont.Face7x13.Height)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleWithColor(palette.Color(t.Role))
	op.SecondaryAlign = text.AlignCenter
	if t.Align == scene.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	} else {
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(screen, t.Text, g.face, op)
}

// Layout uses the window size as the court, so resizing resizes the game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
