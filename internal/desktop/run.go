package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Options configures the window
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// Run opens the window and blocks until the game quits or quit is closed
func Run(opts Options, session Session, quit <-chan struct{}) error {
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)
	ebiten.SetTPS(TPS)

	return ebiten.RunGame(NewGame(session, quit))
}
