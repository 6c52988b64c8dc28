package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/diegok/pong/internal/input"
)

// keymap maps every game key to its ebiten key
var keymap = buildKeymap()

func buildKeymap() map[input.Key]ebiten.Key {
	m := map[input.Key]ebiten.Key{
		input.KeyUp:        ebiten.KeyArrowUp,
		input.KeyDown:      ebiten.KeyArrowDown,
		input.KeyLeft:      ebiten.KeyArrowLeft,
		input.KeyRight:     ebiten.KeyArrowRight,
		input.KeyEnter:     ebiten.KeyEnter,
		input.KeySpace:     ebiten.KeySpace,
		input.KeyEscape:    ebiten.KeyEscape,
		input.KeyTab:       ebiten.KeyTab,
		input.KeyBackspace: ebiten.KeyBackspace,
	}
	// Letters, digits and function keys are contiguous on both sides
	for k := input.KeyA; k <= input.KeyZ; k++ {
		m[k] = ebiten.KeyA + ebiten.Key(k-input.KeyA)
	}
	for k := input.Key0; k <= input.Key9; k++ {
		m[k] = ebiten.KeyDigit0 + ebiten.Key(k-input.Key0)
	}
	for k := input.KeyF1; k <= input.KeyF12; k++ {
		m[k] = ebiten.KeyF1 + ebiten.Key(k-input.KeyF1)
	}
	return m
}
