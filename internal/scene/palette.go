package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Role names what a color is used for; hosts resolve it through a Palette
type Role int

const (
	RoleBackground Role = iota
	RoleForeground
	RoleAccent
	RoleDebug
)

// Default palette, hex encoded
const (
	DefaultBackground = "#000000"
	DefaultForeground = "#ffffff"
	DefaultAccent     = "#78e2a0"
	DefaultDebug      = "#ffd75f"
)

// Palette resolves roles to colors
type Palette struct {
	Background colorful.Color
	Foreground colorful.Color
	Accent     colorful.Color
	Debug      colorful.Color
}

// NewPalette parses four hex colors
func NewPalette(background, foreground, accent, debug string) (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = colorful.Hex(background); err != nil {
		return Palette{}, fmt.Errorf("background color: %w", err)
	}
	if p.Foreground, err = colorful.Hex(foreground); err != nil {
		return Palette{}, fmt.Errorf("foreground color: %w", err)
	}
	if p.Accent, err = colorful.Hex(accent); err != nil {
		return Palette{}, fmt.Errorf("accent color: %w", err)
	}
	if p.Debug, err = colorful.Hex(debug); err != nil {
		return Palette{}, fmt.Errorf("debug color: %w", err)
	}
	return p, nil
}

// DefaultPalette is white on black with a green accent
func DefaultPalette() Palette {
	p, _ := NewPalette(DefaultBackground, DefaultForeground, DefaultAccent, DefaultDebug)
	return p
}

// Color returns the color for a role
func (p Palette) Color(r Role) colorful.Color {
	switch r {
	case RoleBackground:
		return p.Background
	case RoleAccent:
		return p.Accent
	case RoleDebug:
		return p.Debug
	}
	return p.Foreground
}

// RGB255 returns the 8-bit channels for a role
func (p Palette) RGB255(r Role) (uint8, uint8, uint8) {
	return p.Color(r).Clamped().RGB255()
}
