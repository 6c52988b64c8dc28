package config

import (
	"bytes"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/input"
	"github.com/diegok/pong/internal/scene"
)

// File is the optional TOML configuration.
// Missing keys keep their defaults.
type File struct {
	Game   GameSection  `toml:"game"`
	Keys   KeySection   `toml:"keys"`
	UI     UISection    `toml:"ui"`
	Colors ColorSection `toml:"colors"`
}

type GameSection struct {
	WinScore    int     `toml:"win_score"`
	PaddleSpeed float64 `toml:"paddle_speed"`
	InitSpeed   float64 `toml:"init_speed"`
	FullSpeed   float64 `toml:"full_speed"`
}

type KeySection struct {
	LeftUp    string `toml:"left_up"`
	LeftDown  string `toml:"left_down"`
	RightUp   string `toml:"right_up"`
	RightDown string `toml:"right_down"`
	Reset     string `toml:"reset"`
	Restart   string `toml:"restart"`
	Debug     string `toml:"debug"`
}

type UISection struct {
	TitleSize  float64 `toml:"title_size"`
	PromptSize float64 `toml:"prompt_size"`
	ScoreSize  float64 `toml:"score_size"`
	WinnerSize float64 `toml:"winner_size"`
	DebugSize  float64 `toml:"debug_size"`
}

type ColorSection struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Accent     string `toml:"accent"`
	Debug      string `toml:"debug"`
}

// DefaultFile returns the built-in configuration
func DefaultFile() *File {
	b := game.DefaultBindings()
	ui := scene.DefaultUIProperties()
	return &File{
		Game: GameSection{
			WinScore:    game.DefaultWinScore,
			PaddleSpeed: game.DefaultPaddleSpeed,
			InitSpeed:   game.DefaultInitSpeed,
			FullSpeed:   game.DefaultFullSpeed,
		},
		Keys: KeySection{
			LeftUp:    b.LeftUp.String(),
			LeftDown:  b.LeftDown.String(),
			RightUp:   b.RightUp.String(),
			RightDown: b.RightDown.String(),
			Reset:     b.Reset.String(),
			Restart:   b.Restart.String(),
			Debug:     b.Debug.String(),
		},
		UI: UISection{
			TitleSize:  ui.TitleSize,
			PromptSize: ui.PromptSize,
			ScoreSize:  ui.ScoreSize,
			WinnerSize: ui.WinnerSize,
			DebugSize:  ui.DebugSize,
		},
		Colors: ColorSection{
			Background: scene.DefaultBackground,
			Foreground: scene.DefaultForeground,
			Accent:     scene.DefaultAccent,
			Debug:      scene.DefaultDebug,
		},
	}
}

// LoadFile reads a TOML file on top of the defaults and validates it
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return ParseFile(data)
}

// ParseFile decodes TOML on top of the defaults and validates it
func ParseFile(data []byte) (*File, error) {
	f := DefaultFile()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(f); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks ranges, key names and colors
func (f *File) Validate() error {
	g := f.Game
	if g.WinScore < 1 {
		return errors.Errorf("win_score must be at least 1, got %d", g.WinScore)
	}
	if g.PaddleSpeed <= 0 {
		return errors.Errorf("paddle_speed must be positive, got %v", g.PaddleSpeed)
	}
	if g.InitSpeed <= 0 {
		return errors.Errorf("init_speed must be positive, got %v", g.InitSpeed)
	}
	if g.FullSpeed < g.InitSpeed {
		return errors.Errorf("full_speed (%v) must not be below init_speed (%v)", g.FullSpeed, g.InitSpeed)
	}

	if _, err := f.Bindings(); err != nil {
		return err
	}

	sizes := []struct {
		name string
		v    float64
	}{
		{"title_size", f.UI.TitleSize},
		{"prompt_size", f.UI.PromptSize},
		{"score_size", f.UI.ScoreSize},
		{"winner_size", f.UI.WinnerSize},
		{"debug_size", f.UI.DebugSize},
	}
	for _, s := range sizes {
		if s.v <= 0 {
			return errors.Errorf("%s must be positive, got %v", s.name, s.v)
		}
	}

	colors := []struct {
		name string
		v    string
	}{
		{"background", f.Colors.Background},
		{"foreground", f.Colors.Foreground},
		{"accent", f.Colors.Accent},
		{"debug", f.Colors.Debug},
	}
	for _, c := range colors {
		if _, err := colorful.Hex(c.v); err != nil {
			return errors.Wrapf(err, "color %s", c.name)
		}
	}
	return nil
}

// Bindings resolves the key names
func (f *File) Bindings() (game.Bindings, error) {
	var b game.Bindings
	keys := []struct {
		name string
		src  string
		dst  *input.Key
	}{
		{"left_up", f.Keys.LeftUp, &b.LeftUp},
		{"left_down", f.Keys.LeftDown, &b.LeftDown},
		{"right_up", f.Keys.RightUp, &b.RightUp},
		{"right_down", f.Keys.RightDown, &b.RightDown},
		{"reset", f.Keys.Reset, &b.Reset},
		{"restart", f.Keys.Restart, &b.Restart},
		{"debug", f.Keys.Debug, &b.Debug},
	}
	for _, k := range keys {
		key, err := input.ParseKey(k.src)
		if err != nil {
			return game.Bindings{}, errors.Wrapf(err, "key %s", k.name)
		}
		*k.dst = key
	}
	return b, nil
}

// Settings builds the game tuning from the file
func (f *File) Settings() (game.Settings, error) {
	b, err := f.Bindings()
	if err != nil {
		return game.Settings{}, err
	}
	s := game.DefaultSettings()
	s.WinScore = f.Game.WinScore
	s.PaddleSpeed = f.Game.PaddleSpeed
	s.InitSpeed = f.Game.InitSpeed
	s.FullSpeed = f.Game.FullSpeed
	s.Keys = b
	return s, nil
}

func (f *File) UIProperties() scene.UIProperties {
	return scene.UIProperties{
		TitleSize:  f.UI.TitleSize,
		PromptSize: f.UI.PromptSize,
		ScoreSize:  f.UI.ScoreSize,
		WinnerSize: f.UI.WinnerSize,
		DebugSize:  f.UI.DebugSize,
	}
}

func (f *File) Palette() (scene.Palette, error) {
	return scene.NewPalette(f.Colors.Background, f.Colors.Foreground, f.Colors.Accent, f.Colors.Debug)
}
