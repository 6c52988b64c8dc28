package config

import (
	"flag"

	"github.com/pkg/errors"
)

// Default values for configuration
const (
	DefaultPoints   = 10
	DefaultWidth    = 1920
	DefaultHeight   = 1080
	DefaultTitle    = "Pong"
	DefaultFrontend = FrontendWindow
)

// Frontends
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// ErrInvalidFrontend is returned for an unknown --frontend value
var ErrInvalidFrontend = errors.New("frontend must be \"window\" or \"terminal\"")

// Config holds the application configuration
type Config struct {
	Frontend   string
	Width      int
	Height     int
	Fullscreen bool
	Title      string
	Seed       uint64
	ConfigPath string
	LogPath    string
	Debug      bool
	File       *File
}

// ParseArgs parses command line arguments and returns a Config.
// Values from --config are applied first, explicit flags win.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)

	frontend := fs.String("frontend", DefaultFrontend, "window or terminal")
	width := fs.Int("width", DefaultWidth, "window width (>=1)")
	height := fs.Int("height", DefaultHeight, "window height (>=1)")
	fullscreen := fs.Bool("fullscreen", false, "start fullscreen")
	title := fs.String("title", DefaultTitle, "window title")
	points := fs.Int("points", DefaultPoints, "points to win (>=1)")
	seed := fs.Uint64("seed", 0, "serve direction seed (0 = random)")
	configPath := fs.String("config", "", "TOML config file")
	logPath := fs.String("log", "", "log file (logging is off without it)")
	debug := fs.Bool("debug", false, "debug log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *frontend != FrontendWindow && *frontend != FrontendTerminal {
		return nil, errors.Wrapf(ErrInvalidFrontend, "got %q", *frontend)
	}

	if *width < 1 || *height < 1 {
		return nil, errors.Errorf("window size must be at least 1x1, got %dx%d", *width, *height)
	}

	// Validate points
	if *points < 1 {
		return nil, errors.Errorf("points must be at least 1, got %d", *points)
	}

	file := DefaultFile()
	if *configPath != "" {
		loaded, err := LoadFile(*configPath)
		if err != nil {
			return nil, err
		}
		file = loaded
	}
	if set["points"] || *configPath == "" {
		file.Game.WinScore = *points
	}

	cfg := &Config{
		Frontend:   *frontend,
		Width:      *width,
		Height:     *height,
		Fullscreen: *fullscreen,
		Title:      *title,
		Seed:       *seed,
		ConfigPath: *configPath,
		LogPath:    *logPath,
		Debug:      *debug,
		File:       file,
	}

	return cfg, nil
}
