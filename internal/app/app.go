package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/desktop"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/input"
	"github.com/diegok/pong/internal/scene"
	"github.com/diegok/pong/internal/ui"
)

// FrameInterval is the terminal host's tick
const FrameInterval = time.Second / 60

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg     *config.Config
	logger  *log.Logger
	session *Session
	watcher *config.Watcher

	// Terminal host
	screen   *ui.Screen
	renderer *ui.Renderer
	in       *input.State
	hold     *ui.HoldTracker

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
		in:     input.NewState(),
		hold:   ui.NewHoldTracker(ui.HoldTicks),
		quit:   make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It builds the match, sets up signal handling, and runs the chosen frontend.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.setup(ctx); err != nil {
		return err
	}

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-a.sigChan:
			a.logger.Info("signal received", "signal", sig)
			close(a.quit)
		case <-ctx.Done():
		}
	}()

	a.logger.Info("starting", "frontend", a.cfg.Frontend, "seed", a.cfg.Seed)

	var runErr error
	if a.cfg.Frontend == config.FrontendTerminal {
		runErr = a.runTerminal()
	} else {
		runErr = desktop.Run(desktop.Options{
			Title:      a.cfg.Title,
			Width:      a.cfg.Width,
			Height:     a.cfg.Height,
			Fullscreen: a.cfg.Fullscreen,
		}, a.session, a.quit)
	}

	// Cleanup
	a.cleanup()

	if runErr != nil {
		a.logger.Error("frontend stopped", "err", runErr)
	}
	return runErr
}

// setup builds the session from the config and starts the reload watcher
func (a *App) setup(ctx context.Context) error {
	settings, err := a.cfg.File.Settings()
	if err != nil {
		return err
	}
	palette, err := a.cfg.File.Palette()
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if a.cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(a.cfg.Seed))
	}
	state := game.NewGameState(settings, rng)

	var (
		reloads <-chan *config.File
		errs    <-chan error
	)
	if a.cfg.ConfigPath != "" {
		w, err := config.Watch(ctx, a.cfg.ConfigPath)
		if err != nil {
			// Playing without live reload is fine
			a.logger.Warn("config watcher disabled", "err", err)
		} else {
			a.watcher = w
			reloads, errs = w.Updates, w.Errors
		}
	}

	a.session = NewSession(state, a.cfg.File.UIProperties(), palette, reloads, errs, a.logger)
	return nil
}

// runTerminal drives the match on a tcell screen.
func (a *App) runTerminal() error {
	screen, err := ui.InitScreen()
	if err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.screen = screen

	_, palette := a.session.Look()
	a.renderer = ui.NewRenderer(screen, palette)

	return a.mainLoop()
}

// mainLoop is the terminal event loop: input events as they come, one
// simulation step and render per tick.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			a.tick(dt)
		}
	}
}

// tick steps the match and renders it
func (a *App) tick(dt float64) {
	cols, rows := a.screen.Size()
	w, h := ui.VirtualSize(cols, rows)

	f := a.session.Step(dt, a.in, w, h)
	a.in.EndFrame()
	a.hold.Step(a.in)

	var fps float64
	if dt > 0 {
		fps = 1 / dt
	}
	props, palette := a.session.Look()
	a.renderer.SetPalette(palette)
	a.renderer.Render(scene.Build(f, props, fps))
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, ok := ui.KeyFromEvent(ev)

		// Quit keys always work, unless the key is bound to an action
		if ui.IsQuitKey(ev.Key(), ev.Rune()) && !(ok && a.bound(k)) {
			return true
		}

		if !ok {
			a.in.MarkAnyPressed()
			return false
		}
		a.in.Press(k)
		a.hold.Press(k)

		// A direction change ends the opposite hold at once
		b := a.session.Bindings()
		switch k {
		case b.LeftUp:
			a.hold.Release(b.LeftDown, a.in)
		case b.LeftDown:
			a.hold.Release(b.LeftUp, a.in)
		case b.RightUp:
			a.hold.Release(b.RightDown, a.in)
		case b.RightDown:
			a.hold.Release(b.RightUp, a.in)
		}

	case *tcell.EventResize:
		// The next tick picks up the new size
		a.screen.Clear()
	}

	return false
}

// bound reports whether k drives a game action
func (a *App) bound(k input.Key) bool {
	b := a.session.Bindings()
	switch k {
	case b.LeftUp, b.LeftDown, b.RightUp, b.RightDown, b.Reset, b.Restart, b.Debug:
		return true
	}
	return false
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.watcher != nil {
		a.watcher.Close()
	}

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	signal.Stop(a.sigChan)
}
