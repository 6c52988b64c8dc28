package main

import (
	"fmt"
	"os"

	"github.com/diegok/pong/internal/app"
	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/logging"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logger, closer, err := logging.Setup(cfg.LogPath, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApp(cfg, logger)
	runErr := application.Run()
	closer.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --frontend <name>   window or terminal (default: window)")
	fmt.Fprintln(os.Stderr, "  --width <px>        Window width (default: 1920)")
	fmt.Fprintln(os.Stderr, "  --height <px>       Window height (default: 1080)")
	fmt.Fprintln(os.Stderr, "  --fullscreen        Start fullscreen")
	fmt.Fprintln(os.Stderr, "  --title <text>      Window title (default: Pong)")
	fmt.Fprintln(os.Stderr, "  --points <n>        Points to win (default: 10)")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Serve direction seed (default: random)")
	fmt.Fprintln(os.Stderr, "  --config <file>     TOML config, reloaded on change")
	fmt.Fprintln(os.Stderr, "  --log <file>        Write logs to file")
	fmt.Fprintln(os.Stderr, "  --debug             Debug log level")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys:")
	fmt.Fprintln(os.Stderr, "  W/S, Up/Down        Move left/right paddle")
	fmt.Fprintln(os.Stderr, "  R                   Back to menu")
	fmt.Fprintln(os.Stderr, "  Enter               Restart after a win")
	fmt.Fprintln(os.Stderr, "  F3                  Debug overlay")
	fmt.Fprintln(os.Stderr, "  Esc                 Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pong --points 5")
	fmt.Fprintln(os.Stderr, "  pong --frontend terminal --config pong.toml --log pong.log")
}
