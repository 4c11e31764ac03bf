package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/riverraid-go/riverraid/client/game"
	"github.com/riverraid-go/riverraid/client/input"
	"github.com/riverraid-go/riverraid/pkg/config"
	"github.com/riverraid-go/riverraid/pkg/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	logLevel := flag.String("log-level", "", "Log level (overrides the config file)")
	debug := flag.Bool("debug", false, "Enable the debug overlay")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *debug {
		cfg.Debug = true
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.Logging.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	g, err := game.NewGame(game.NewGameOptions{
		Debug:       cfg.Debug,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Background:  cfg.BackgroundColor(),
		BootTimeout: cfg.Boot.Timeout,
		Input:       input.Keyboard{},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowSizeLimits(cfg.Window.MinWidth, cfg.Window.MinHeight, cfg.Window.MaxWidth, cfg.Window.MaxHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Window.Title)
	log.Info("River Raid initialized (%dx%d)", cfg.Window.Width, cfg.Window.Height)

	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		log.Error("Failed to close game: %v", err)
	}
	if runErr != nil {
		log.Error("Game initialization error: %v", runErr)
		os.Exit(1)
	}
}
