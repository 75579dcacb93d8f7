// lightdrift renders a first-person scene warped by relativistic
// aberration in the terminal. Click or press Enter to capture the camera,
// move with wasd, steer with the pointer, step the speed ratio with [ and ].
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/vashkar/lightdrift/audio"
	"github.com/vashkar/lightdrift/config"
	"github.com/vashkar/lightdrift/engine"
	"github.com/vashkar/lightdrift/scene"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lightdrift: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info().Str("scene", cfg.ScenePath).Float64("beta", cfg.Beta).Msg("starting")

	scn := scene.Default()
	if cfg.ScenePath != "" {
		scn, err = scene.Load(cfg.ScenePath)
		if err != nil {
			return err
		}
		logger.Info().Int("objects", len(scn.Objects)).Msg("scene loaded")
	}

	// No audio is not fatal, the viewer runs silent
	cues, err := audio.NewPlayer(cfg.AudioEnabled)
	if err != nil {
		logger.Warn().Err(err).Msg("audio initialization failed")
	}
	defer cues.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	game := engine.New(screen, scn, cues, cfg, logger, engine.NewMonotonicTimeProvider())
	game.Run()
	logger.Info().Msg("stopped")
	return nil
}

// newLogger writes structured logs to the configured file; the terminal
// itself belongs to the renderer
func newLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}
