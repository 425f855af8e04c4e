package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake (default command)",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	board, err := snake.NewBoard(cfg.Board.Width, cfg.Board.Height, cfg.Board.CellSize)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	spawner := snake.NewSpawner(rand.New(rand.NewSource(seed)), cfg.Food.Policy)
	game := snake.New(board, spawner)
	theme := assets.Load(cfg.Assets.Glyphs, cfg.Assets.Background, logger)
	renderer := snake.NewRenderer(cfg.Player.Name, theme)
	loop := snake.NewLoop(game, core.NewSystemClock(), cfg.Tick.Interval, logger)

	logger.Info("starting",
		"config", source,
		"cols", board.Cols,
		"rows", board.Rows,
		"interval", loop.Interval(),
		"fps", cfg.FrameRate,
		"food", spawner.Policy(),
		"seed", seed,
	)

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.FrameRate = cfg.FrameRate

	if err := tui.Run(loop, renderer, rt, logger); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	snap := game.Snapshot()
	logger.Info("session ended", "score", snap.Score, "length", len(snap.Body), "rounds", snap.Round, "frames", loop.Frames())
	return nil
}

// applyFlags overlays explicitly set command-line flags on cfg and validates the result.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.FrameRate = flagFPS
	}
	if flags.Changed("food") {
		cfg.Food.Policy = snake.FoodPolicy(flagFood)
	}
	return cfg.Validate()
}

// newLogger returns a logger writing to path, or discarding output when path is empty.
// The terminal belongs to the game while it runs, so logs never go to stdout.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
