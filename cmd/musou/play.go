package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/musou/internal/core"
	"github.com/vovakirdan/musou/internal/games/musou"
	"github.com/vovakirdan/musou/internal/platform/tui"
	"github.com/vovakirdan/musou/internal/registry"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start a session in this terminal. The game defaults to musou.

Controls:
  Arrows         - Move (hold Shift to boost)
  Space          - Fire a beam
  F              - Fire a fan of beams
  S              - Shield (costs 50)
  I              - Hyper mode, invulnerable for 10s (costs 100)
  E              - EMP, jams enemies and bombs (costs 20)
  Enter          - Gravity field, clears the arena for 8s (costs 200)
  P/Esc          - Pause
  R              - Restart (after game over)
  Q              - Quit
  ?              - Toggle full help

The terminal belongs to the game, so logs are only written with --log.

Examples:
  musou play
  musou play --seed 42
  musou play --log ./musou.log --debug
  musou play --config ./my-musou.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "musou"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'musou list' to see available games", gameID)
	}

	var logger *log.Logger
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = newLogger(f, "musou")
	} else {
		logger = log.New(io.Discard)
	}
	musou.SetLogger(logger)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	return tui.Run(game, cfg, logger)
}
