package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/queenchase/internal/config"
	"github.com/vovakirdan/queenchase/internal/core"
	"github.com/vovakirdan/queenchase/internal/games/chase"
	"github.com/vovakirdan/queenchase/internal/platform/tui"
	"github.com/vovakirdan/queenchase/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play Queen Chase",
	Long: `Start a game in this terminal. Without a variant a menu lets you pick one.

Controls:
  Arrows/hjkl     - Move (hold)
  Space           - Jump in the held direction
  Shift+Arrow     - Jump in that direction
  F / S           - Faster / slower
  A / T / P / B   - Angled, top, player and behind views
  C               - Spin the Queen
  R               - Revive at the start
  N               - New game
  Esc             - Pause
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - walls rise in every other row
  hard   - walls rise in every row

Examples:
  queenchase play
  queenchase play chase --difficulty hard
  queenchase play chase_hard --seed 7
  queenchase play --config ./my-chase.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (expected easy or hard)", flagDifficulty)
	}

	chaseCfg, err := config.LoadChase(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyChasePreset(&chaseCfg, preset)

	chase.SetConfigPath(flagConfig)
	chase.SetDifficultyPreset(preset)

	logger, closeLog, err := newLogger(io.Discard, "queenchase")
	if err != nil {
		return err
	}
	defer closeLog()
	chase.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown variant %q, run 'queenchase list' to see available variants", gameID)
		}
	} else {
		result, menuErr := tui.RunMenu(cfg)
		if menuErr != nil {
			return fmt.Errorf("menu: %w", menuErr)
		}
		if result.Quit {
			return nil
		}
		gameID = result.GameID
		cfg = result.Config
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Debug("starting", "variant", gameID, "stride", chaseCfg.Hazards.WallStride, "rng", chaseCfg.Hazards.RNG)

	opts := tui.Options{
		HoldTimeout: chaseCfg.Input.HoldTimeout(),
		Logger:      logger,
	}
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
