package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gatefall/internal/platform/tui"
)

var flagPlayAutopilot bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The playfield is scaled to fit.

Controls:
  Space/Up/W - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot to ~/.gatefall/screenshots
  ?          - Toggle key help
  Q/Ctrl+C   - Quit

Examples:
  gatefall play
  gatefall play --seed 42
  gatefall play --autopilot --log-file gatefall.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlayAutopilot, "autopilot", false, "Let the bot play")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, _, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(tui.Options{
		Config:    cfg,
		Seed:      seed(),
		Width:     width,
		Height:    height,
		Autopilot: flagPlayAutopilot,
		Logger:    logger,
	})
}
