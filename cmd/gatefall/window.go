package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gatefall/internal/platform/window"
)

var flagWindowAutopilot bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the configured playfield.

Controls:
  Space/Up/W - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  Q          - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagWindowAutopilot, "autopilot", false, "Let the bot play")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, _, err := loadConfig(logger)
	if err != nil {
		return err
	}

	return window.Run(window.Options{
		Config:    cfg,
		Seed:      seed(),
		Autopilot: flagWindowAutopilot,
		Logger:    logger,
	})
}
