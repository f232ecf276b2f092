// gatefall is a side-scrolling reflex game: keep a falling ball alive by
// jumping through the gates of obstacles that scroll in from the right.
//
// Usage:
//
//	gatefall play            - Play in the terminal
//	gatefall window          - Play in a desktop window
//	gatefall serve           - Start SSH server for remote play
//	gatefall sim             - Run a headless session and print a summary
//	gatefall config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Override the target tick rate
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom YAML configuration
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gatefall/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gatefall",
	Short: "Gatefall - jump through the gates",
	Long: `Gatefall is a side-scrolling reflex game. A ball falls under gravity;
each jump throws it upward. Obstacles with a single opening scroll in from
the right. Pass through the openings to score; touching an obstacle, the
floor or the ceiling ends the run.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a headless session
  config   - Print the effective configuration

Examples:
  gatefall play
  gatefall play --seed 42 --config ./my-gatefall.yaml
  gatefall window --autopilot
  gatefall serve --ssh :2222
  gatefall sim --ticks 5000 --autopilot`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Target tick rate (0 = use configuration)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig(logger *log.Logger) (config.Config, string, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}
	if flagFPS != 0 {
		cfg.Loop.TargetFPS = flagFPS
	}
	logger.Debug("configuration loaded", "source", source, "fps", cfg.Loop.TargetFPS)
	return cfg, source, cfg.Validate()
}

// seed returns the --seed value or a time-based one.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds the process logger. Interactive commands pass
// io.Discard as fallback so logs never draw over the game.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gatefall",
		Level:           level,
	})
	return logger, closeFn, nil
}
