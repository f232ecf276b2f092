package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gatefall/internal/bot"
	"github.com/vovakirdan/gatefall/internal/config"
	"github.com/vovakirdan/gatefall/internal/core"
	"github.com/vovakirdan/gatefall/internal/game"
)

var (
	flagSimTicks     int
	flagSimAutopilot bool
	flagSimRealtime  bool
	flagSimFrame     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session and print a summary",
	Long: `Run the game without a display. Without --autopilot nobody jumps and the
run ends at the first collision. With --autopilot the bot plays and
restarts after every game over until the tick budget is spent.

Examples:
  gatefall sim --seed 42
  gatefall sim --ticks 10000 --autopilot --log-level debug
  gatefall sim --autopilot --frame`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum number of ticks to run")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Let the bot play")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks at the target rate")
	simCmd.Flags().BoolVar(&flagSimFrame, "frame", false, "Print the last frame as text")
}

// simOptions configure a headless run.
type simOptions struct {
	Config    config.Config
	Seed      int64
	Ticks     int
	Autopilot bool
	Realtime  bool
	Logger    *log.Logger
}

// simReport summarizes a headless run.
type simReport struct {
	Seed       int64
	Ticks      int
	Score      int
	BestScore  int
	Restarts   int
	State      game.State
	Collisions []game.Collision
	Frame      *core.DrawList
}

// simulate runs a headless session. Every tick counts against the budget,
// including ticks spent in game over.
func simulate(ctx context.Context, opts simOptions) (simReport, error) {
	report := simReport{Seed: opts.Seed, Frame: core.NewDrawList()}

	pacer := core.NewMeter(opts.Config.Loop.TargetFPS)
	if opts.Realtime {
		pacer = core.NewClock(opts.Config.Loop.TargetFPS)
	}

	var loop *game.Loop
	var input core.InputSource = core.NewEventQueue()
	if opts.Autopilot {
		pilot := bot.NewPilot(func() game.Snapshot { return loop.Snapshot() }, nil)
		pilot.AutoRestart = true
		input = pilot
	}

	loop, err := game.NewLoop(opts.Config, opts.Seed, game.Deps{
		Surface: report.Frame,
		Input:   input,
		Pacer:   pacer,
		Logger:  opts.Logger,
	})
	if err != nil {
		return report, err
	}

	err = loop.RunUntil(ctx, func(res game.TickResult) bool {
		report.Ticks++
		if res.Collision != nil {
			report.Collisions = append(report.Collisions, *res.Collision)
		}
		report.BestScore = core.Max(report.BestScore, res.Score)
		if res.State == game.StateGameOver && !opts.Autopilot {
			return true
		}
		return report.Ticks >= opts.Ticks
	})

	report.Score = loop.Score()
	report.Restarts = loop.Restarts()
	report.State = loop.State()
	return report, err
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, _, err := loadConfig(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := simulate(ctx, simOptions{
		Config:    cfg,
		Seed:      seed(),
		Ticks:     flagSimTicks,
		Autopilot: flagSimAutopilot,
		Realtime:  flagSimRealtime,
		Logger:    logger,
	})
	if err != nil && ctx.Err() == nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagSimFrame {
		printFrame(out, cfg, report.Frame)
	}
	printReport(out, report)
	return nil
}

func printReport(w io.Writer, r simReport) {
	fmt.Fprintf(w, "seed:       %d\n", r.Seed)
	fmt.Fprintf(w, "ticks:      %d\n", r.Ticks)
	fmt.Fprintf(w, "state:      %s\n", r.State)
	fmt.Fprintf(w, "score:      %d\n", r.Score)
	fmt.Fprintf(w, "best score: %d\n", r.BestScore)
	fmt.Fprintf(w, "restarts:   %d\n", r.Restarts)
	if n := len(r.Collisions); n > 0 {
		fmt.Fprintf(w, "collisions: %d (last: %s)\n", n, r.Collisions[n-1])
	} else {
		fmt.Fprintln(w, "collisions: 0")
	}
}

// printFrame rasterizes the last frame onto an 80x24 text screen.
func printFrame(w io.Writer, cfg config.Config, frame *core.DrawList) {
	screen := core.NewScreen(80, 24)
	frame.Replay(core.NewCanvas(screen, float64(cfg.Screen.Width), float64(cfg.Screen.Height)))
	for y := range screen.Height() {
		fmt.Fprintln(w, strings.TrimRight(screen.Row(y), " "))
	}
}
