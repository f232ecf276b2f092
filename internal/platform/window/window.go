// Package window runs the game in a desktop window through Ebiten.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gatefall/internal/bot"
	"github.com/vovakirdan/gatefall/internal/config"
	"github.com/vovakirdan/gatefall/internal/core"
	"github.com/vovakirdan/gatefall/internal/game"
)

// Options configure a windowed session.
type Options struct {
	Config    config.Config
	Seed      int64
	Autopilot bool
	Title     string
	Logger    *log.Logger
}

// Game adapts a game loop to ebiten.Game. Update runs one loop tick into a
// draw list; Draw replays the last presented frame onto the window.
type Game struct {
	loop    *game.Loop
	draw    *core.DrawList
	input   *core.EventQueue
	surface imageSurface
	width   int
	height  int
}

// New creates a windowed game with a fresh loop.
func New(opts Options) (*Game, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	g := &Game{
		draw:   core.NewDrawList(),
		input:  core.NewEventQueue(),
		width:  opts.Config.Screen.Width,
		height: opts.Config.Screen.Height,
	}

	var input core.InputSource = g.input
	if opts.Autopilot {
		pilot := bot.NewPilot(func() game.Snapshot { return g.loop.Snapshot() }, g.input)
		pilot.AutoRestart = true
		input = pilot
	}

	loop, err := game.NewLoop(opts.Config, opts.Seed, game.Deps{
		Surface: g.draw,
		Input:   input,
		Pacer:   tpsPacer{},
		Logger:  opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	g.loop = loop
	return g, nil
}

// Update polls the keyboard and runs one tick.
func (g *Game) Update() error {
	for _, ev := range pollKeys(inpututil.IsKeyJustPressed) {
		g.input.Push(ev)
	}
	if res := g.loop.Tick(); res.State == game.StateQuit {
		return ebiten.Termination
	}
	return nil
}

// Draw replays the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.draw.Replay(&g.surface)
}

// Layout keeps the logical screen at the world size; Ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Loop returns the running game.
func (g *Game) Loop() *game.Loop {
	return g.loop
}

// Run opens the window and blocks until it is closed or the game quits.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	title := opts.Title
	if title == "" {
		title = "gatefall"
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// tpsPacer delegates pacing to Ebiten, which already calls Update at the
// target tick rate.
type tpsPacer struct{}

func (tpsPacer) SetTargetRate(fps int) { ebiten.SetTPS(fps) }
func (tpsPacer) Rate() float64         { return ebiten.ActualTPS() }
func (tpsPacer) Wait()                 {}
