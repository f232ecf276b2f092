package game

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gatefall/internal/config"
	"github.com/vovakirdan/gatefall/internal/core"
)

// Player color channels are drawn from this range when none is configured.
const (
	playerColorLo = 100
	playerColorHi = 200
)

// Deps are the collaborators a Loop talks to. Nil fields get headless
// defaults: a discarding surface, an empty input queue, a sleeping clock and
// a silent logger.
type Deps struct {
	Surface core.Surface
	Input   core.InputSource
	Pacer   core.Pacer
	Logger  *log.Logger
}

// Loop owns one game session and advances it one tick at a time.
type Loop struct {
	cfg  config.Config
	seed int64

	surface core.Surface
	input   core.InputSource
	pacer   core.Pacer
	logger  *log.Logger

	rng      *rand.Rand
	field    *Field
	player   *Player
	floor    Floor
	ceiling  Ceiling
	score    Score
	state    State
	tick     int
	restarts int
	overlays []Overlay
}

// NewLoop validates cfg and starts a session in the running state.
func NewLoop(cfg config.Config, seed int64, deps Deps) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Surface == nil {
		deps.Surface = core.Discard{}
	}
	if deps.Input == nil {
		deps.Input = core.NewEventQueue()
	}
	if deps.Pacer == nil {
		deps.Pacer = core.NewClock(cfg.Loop.TargetFPS)
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	l := &Loop{
		cfg:     cfg,
		seed:    seed,
		surface: deps.Surface,
		input:   deps.Input,
		pacer:   deps.Pacer,
		logger:  deps.Logger,
	}
	l.pacer.SetTargetRate(cfg.Loop.TargetFPS)
	l.overlays = l.buildOverlays()
	if err := l.reset(); err != nil {
		return nil, err
	}
	return l, nil
}

// reset builds a fresh world. Each restart reseeds with seed+restarts so a
// session is reproducible from its seed.
func (l *Loop) reset() error {
	l.rng = rand.New(rand.NewSource(l.seed + int64(l.restarts)))

	field, err := NewField(l.cfg, l.rng, l.logger)
	if err != nil {
		return err
	}
	l.field = field

	color := core.RandomColor(l.rng, playerColorLo, playerColorHi)
	if l.cfg.Player.Color != nil {
		color = *l.cfg.Player.Color
	}
	l.player = NewPlayer(0, core.V(l.cfg.Player.X, l.cfg.Player.Y), l.cfg.Player.Radius,
		l.cfg.Physics.Gravity, l.cfg.Physics.JumpImpulse, color)

	w, h := float64(l.cfg.Screen.Width), float64(l.cfg.Screen.Height)
	l.floor = NewFloor(w, h, float64(l.cfg.Boundaries.FloorThickness), l.cfg.Boundaries.Color)
	l.ceiling = NewCeiling(w, float64(l.cfg.Boundaries.CeilingThickness), l.cfg.Boundaries.Color)

	l.score.Reset()
	l.tick = 0
	l.state = StateRunning
	return nil
}

func (l *Loop) buildOverlays() []Overlay {
	w, h := float64(l.cfg.Screen.Width), float64(l.cfg.Screen.Height)
	c := l.cfg.Loop.TextColor

	overlays := []Overlay{{
		Label:  "Score: ",
		Format: IntFormatter(l.score.Value),
		Pos:    core.V(w-180, 5),
		Color:  c,
	}}
	if l.cfg.Loop.ShowFPS {
		overlays = append(overlays, Overlay{
			Label:  "FPS: ",
			Format: IntFormatter(func() int { return int(l.pacer.Rate() + 0.5) }),
			Pos:    core.V(10, 5),
			Color:  c,
		})
	}
	overlays = append(overlays, Overlay{
		Format: l.banner,
		Pos:    core.V(w/2-150, h/2),
		Color:  c,
	})
	return overlays
}

func (l *Loop) banner() string {
	switch l.state {
	case StatePaused:
		return "PAUSED  |  P to resume"
	case StateGameOver:
		return fmt.Sprintf("GAME OVER  |  Score: %d  |  R to restart", l.score.Value())
	default:
		return ""
	}
}

// Tick runs one iteration: clear, scroll and draw obstacles, spawn, draw
// boundaries, move and draw the player, check boundaries, check passes and
// obstacle collisions, handle input, then pace and present. World updates
// only happen while running; drawing happens in every state.
func (l *Loop) Tick() TickResult {
	var res TickResult
	running := l.state == StateRunning
	if running {
		l.tick++
	}
	s := l.surface

	s.Fill(l.cfg.Screen.Background)

	if running {
		res.Removed = l.field.MoveAll()
	}
	l.field.DrawAll(s)

	if running {
		res.Spawned = l.field.CheckPosition()
	}

	l.floor.Draw(s)
	l.ceiling.Draw(s)

	if running {
		l.player.Update()
	}
	l.player.Draw(s)

	if running {
		res.Scored, res.Collision = l.checkCollisions()
	}

	l.handleInput(core.FrameFromEvents(l.input.Drain()))

	l.pacer.Wait()
	for _, o := range l.overlays {
		o.Draw(s)
	}
	s.Present()

	res.Tick = l.tick
	res.State = l.state
	res.Score = l.score.Value()
	return res
}

// checkCollisions tests the boundaries, then the leftmost obstacles. For
// each obstacle the pass check runs before the collision check. With
// halt_on_collision the first collision ends the run and stops any further
// scoring in this tick.
func (l *Loop) checkCollisions() (scored int, first *Collision) {
	hit := func(c Collision) bool {
		if first == nil {
			first = &c
			l.logger.Info("collision", "tick", l.tick, "with", c.String(), "score", l.score.Value())
		}
		if l.cfg.Loop.HaltOnCollision {
			l.setState(StateGameOver)
			return true
		}
		return false
	}

	if l.floor.Collides(l.player) && hit(Collision{Kind: CollisionFloor}) {
		return scored, first
	}
	if l.ceiling.Collides(l.player) && hit(Collision{Kind: CollisionCeiling}) {
		return scored, first
	}

	for _, o := range l.field.Window(l.cfg.Loop.CollisionWindow) {
		if o.Pass(l.player) {
			scored++
			l.score.Increment()
			l.logger.Debug("obstacle passed", "id", o.ID, "score", l.score.Value())
		}
		if region, ok := o.Collide(l.player.Position(), l.player.Radius); ok {
			if hit(Collision{Kind: CollisionObstacle, Region: region, ObstacleID: o.ID}) {
				return scored, first
			}
		}
	}
	return scored, first
}

func (l *Loop) handleInput(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		l.setState(StateQuit)
		return
	}

	switch l.state {
	case StateRunning:
		if in.Has(core.ActionPause) {
			l.setState(StatePaused)
			return
		}
		if in.Has(core.ActionJump) {
			l.player.Jump()
		}
	case StatePaused:
		if in.Has(core.ActionPause) {
			l.setState(StateRunning)
		}
	case StateGameOver:
		if in.Has(core.ActionRestart) {
			l.Restart()
		}
	}
}

func (l *Loop) setState(s State) {
	if l.state == s {
		return
	}
	l.logger.Info("state changed", "from", l.state, "to", s, "tick", l.tick, "score", l.score.Value())
	l.state = s
}

// Restart starts a new session with the next derived seed.
func (l *Loop) Restart() {
	l.restarts++
	// Geometry was validated in NewLoop, so reset cannot fail here.
	if err := l.reset(); err != nil {
		l.logger.Error("restart failed", "err", err)
		l.state = StateQuit
		return
	}
	l.logger.Info("restarted", "seed", l.seed+int64(l.restarts))
}

// Run ticks until the session quits or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	return l.RunUntil(ctx, nil)
}

// RunUntil ticks until the session quits, ctx is done, or stop returns true
// for a tick's result.
func (l *Loop) RunUntil(ctx context.Context, stop func(TickResult) bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		res := l.Tick()
		if res.State == StateQuit {
			return nil
		}
		if stop != nil && stop(res) {
			return nil
		}
	}
}

// State returns the lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Score returns the current score.
func (l *Loop) Score() int {
	return l.score.Value()
}

// Ticks returns the number of running ticks in the current session.
func (l *Loop) Ticks() int {
	return l.tick
}

// Restarts returns how many times the session was restarted.
func (l *Loop) Restarts() int {
	return l.restarts
}

// Config returns the session configuration.
func (l *Loop) Config() config.Config {
	return l.cfg
}

// Snapshot copies the current world state.
func (l *Loop) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     l.tick,
		State:    l.state,
		Score:    l.score.Value(),
		Width:    float64(l.cfg.Screen.Width),
		Height:   float64(l.cfg.Screen.Height),
		CeilingY: l.ceiling.Bottom,
		FloorY:   l.floor.Top,
		Player: BodyView{
			Position: l.player.Position(),
			Velocity: l.player.Velocity(),
			Radius:   l.player.Radius,
			Gravity:  l.player.Gravity(),
		},
		Obstacles: make([]ObstacleView, 0, l.field.Len()),
	}
	for _, o := range l.field.Obstacles() {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			ID:        o.ID,
			Left:      o.Upper[0].X,
			Right:     o.TrailingEdge(),
			GapTop:    o.GapTop(),
			GapBottom: o.GapBottom(),
			Passed:    o.Passed(l.player),
		})
	}
	return snap
}
