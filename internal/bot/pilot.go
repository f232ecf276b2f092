// Package bot provides an autopilot that plays the game through the same
// input path as a human.
package bot

import (
	"github.com/vovakirdan/gatefall/internal/core"
	"github.com/vovakirdan/gatefall/internal/game"
	"github.com/vovakirdan/gatefall/internal/physics"
)

// DefaultMargin keeps the body this far above the target gap's bottom edge.
const DefaultMargin = 15

// Pilot is an InputSource that decides when to jump from world snapshots.
// Events from an optional fallback source are passed through, so a human
// can still pause or quit.
type Pilot struct {
	view     func() game.Snapshot
	fallback core.InputSource

	// Margin is the clearance kept above the gap's bottom edge.
	Margin float64
	// AutoRestart restarts the session after a game over.
	AutoRestart bool
}

// NewPilot creates a pilot reading state from view. fallback may be nil.
func NewPilot(view func() game.Snapshot, fallback core.InputSource) *Pilot {
	return &Pilot{view: view, fallback: fallback, Margin: DefaultMargin}
}

// Drain returns the fallback's events plus a jump or restart when needed.
func (p *Pilot) Drain() []core.Event {
	var events []core.Event
	if p.fallback != nil {
		events = p.fallback.Drain()
	}

	snap := p.view()
	switch snap.State {
	case game.StateRunning:
		if ShouldJump(snap, p.Margin) {
			events = append(events, core.KeyEvent(core.ActionJump))
		}
	case game.StateGameOver:
		if p.AutoRestart {
			events = append(events, core.KeyEvent(core.ActionRestart))
		}
	}
	return events
}

// Target returns the first obstacle the body has not fully cleared.
func Target(snap game.Snapshot) (game.ObstacleView, bool) {
	body := snap.Player
	for _, o := range snap.Obstacles {
		if o.Right >= body.Position.X-body.Radius {
			return o, true
		}
	}
	return game.ObstacleView{}, false
}

// ShouldJump reports whether the body, if left alone, would be falling and
// below the safe line on the next tick. The safe line sits margin above the
// target gap's bottom edge, or above the middle of the playfield when no
// obstacle is ahead.
func ShouldJump(snap game.Snapshot, margin float64) bool {
	body := snap.Player
	k := physics.Kinematic{
		Position:     body.Position,
		Velocity:     body.Velocity,
		Acceleration: core.V(0, body.Gravity),
	}
	if k.VelocityAfter(1).Y < 0 {
		return false
	}

	var limit float64
	if o, ok := Target(snap); ok {
		limit = o.GapBottom
	} else {
		limit = (snap.CeilingY + snap.FloorY) / 2
	}

	return k.PositionAfter(1).Y+body.Radius+margin > limit
}
