package game

import (
	"github.com/vovakirdan/gatefall/internal/core"
	"github.com/vovakirdan/gatefall/internal/physics"
)

// Player is the circular body the user controls. Only its vertical motion
// changes; the horizontal position stays fixed.
type Player struct {
	ID     int
	Radius float64
	Color  core.Color

	jumpImpulse float64
	motion      physics.Kinematic
}

// NewPlayer creates a player at rest at pos under constant gravity.
func NewPlayer(id int, pos core.Vec2, radius, gravity, jumpImpulse float64, color core.Color) *Player {
	return &Player{
		ID:          id,
		Radius:      radius,
		Color:       color,
		jumpImpulse: jumpImpulse,
		motion:      physics.NewKinematic(pos, core.V(0, gravity)),
	}
}

// Position returns the body center.
func (p *Player) Position() core.Vec2 {
	return p.motion.Position
}

// Velocity returns the current velocity.
func (p *Player) Velocity() core.Vec2 {
	return p.motion.Velocity
}

// Gravity returns the constant vertical acceleration.
func (p *Player) Gravity() float64 {
	return p.motion.Acceleration.Y
}

// Update advances one tick.
func (p *Player) Update() {
	p.motion.Step()
}

// Jump overwrites the vertical velocity with the impulse. Repeated jumps in
// the same tick are idempotent.
func (p *Player) Jump() {
	p.motion.SetVelocityY(p.jumpImpulse)
}

// Draw renders the body.
func (p *Player) Draw(s core.Surface) {
	s.FillCircle(p.motion.Position, p.Radius, p.Color)
}
