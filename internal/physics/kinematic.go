// Package physics provides the kinematic state shared by every moving body.
package physics

import "github.com/vovakirdan/gatefall/internal/core"

// Kinematic holds position, velocity and a constant acceleration.
// One Step is one simulation tick; there is no sub-stepping and no dt.
type Kinematic struct {
	Position     core.Vec2
	Velocity     core.Vec2
	Acceleration core.Vec2
}

// NewKinematic creates a body at rest at pos with constant acceleration acc.
func NewKinematic(pos, acc core.Vec2) Kinematic {
	return Kinematic{Position: pos, Acceleration: acc}
}

// Step integrates one tick with semi-implicit Euler: the velocity is updated
// first and the new velocity moves the position.
func (k *Kinematic) Step() {
	k.Velocity = k.Velocity.Add(k.Acceleration)
	k.Position = k.Position.Add(k.Velocity)
}

// Translate moves the position by the current velocity without integrating
// acceleration. Obstacles use it to scroll their corners.
func (k *Kinematic) Translate() core.Vec2 {
	k.Position = k.Position.Add(k.Velocity)
	return k.Velocity
}

// SetVelocityY overwrites the vertical velocity (impulse override).
func (k *Kinematic) SetVelocityY(vy float64) {
	k.Velocity.Y = vy
}

// VelocityAfter returns the closed-form velocity after n impulse-free steps.
func (k Kinematic) VelocityAfter(n int) core.Vec2 {
	return k.Velocity.Add(k.Acceleration.Mult(float64(n)))
}

// PositionAfter returns the closed-form position after n impulse-free steps:
// p0 + n*v0 + a*n(n+1)/2.
func (k Kinematic) PositionAfter(n int) core.Vec2 {
	fn := float64(n)
	return k.Position.Add(k.Velocity.Mult(fn)).Add(k.Acceleration.Mult(fn * (fn + 1) / 2))
}
