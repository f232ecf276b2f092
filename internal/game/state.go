// Package game implements the side-scrolling gate runner: a falling body the
// player keeps aloft while gated obstacles scroll past.
package game

import (
	"fmt"

	"github.com/vovakirdan/gatefall/internal/core"
)

// State is the game loop's lifecycle state.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
	StateQuit
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// CollisionKind identifies what the player hit.
type CollisionKind int

const (
	CollisionFloor CollisionKind = iota
	CollisionCeiling
	CollisionObstacle
)

// String returns the kind name.
func (k CollisionKind) String() string {
	switch k {
	case CollisionFloor:
		return "floor"
	case CollisionCeiling:
		return "ceiling"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Collision describes the first collision detected in a tick.
type Collision struct {
	Kind       CollisionKind
	Region     Region // obstacle collisions only
	ObstacleID int    // obstacle collisions only
}

func (c Collision) String() string {
	if c.Kind == CollisionObstacle {
		return fmt.Sprintf("obstacle %d (%s)", c.ObstacleID, c.Region)
	}
	return c.Kind.String()
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Tick      int
	State     State
	Score     int
	Scored    int
	Collision *Collision
	Spawned   bool
	Removed   int
}

// BodyView is a read-only copy of the player's kinematic state.
type BodyView struct {
	Position core.Vec2
	Velocity core.Vec2
	Radius   float64
	Gravity  float64
}

// ObstacleView is a read-only copy of an obstacle.
type ObstacleView struct {
	ID        int
	Left      float64
	Right     float64
	GapTop    float64
	GapBottom float64
	Passed    bool
}

// Snapshot is a consistent copy of the world taken between ticks.
type Snapshot struct {
	Tick      int
	State     State
	Score     int
	Width     float64
	Height    float64
	CeilingY  float64
	FloorY    float64
	Player    BodyView
	Obstacles []ObstacleView
}
