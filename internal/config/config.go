// Package config provides YAML-based game configuration loading and
// validation. All values are start-of-session constants.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gatefall/internal/core"
)

var (
	// ErrInvalid marks a configuration value outside its allowed range.
	ErrInvalid = errors.New("invalid configuration")
	// ErrImpossibleGeometry marks obstacle parameters that cannot fit on the
	// screen: 2*minimum_height + gap > screen height.
	ErrImpossibleGeometry = errors.New("impossible obstacle geometry")
)

// Config contains all configuration for a game session.
type Config struct {
	Screen     ScreenConfig   `yaml:"screen"`
	Physics    PhysicsConfig  `yaml:"physics"`
	Obstacles  ObstacleConfig `yaml:"obstacles"`
	Player     PlayerConfig   `yaml:"player"`
	Boundaries BoundaryConfig `yaml:"boundaries"`
	Loop       LoopConfig     `yaml:"loop"`
}

// ScreenConfig defines the playfield in world units.
type ScreenConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background core.Color `yaml:"background"`
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Vertical velocity set by a jump (negative = up)
}

// ObstacleConfig defines obstacle geometry and motion.
type ObstacleConfig struct {
	Width         int        `yaml:"width"`
	Speed         float64    `yaml:"speed"`          // Horizontal velocity per tick (negative = left)
	Gap           int        `yaml:"gap"`            // Vertical opening between upper and lower parts
	MinimumHeight int        `yaml:"minimum_height"` // Minimum height of either part
	Distance      int        `yaml:"distance"`       // Horizontal distance between consecutive obstacles
	Color         core.Color `yaml:"color"`
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	// Color is optional; a random color is picked per session when unset.
	Color *core.Color `yaml:"color,omitempty"`
}

// BoundaryConfig defines the static floor and ceiling.
type BoundaryConfig struct {
	FloorThickness   int        `yaml:"floor_thickness"`
	CeilingThickness int        `yaml:"ceiling_thickness"`
	Color            core.Color `yaml:"color"`
}

// LoopConfig defines game loop behavior.
type LoopConfig struct {
	TargetFPS int `yaml:"target_fps"`
	// CollisionWindow is how many of the leftmost obstacles get pass and
	// collision checks each tick. Spawn spacing keeps the player from ever
	// touching a third obstacle, so 2 is enough for the default geometry.
	CollisionWindow int        `yaml:"collision_window"`
	HaltOnCollision bool       `yaml:"halt_on_collision"`
	ShowFPS         bool       `yaml:"show_fps"`
	TextColor       core.Color `yaml:"text_color"`
}

// Validate checks every field and returns all violations joined.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		invalid("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	}
	if c.Obstacles.Width <= 0 {
		invalid("obstacles.width %d must be positive", c.Obstacles.Width)
	}
	if c.Obstacles.Speed >= 0 {
		invalid("obstacles.speed %g must be negative", c.Obstacles.Speed)
	}
	if c.Obstacles.Gap <= 0 {
		invalid("obstacles.gap %d must be positive", c.Obstacles.Gap)
	}
	if c.Obstacles.MinimumHeight < 0 {
		invalid("obstacles.minimum_height %d must not be negative", c.Obstacles.MinimumHeight)
	}
	if c.Obstacles.Distance <= 0 {
		invalid("obstacles.distance %d must be positive", c.Obstacles.Distance)
	}
	if err := CheckGeometry(c.Screen.Height, c.Obstacles.MinimumHeight, c.Obstacles.Gap); err != nil {
		errs = append(errs, err)
	}
	if c.Player.Radius <= 0 {
		invalid("player.radius %g must be positive", c.Player.Radius)
	}
	if c.Boundaries.FloorThickness < 0 || c.Boundaries.CeilingThickness < 0 {
		invalid("boundary thickness must not be negative")
	}
	top := float64(c.Boundaries.CeilingThickness)
	bottom := float64(c.Screen.Height - c.Boundaries.FloorThickness)
	if c.Player.Y-c.Player.Radius < top || c.Player.Y+c.Player.Radius > bottom {
		invalid("player spawn y %g (radius %g) is outside the playfield [%g, %g]",
			c.Player.Y, c.Player.Radius, top, bottom)
	}
	if c.Player.X < 0 || c.Player.X > float64(c.Screen.Width) {
		invalid("player spawn x %g is off screen", c.Player.X)
	}
	if c.Loop.TargetFPS <= 0 {
		invalid("loop.target_fps %d must be positive", c.Loop.TargetFPS)
	}
	if c.Loop.CollisionWindow < 1 {
		invalid("loop.collision_window %d must be at least 1", c.Loop.CollisionWindow)
	}

	return errors.Join(errs...)
}

// CheckGeometry rejects obstacle parameters whose upper-height sampling range
// [minimum, height-gap-minimum] would be empty.
func CheckGeometry(screenHeight, minimumHeight, gap int) error {
	if 2*minimumHeight+gap > screenHeight {
		return fmt.Errorf("%w: 2*minimum_height(%d) + gap(%d) exceeds screen height %d",
			ErrImpossibleGeometry, minimumHeight, gap, screenHeight)
	}
	return nil
}
