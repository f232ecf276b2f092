package game

import "github.com/vovakirdan/gatefall/internal/core"

// Floor is the static bar along the bottom edge.
type Floor struct {
	Top       float64 // y of the floor's upper surface
	Width     float64
	Thickness float64
	Color     core.Color
}

// NewFloor places a floor of the given thickness at the bottom of the screen.
func NewFloor(screenW, screenH, thickness float64, c core.Color) Floor {
	return Floor{Top: screenH - thickness, Width: screenW, Thickness: thickness, Color: c}
}

// Collides reports whether the body's bottom edge is strictly below the
// floor's upper surface.
func (f Floor) Collides(p *Player) bool {
	return p.Position().Y+p.Radius > f.Top
}

// Draw renders the floor.
func (f Floor) Draw(s core.Surface) {
	s.FillRect(0, f.Top, f.Width, f.Thickness, f.Color)
}

// Ceiling is the static bar along the top edge.
type Ceiling struct {
	Bottom float64 // y of the ceiling's lower surface
	Width  float64
	Color  core.Color
}

// NewCeiling places a ceiling of the given thickness at the top of the screen.
func NewCeiling(screenW, thickness float64, c core.Color) Ceiling {
	return Ceiling{Bottom: thickness, Width: screenW, Color: c}
}

// Collides reports whether the body's top edge is strictly above the
// ceiling's lower surface.
func (c Ceiling) Collides(p *Player) bool {
	return p.Position().Y-p.Radius < c.Bottom
}

// Draw renders the ceiling.
func (c Ceiling) Draw(s core.Surface) {
	s.FillRect(0, 0, c.Width, c.Bottom, c.Color)
}
