package game

import (
	"github.com/vovakirdan/gatefall/internal/core"
	"github.com/vovakirdan/gatefall/internal/physics"
)

// Quad is four corners in clockwise order: top-left, top-right,
// bottom-right, bottom-left.
type Quad [4]core.Vec2

// Translate moves every corner by d.
func (q *Quad) Translate(d core.Vec2) {
	for i := range q {
		q[i] = q[i].Add(d)
	}
}

// Region identifies which collision rule matched.
type Region int

const (
	RegionNone   Region = iota
	Region1             // beside the upper part
	Region3             // beside the lower part
	Region4Upper        // inside the gate, touching the upper part's bottom edge
	Region4Lower        // inside the gate, touching the lower part's top edge
	RegionCorner        // near one of the gate's inner corners (areas 2 and 5)
)

// String returns a short name for logs.
func (r Region) String() string {
	switch r {
	case RegionNone:
		return "none"
	case Region1:
		return "region1"
	case Region3:
		return "region3"
	case Region4Upper:
		return "region4-upper"
	case Region4Lower:
		return "region4-lower"
	case RegionCorner:
		return "corner"
	default:
		return "unknown"
	}
}

// Obstacle is a gated barrier: a solid upper part and a solid lower part
// separated by a gap the player must pass through.
//
//	----------A------B----------
//	          | upper|
//	          |      |
//	          D------C
//	   (body)   gate
//	          E------F
//	          |      |
//	          | lower|
//	----------H------G----------
type Obstacle struct {
	ID    int
	Upper Quad // A, B, C, D
	Gate  Quad // D, C, F, E (informational)
	Lower Quad // E, F, G, H
	Color core.Color

	motion physics.Kinematic
	passed map[int]struct{}
}

// NewObstacle builds an obstacle whose left edge is at x, spanning y from 0
// to screenHeight with an opening of gap starting at upperHeight.
func NewObstacle(id int, x, width, upperHeight, gap, screenHeight, speed float64, color core.Color) *Obstacle {
	a := core.V(x, 0)
	b := core.V(x+width, 0)
	c := core.V(x+width, upperHeight)
	d := core.V(x, upperHeight)
	e := core.V(x, upperHeight+gap)
	f := core.V(x+width, upperHeight+gap)
	g := core.V(x+width, screenHeight)
	h := core.V(x, screenHeight)

	return &Obstacle{
		ID:     id,
		Upper:  Quad{a, b, c, d},
		Gate:   Quad{d, c, f, e},
		Lower:  Quad{e, f, g, h},
		Color:  color,
		motion: physics.Kinematic{Velocity: core.V(speed, 0)},
		passed: make(map[int]struct{}),
	}
}

// Velocity returns the obstacle's horizontal velocity vector.
func (o *Obstacle) Velocity() core.Vec2 {
	return o.motion.Velocity
}

// Move translates all corners by the velocity and reports whether the
// obstacle has left the screen (its right edge crossed x = 0).
func (o *Obstacle) Move() (offscreen bool) {
	d := o.motion.Translate()
	o.Upper.Translate(d)
	o.Gate.Translate(d)
	o.Lower.Translate(d)
	return o.RightEdge() < 0
}

// RightEdge is the x of the upper part's top-right corner (B).
func (o *Obstacle) RightEdge() float64 {
	return o.Upper[1].X
}

// TrailingEdge is the x of the upper part's bottom-right corner (C).
func (o *Obstacle) TrailingEdge() float64 {
	return o.Upper[2].X
}

// GapTop is the y of the upper part's bottom edge.
func (o *Obstacle) GapTop() float64 {
	return o.Upper[3].Y
}

// GapBottom is the y of the lower part's top edge.
func (o *Obstacle) GapBottom() float64 {
	return o.Lower[0].Y
}

// Collide tests a circle against the obstacle. Rules are evaluated in order
// and the first match wins; overlapping regions depend on that order.
func (o *Obstacle) Collide(center core.Vec2, r float64) (Region, bool) {
	a, c, d := o.Upper[0], o.Upper[2], o.Upper[3]
	e, f, h := o.Lower[0], o.Lower[1], o.Lower[3]
	cx, cy := center.X, center.Y

	switch {
	case a.Y < cy && cy < d.Y && a.X < cx+r && cx+r < c.X:
		return Region1, true
	case e.Y < cy && cy < h.Y && e.X < cx+r && cx+r < f.X:
		return Region3, true
	case d.X < cx && cx < c.X && cy-r < d.Y:
		return Region4Upper, true
	case e.X < cx && cx < f.X && cy+r > e.Y:
		return Region4Lower, true
	}

	for _, corner := range [...]core.Vec2{d, e, c, f} {
		if core.Distance(corner, center) < r {
			return RegionCorner, true
		}
	}
	return RegionNone, false
}

// Pass credits the player once when the trailing edge falls strictly behind
// the player's leading edge. It returns true only on the crediting call.
func (o *Obstacle) Pass(p *Player) bool {
	if _, done := o.passed[p.ID]; done {
		return false
	}
	if o.TrailingEdge() < p.Position().X-p.Radius {
		o.passed[p.ID] = struct{}{}
		return true
	}
	return false
}

// Passed reports whether the player has been credited for this obstacle.
func (o *Obstacle) Passed(p *Player) bool {
	_, ok := o.passed[p.ID]
	return ok
}

// Draw renders the upper and lower parts. Axis-aligned parts use the cheaper
// rectangle primitive.
func (o *Obstacle) Draw(s core.Surface) {
	for _, part := range []Quad{o.Upper, o.Lower} {
		if x, y, w, h, ok := core.AxisAligned(part); ok {
			s.FillRect(x, y, w, h, o.Color)
			continue
		}
		s.FillPolygon(part[:], o.Color)
	}
}
