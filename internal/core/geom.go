// Package core provides fundamental types and utilities for the game platform:
// geometry, colors, input events, and the interfaces through which the
// simulation reaches its rendering surface, input source and frame pacer.
// It contains no Bubble Tea or Ebiten code so the simulation stays testable.
package core

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec2 is a 2D vector in world coordinates (x grows right, y grows down).
type Vec2 = cp.Vector

// V is shorthand for building a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Rect represents an axis-aligned box in cell coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PointInPolygon reports whether p lies inside the polygon using the
// even-odd rule. Points exactly on an edge may land on either side.
func PointInPolygon(p Vec2, poly []Vec2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// AxisAligned reports whether a quad TL,TR,BR,BL is an axis-aligned rectangle,
// and returns its bounds when it is.
func AxisAligned(quad [4]Vec2) (x, y, w, h float64, ok bool) {
	tl, tr, br, bl := quad[0], quad[1], quad[2], quad[3]
	if tl.Y != tr.Y || bl.Y != br.Y || tl.X != bl.X || tr.X != br.X {
		return 0, 0, 0, 0, false
	}
	return tl.X, tl.Y, tr.X - tl.X, bl.Y - tl.Y, true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
