package core

import "math"

// Canvas rasterizes world-space primitives onto a cell Screen.
// A cell is covered by a shape when the world point at the cell's center
// lies inside the shape.
type Canvas struct {
	screen *Screen
	worldW float64
	worldH float64
	block  rune
}

// NewCanvas creates a canvas mapping a worldW x worldH playfield onto screen.
func NewCanvas(screen *Screen, worldW, worldH float64) *Canvas {
	return &Canvas{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
		block:  '█',
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// scale returns world units per cell on each axis.
func (c *Canvas) scale() (sx, sy float64) {
	w, h := c.screen.Width(), c.screen.Height()
	if w == 0 || h == 0 {
		return 0, 0
	}
	return c.worldW / float64(w), c.worldH / float64(h)
}

// center returns the world point at the center of cell (cx, cy).
func (c *Canvas) center(cx, cy int, sx, sy float64) Vec2 {
	return V((float64(cx)+0.5)*sx, (float64(cy)+0.5)*sy)
}

// centerRange returns the half-open cell range whose centers lie in [lo, hi).
func centerRange(lo, hi, scale float64) (int, int) {
	return int(math.Ceil(lo/scale - 0.5)), int(math.Ceil(hi/scale - 0.5))
}

// bounds is the screen in cell coordinates.
func (c *Canvas) bounds() Rect {
	return NewRect(0, 0, c.screen.Width(), c.screen.Height())
}

// cellRange converts a world-space span into the cell index range to scan.
func cellRange(lo, hi, scale float64, limit int) (int, int) {
	from := Clamp(int(math.Floor(lo/scale)), 0, limit)
	to := Clamp(int(math.Ceil(hi/scale)), 0, limit)
	return from, to
}

// Fill paints the background.
func (c *Canvas) Fill(col Color) {
	c.screen.Fill(col)
}

// FillRect paints cells whose centers fall inside the rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	sx, sy := c.scale()
	if sx == 0 {
		return
	}
	x0, x1 := centerRange(x, x+w, sx)
	y0, y1 := centerRange(y, y+h, sy)
	r := NewRect(x0, y0, x1-x0, y1-y0)
	if !r.Intersects(c.bounds()) {
		return
	}
	c.screen.DrawRect(r, c.block, col)
}

// FillPolygon paints cells whose centers fall inside the polygon.
func (c *Canvas) FillPolygon(points []Vec2, col Color) {
	sx, sy := c.scale()
	if sx == 0 || len(points) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	x0, x1 := cellRange(minX, maxX, sx, c.screen.Width())
	y0, y1 := cellRange(minY, maxY, sy, c.screen.Height())
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if PointInPolygon(c.center(cx, cy, sx, sy), points) {
				c.screen.Set(cx, cy, c.block, col)
			}
		}
	}
}

// FillCircle paints cells whose centers fall inside the circle. A circle
// smaller than a cell still marks the cell containing its center.
func (c *Canvas) FillCircle(center Vec2, radius float64, col Color) {
	sx, sy := c.scale()
	if sx == 0 {
		return
	}
	x0, x1 := cellRange(center.X-radius, center.X+radius, sx, c.screen.Width())
	y0, y1 := cellRange(center.Y-radius, center.Y+radius, sy, c.screen.Height())
	painted := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if Distance(c.center(cx, cy, sx, sy), center) <= radius {
				c.screen.Set(cx, cy, '●', col)
				painted = true
			}
		}
	}
	if cx, cy := int(center.X/sx), int(center.Y/sy); !painted && c.bounds().Contains(cx, cy) {
		c.screen.Set(cx, cy, '●', col)
	}
}

// Text writes the string starting at the cell containing pos.
func (c *Canvas) Text(s string, pos Vec2, col Color) {
	sx, sy := c.scale()
	if sx == 0 {
		return
	}
	c.screen.DrawText(int(pos.X/sx), int(pos.Y/sy), s, col)
}

// Present is a no-op; the platform reads the Screen directly.
func (c *Canvas) Present() {}
