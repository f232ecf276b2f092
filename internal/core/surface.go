package core

import "sync"

// Surface is the rendering target the game loop draws into.
// Coordinates are world units; implementations scale as needed.
type Surface interface {
	// Fill clears the whole surface with a color.
	Fill(c Color)
	// FillRect draws a filled axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)
	// FillPolygon draws a filled polygon whose vertices are in winding order.
	FillPolygon(points []Vec2, c Color)
	// FillCircle draws a filled circle.
	FillCircle(center Vec2, radius float64, c Color)
	// Text draws a string with its top-left corner at pos.
	Text(s string, pos Vec2, c Color)
	// Present marks the frame as complete.
	Present()
}

// DrawOp identifies a recorded drawing primitive.
type DrawOp int

const (
	OpFill DrawOp = iota
	OpRect
	OpPolygon
	OpCircle
	OpText
)

// String returns the primitive name.
func (o DrawOp) String() string {
	switch o {
	case OpFill:
		return "fill"
	case OpRect:
		return "rect"
	case OpPolygon:
		return "polygon"
	case OpCircle:
		return "circle"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawCommand is one recorded primitive.
type DrawCommand struct {
	Op     DrawOp
	Color  Color
	X, Y   float64 // Rect origin, circle center, text position
	W, H   float64 // Rect size
	Radius float64
	Points []Vec2
	Text   string
}

// DrawList is a double-buffered Surface. The simulation records a frame into
// the back buffer; Present swaps it to the front where renderers replay it.
// Recording and replaying may happen on different goroutines.
type DrawList struct {
	mu     sync.Mutex
	back   []DrawCommand
	front  []DrawCommand
	frames int
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{
		back:  make([]DrawCommand, 0, 32),
		front: make([]DrawCommand, 0, 32),
	}
}

func (d *DrawList) record(cmd DrawCommand) {
	d.mu.Lock()
	d.back = append(d.back, cmd)
	d.mu.Unlock()
}

// Fill records a clear.
func (d *DrawList) Fill(c Color) {
	d.record(DrawCommand{Op: OpFill, Color: c})
}

// FillRect records a rectangle.
func (d *DrawList) FillRect(x, y, w, h float64, c Color) {
	d.record(DrawCommand{Op: OpRect, Color: c, X: x, Y: y, W: w, H: h})
}

// FillPolygon records a polygon. The points are copied.
func (d *DrawList) FillPolygon(points []Vec2, c Color) {
	pts := make([]Vec2, len(points))
	copy(pts, points)
	d.record(DrawCommand{Op: OpPolygon, Color: c, Points: pts})
}

// FillCircle records a circle.
func (d *DrawList) FillCircle(center Vec2, radius float64, c Color) {
	d.record(DrawCommand{Op: OpCircle, Color: c, X: center.X, Y: center.Y, Radius: radius})
}

// Text records a text draw.
func (d *DrawList) Text(s string, pos Vec2, c Color) {
	d.record(DrawCommand{Op: OpText, Color: c, X: pos.X, Y: pos.Y, Text: s})
}

// Present swaps the back buffer to the front.
func (d *DrawList) Present() {
	d.mu.Lock()
	d.front, d.back = d.back, d.front[:0]
	d.frames++
	d.mu.Unlock()
}

// Frames returns how many frames have been presented.
func (d *DrawList) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// Commands returns a copy of the last presented frame.
func (d *DrawList) Commands() []DrawCommand {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]DrawCommand, len(d.front))
	copy(out, d.front)
	return out
}

// Replay draws the last presented frame onto dst. dst.Present is not called.
func (d *DrawList) Replay(dst Surface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, cmd := range d.front {
		switch cmd.Op {
		case OpFill:
			dst.Fill(cmd.Color)
		case OpRect:
			dst.FillRect(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Color)
		case OpPolygon:
			dst.FillPolygon(cmd.Points, cmd.Color)
		case OpCircle:
			dst.FillCircle(V(cmd.X, cmd.Y), cmd.Radius, cmd.Color)
		case OpText:
			dst.Text(cmd.Text, V(cmd.X, cmd.Y), cmd.Color)
		}
	}
}

// Discard is a Surface that drops everything (headless runs).
type Discard struct{}

func (Discard) Fill(Color) {}
func (Discard) FillRect(_, _, _, _ float64, _ Color) {}
func (Discard) FillPolygon([]Vec2, Color) {}
func (Discard) FillCircle(Vec2, float64, Color) {}
func (Discard) Text(string, Vec2, Color) {}
func (Discard) Present() {}
