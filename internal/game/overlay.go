package game

import (
	"strconv"

	"github.com/vovakirdan/gatefall/internal/core"
)

// Formatter produces the dynamic part of an overlay line.
type Formatter func() string

// IntFormatter formats the value returned by f as a decimal integer.
func IntFormatter(f func() int) Formatter {
	return func() string { return strconv.Itoa(f()) }
}

// Overlay is a line of text drawn on top of the frame, such as a score or
// FPS counter.
type Overlay struct {
	Label  string
	Format Formatter
	Pos    core.Vec2
	Color  core.Color
}

// Text returns the label followed by the formatted value.
func (o Overlay) Text() string {
	if o.Format == nil {
		return o.Label
	}
	return o.Label + o.Format()
}

// Draw renders the overlay. Empty lines are skipped.
func (o Overlay) Draw(s core.Surface) {
	if text := o.Text(); text != "" {
		s.Text(text, o.Pos, o.Color)
	}
}
