package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gatefall/internal/core"
)

// styleKey identifies a foreground/background combination.
type styleKey struct {
	fg, bg       core.Color
	hasFg, hasBg bool
}

func keyOf(c core.Cell) styleKey {
	return styleKey{fg: c.Fg, bg: c.Bg, hasFg: c.HasFg, hasBg: c.HasBg}
}

// Renderer converts Screen buffers to styled strings. Styles are cached per
// color pair. A Renderer is not safe for concurrent use; each session owns
// one.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer bound to a lipgloss renderer, which decides
// the color profile. A nil lg uses the default renderer.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{lg: lg, styles: make(map[styleKey]lipgloss.Style)}
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if k.hasFg {
		st = st.Foreground(lipgloss.Color(k.fg.Hex()))
	}
	if k.hasBg {
		st = st.Background(lipgloss.Color(k.bg.Hex()))
	}
	r.styles[k] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := keyOf(s.GetCell(x, y))
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if keyOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
