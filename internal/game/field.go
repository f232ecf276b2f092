package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gatefall/internal/config"
	"github.com/vovakirdan/gatefall/internal/core"
)

// Field owns the ordered set of live obstacles. Obstacles are kept in spawn
// order, so the front is the leftmost and the back is the newest.
type Field struct {
	obstacles []*Obstacle
	rng       *rand.Rand
	logger    *log.Logger

	screenW  float64
	screenH  float64
	width    float64
	speed    float64
	gap      int
	minimum  int
	distance float64
	color    core.Color

	nextID int
}

// NewField creates an empty field. The first CheckPosition call spawns the
// first obstacle.
func NewField(cfg config.Config, rng *rand.Rand, logger *log.Logger) (*Field, error) {
	if err := config.CheckGeometry(cfg.Screen.Height, cfg.Obstacles.MinimumHeight, cfg.Obstacles.Gap); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Field{
		obstacles: make([]*Obstacle, 0, 8),
		rng:       rng,
		logger:    logger,
		screenW:   float64(cfg.Screen.Width),
		screenH:   float64(cfg.Screen.Height),
		width:     float64(cfg.Obstacles.Width),
		speed:     cfg.Obstacles.Speed,
		gap:       cfg.Obstacles.Gap,
		minimum:   cfg.Obstacles.MinimumHeight,
		distance:  float64(cfg.Obstacles.Distance),
		color:     cfg.Obstacles.Color,
	}, nil
}

// Create appends a new obstacle at the right screen edge. The upper part's
// height is drawn uniformly from [minimum, height-gap-minimum].
func (f *Field) Create() *Obstacle {
	upperMax := int(f.screenH) - f.gap - f.minimum
	upper := f.minimum + f.rng.Intn(upperMax-f.minimum+1)

	o := NewObstacle(f.nextID, f.screenW, f.width, float64(upper), float64(f.gap), f.screenH, f.speed, f.color)
	f.nextID++
	f.obstacles = append(f.obstacles, o)

	f.logger.Debug("obstacle spawned", "id", o.ID, "upper", upper, "live", len(f.obstacles))
	return o
}

// MoveAll advances every obstacle one tick and drops those that left the
// screen. Relative order is preserved. It returns how many were removed.
func (f *Field) MoveAll() int {
	kept := f.obstacles[:0]
	removed := 0
	for _, o := range f.obstacles {
		if o.Move() {
			removed++
			f.logger.Debug("obstacle removed", "id", o.ID)
			continue
		}
		kept = append(kept, o)
	}
	// Clear the tail so removed obstacles can be collected.
	for i := len(kept); i < len(f.obstacles); i++ {
		f.obstacles[i] = nil
	}
	f.obstacles = kept
	return removed
}

// CheckPosition spawns a new obstacle once the newest one's trailing edge is
// at least the configured distance from the right screen edge. An empty field
// always spawns.
func (f *Field) CheckPosition() bool {
	if tail := f.Tail(); tail != nil && f.screenW-tail.TrailingEdge() < f.distance {
		return false
	}
	f.Create()
	return true
}

// DrawAll renders every obstacle.
func (f *Field) DrawAll(s core.Surface) {
	for _, o := range f.obstacles {
		o.Draw(s)
	}
}

// Window returns up to n of the leftmost obstacles.
func (f *Field) Window(n int) []*Obstacle {
	if n > len(f.obstacles) {
		n = len(f.obstacles)
	}
	return f.obstacles[:n]
}

// Obstacles returns the live obstacles in spawn order. The slice must not be
// modified.
func (f *Field) Obstacles() []*Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// Tail returns the newest obstacle or nil.
func (f *Field) Tail() *Obstacle {
	if len(f.obstacles) == 0 {
		return nil
	}
	return f.obstacles[len(f.obstacles)-1]
}
