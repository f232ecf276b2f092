package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/gatefall/internal/core"
)

// imageSurface draws onto an Ebiten image in world coordinates.
type imageSurface struct {
	dst *ebiten.Image
}

func (s *imageSurface) Fill(c core.Color) {
	s.dst.Fill(c.RGBA())
}

func (s *imageSurface) FillRect(x, y, w, h float64, c core.Color) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), c.RGBA(), false)
}

func (s *imageSurface) FillPolygon(points []core.Vec2, c core.Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c.RGBA())
	vector.FillPath(s.dst, &path, nil, op)
}

func (s *imageSurface) FillCircle(center core.Vec2, radius float64, c core.Color) {
	vector.FillCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), c.RGBA(), true)
}

// Text uses the debug font, which is always white.
func (s *imageSurface) Text(text string, pos core.Vec2, _ core.Color) {
	ebitenutil.DebugPrintAt(s.dst, text, int(pos.X), int(pos.Y))
}

func (s *imageSurface) Present() {}
