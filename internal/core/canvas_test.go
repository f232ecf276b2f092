package core

import "testing"

func TestCanvasScalesWorldToCells(t *testing.T) {
	// 100x100 world onto 10x10 cells: 10 world units per cell.
	s := NewScreen(10, 10)
	c := NewCanvas(s, 100, 100)

	c.Fill(ColorGray)
	c.FillRect(0, 90, 100, 10, ColorBlack)

	for x := 0; x < 10; x++ {
		if s.Get(x, 9) != '█' {
			t.Errorf("floor cell (%d, 9) should be filled, got %q", x, s.Get(x, 9))
		}
		if s.Get(x, 8) != ' ' {
			t.Errorf("cell (%d, 8) above floor should be blank, got %q", x, s.Get(x, 8))
		}
	}
	if cell := s.GetCell(0, 0); !cell.HasBg || cell.Bg != ColorGray {
		t.Errorf("Fill should set background, got %+v", cell)
	}
}

func TestCanvasPolygon(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, 100, 100)

	c.FillPolygon([]Vec2{V(40, 0), V(60, 0), V(60, 30), V(40, 30)}, ColorGreen)

	for y := 0; y < 3; y++ {
		for x := 4; x < 6; x++ {
			if s.Get(x, y) != '█' {
				t.Errorf("cell (%d, %d) should be inside polygon", x, y)
			}
		}
	}
	if s.Get(3, 0) != ' ' || s.Get(6, 0) != ' ' || s.Get(4, 3) != ' ' {
		t.Error("cells outside polygon should stay blank")
	}
}

func TestCanvasCircle(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, 100, 100)

	c.FillCircle(V(55, 55), 12, ColorRed)
	if s.Get(5, 5) != '●' {
		t.Errorf("circle center cell should be painted, got %q", s.Get(5, 5))
	}
	if s.Get(0, 0) != ' ' {
		t.Error("far cell should stay blank")
	}

	// A circle smaller than a cell still shows up.
	c.FillCircle(V(21, 21), 1, ColorRed)
	if s.Get(2, 2) != '●' {
		t.Errorf("tiny circle should mark its cell, got %q", s.Get(2, 2))
	}
}

func TestCanvasText(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewCanvas(s, 200, 100)

	c.Text("Score: 3", V(20, 10), ColorWhite)
	if row := s.Row(1); row[2:10] != "Score: 3" {
		t.Errorf("text should start at cell (2, 1), row = %q", row)
	}
}

func TestCanvasEmptyScreen(t *testing.T) {
	c := NewCanvas(NewScreen(0, 0), 100, 100)
	// None of these may panic.
	c.FillRect(0, 0, 10, 10, ColorBlack)
	c.FillPolygon([]Vec2{V(0, 0), V(1, 0), V(1, 1)}, ColorBlack)
	c.FillCircle(V(0, 0), 5, ColorBlack)
	c.Text("x", V(0, 0), ColorBlack)
}
