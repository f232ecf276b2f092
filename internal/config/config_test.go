package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/gatefall/internal/core"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig differ:\nyaml:    %+v\ndefault: %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConstants(t *testing.T) {
	cfg := DefaultConfig()

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"distance", float64(cfg.Obstacles.Distance), 300},
		{"minimum_height", float64(cfg.Obstacles.MinimumHeight), 100},
		{"gap", float64(cfg.Obstacles.Gap), 200},
		{"width", float64(cfg.Obstacles.Width), 100},
		{"speed", cfg.Obstacles.Speed, -3},
		{"gravity", cfg.Physics.Gravity, 0.5},
		{"jump", cfg.Physics.JumpImpulse, -9},
		{"radius", cfg.Player.Radius, 30},
		{"screen width", float64(cfg.Screen.Width), 1000},
		{"screen height", float64(cfg.Screen.Height), 750},
		{"floor", float64(cfg.Boundaries.FloorThickness), 35},
		{"ceiling", float64(cfg.Boundaries.CeilingThickness), 35},
		{"fps", float64(cfg.Loop.TargetFPS), 60},
		{"window", float64(cfg.Loop.CollisionWindow), 2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %g, expected %g", c.name, c.got, c.want)
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte(`
obstacles:
  gap: 250
player:
  color: "#102030"
loop:
  halt_on_collision: false
`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Obstacles.Gap != 250 {
		t.Errorf("gap = %d, expected 250", cfg.Obstacles.Gap)
	}
	if cfg.Obstacles.Width != 100 {
		t.Errorf("unset width should keep default, got %d", cfg.Obstacles.Width)
	}
	if cfg.Player.Color == nil || *cfg.Player.Color != core.RGB(0x10, 0x20, 0x30) {
		t.Errorf("player color = %v, expected #102030", cfg.Player.Color)
	}
	if cfg.Loop.HaltOnCollision {
		t.Error("halt_on_collision should be overridden to false")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("empty document should yield defaults")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("obstacles:\n  gapp: 10\n"))
	if err == nil {
		t.Fatal("unknown key should be rejected")
	}
}

func TestImpossibleGeometryRejected(t *testing.T) {
	// 2*300 + 200 = 800 > 750
	_, err := Parse([]byte("obstacles:\n  minimum_height: 300\n"))
	if !errors.Is(err, ErrImpossibleGeometry) {
		t.Fatalf("expected ErrImpossibleGeometry, got %v", err)
	}

	// Exactly filling the screen is allowed: the range collapses to one value.
	if err := CheckGeometry(750, 275, 200); err != nil {
		t.Errorf("2*275 + 200 = 750 should be allowed, got %v", err)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Obstacles.Speed = 3
	cfg.Player.Radius = 0
	cfg.Loop.CollisionWindow = 0
	cfg.Loop.TargetFPS = 0

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	for _, want := range []string{"obstacles.speed", "player.radius", "collision_window", "target_fps"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestValidateSpawnInsidePlayfield(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Y = 20 // radius 30 pokes through the 35-unit ceiling
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("spawn inside ceiling should be invalid, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadWithSource(path)
	if err != nil {
		t.Fatalf("LoadWithSource() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("gravity = %g, expected 0.25", cfg.Physics.Gravity)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("missing custom config should be an error")
	}
}

func TestLoadLocalDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir) // keep the developer's own config out of the test
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(LocalPath, []byte("loop:\n  target_fps: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() failed: %v", err)
	}
	if source != LocalPath {
		t.Errorf("source = %q, expected %q", source, LocalPath)
	}
	if cfg.Loop.TargetFPS != 30 {
		t.Errorf("target_fps = %d, expected 30", cfg.Loop.TargetFPS)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, source, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() failed: %v", err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, expected embedded", source)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("embedded fallback should equal defaults")
	}
}

func TestMarshalParses(t *testing.T) {
	cfg := DefaultConfig()
	c := core.RGB(1, 2, 3)
	cfg.Player.Color = &c

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "#010203") {
		t.Errorf("marshaled YAML should contain hex color:\n%s", data)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("Parse(Marshal(cfg)) differs from cfg")
	}
}
