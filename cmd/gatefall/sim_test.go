package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/gatefall/internal/config"
	"github.com/vovakirdan/gatefall/internal/game"
)

func TestSimulateStopsAtFirstCollision(t *testing.T) {
	report, err := simulate(context.Background(), simOptions{
		Config: config.DefaultConfig(),
		Seed:   1,
		Ticks:  1000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.State != game.StateGameOver || report.Ticks != 35 {
		t.Errorf("state %v after %d ticks, want game over after 35", report.State, report.Ticks)
	}
	if len(report.Collisions) != 1 || report.Collisions[0].Kind != game.CollisionFloor {
		t.Errorf("collisions = %v, want one floor collision", report.Collisions)
	}
}

func TestSimulateAutopilotUsesBudget(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Obstacles.MinimumHeight = 275

	report, err := simulate(context.Background(), simOptions{
		Config:    cfg,
		Seed:      1,
		Ticks:     800,
		Autopilot: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.Ticks != 800 || report.Restarts != 0 {
		t.Errorf("ticks = %d, restarts = %d", report.Ticks, report.Restarts)
	}
	if report.Score < 3 {
		t.Errorf("score = %d, want at least 3", report.Score)
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, simReport{
		Seed:       7,
		Ticks:      35,
		State:      game.StateGameOver,
		Collisions: []game.Collision{{Kind: game.CollisionFloor}},
	})

	out := buf.String()
	for _, want := range []string{"seed:       7", "state:      game_over", "last: floor"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
