package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/gatefall/internal/core"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestPollKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want []core.Action
	}{
		{"nothing", nil, nil},
		{"space", []ebiten.Key{ebiten.KeySpace}, []core.Action{core.ActionJump}},
		{"pause and restart", []ebiten.Key{ebiten.KeyP, ebiten.KeyR}, []core.Action{core.ActionPause, core.ActionRestart}},
		{"quit", []ebiten.Key{ebiten.KeyQ}, []core.Action{core.ActionQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.FrameFromEvents(pollKeys(pressed(tt.keys...)))
			for _, a := range tt.want {
				if !frame.Has(a) {
					t.Errorf("missing %v", a)
				}
			}
			if len(frame.Actions) != len(tt.want) {
				t.Errorf("got %d actions, want %d", len(frame.Actions), len(tt.want))
			}
		})
	}
}

func TestPollKeysQuitIsQuitEvent(t *testing.T) {
	events := pollKeys(pressed(ebiten.KeyQ))
	if len(events) != 1 || events[0].Type != core.EventQuit {
		t.Errorf("events = %+v, want one quit event", events)
	}
}
