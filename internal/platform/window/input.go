package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/gatefall/internal/core"
)

// keyBindings maps keys to game actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
}

// pollKeys returns an event for every bound key reported by justPressed.
func pollKeys(justPressed func(ebiten.Key) bool) []core.Event {
	var events []core.Event
	for _, b := range keyBindings {
		if !justPressed(b.key) {
			continue
		}
		if b.action == core.ActionQuit {
			events = append(events, core.QuitEvent())
			continue
		}
		events = append(events, core.KeyEvent(b.action))
	}
	return events
}
