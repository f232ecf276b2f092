package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gatefall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Event
		ok   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyEvent(core.ActionJump), true},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyEvent(core.ActionJump), true},
		{"w", runeKey('w'), core.KeyEvent(core.ActionJump), true},
		{"p", runeKey('p'), core.KeyEvent(core.ActionPause), true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEvent(core.ActionPause), true},
		{"r", runeKey('r'), core.KeyEvent(core.ActionRestart), true},
		{"q", runeKey('q'), core.QuitEvent(), true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.QuitEvent(), true},
		{"screenshot is not a game key", tea.KeyMsg{Type: tea.KeyCtrlS}, core.Event{}, false},
		{"unbound", runeKey('x'), core.Event{}, false},
	}

	keys := DefaultKeyMap()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.MapKey(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Errorf("MapKey(%q) = (%+v, %v), want (%+v, %v)", tt.msg.String(), got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if n := len(keys.ShortHelp()); n != 5 {
		t.Errorf("ShortHelp has %d bindings, want 5", n)
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 6 {
		t.Errorf("FullHelp has %d bindings, want 6", total)
	}
}
