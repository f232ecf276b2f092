package core

import "testing"

func TestEventQueueDrain(t *testing.T) {
	q := NewEventQueue()

	if events := q.Drain(); len(events) != 0 {
		t.Fatalf("empty queue should drain nothing, got %d events", len(events))
	}

	q.Push(KeyEvent(ActionJump))
	q.Push(KeyEvent(ActionPause))
	q.Push(QuitEvent())

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Action != ActionJump || events[1].Action != ActionPause {
		t.Errorf("events out of order: %+v", events)
	}
	if events[2].Type != EventQuit {
		t.Errorf("third event should be quit, got %+v", events[2])
	}

	if again := q.Drain(); len(again) != 0 {
		t.Errorf("second drain should be empty, got %d events", len(again))
	}
}

func TestFrameFromEvents(t *testing.T) {
	frame := FrameFromEvents([]Event{
		KeyEvent(ActionJump),
		KeyEvent(ActionNone),
		{Type: EventQuit},
	})

	if !frame.Has(ActionJump) {
		t.Error("frame should contain jump")
	}
	if !frame.Has(ActionQuit) {
		t.Error("quit event should map to ActionQuit")
	}
	if frame.Has(ActionNone) {
		t.Error("ActionNone should never be set")
	}
	if frame.Has(ActionPause) {
		t.Error("frame should not contain pause")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionJump:    "Jump",
		ActionPause:   "Pause",
		ActionRestart: "Restart",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
