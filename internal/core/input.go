package core

import "sync"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the loop to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - flap
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventType distinguishes the discrete events an input source can yield.
type EventType int

const (
	// EventKey is a key press mapped to an action.
	EventKey EventType = iota
	// EventQuit is a platform-level quit request (window closed, Ctrl+C, SIGTERM).
	EventQuit
)

// Event is one discrete input event.
type Event struct {
	Type   EventType
	Action Action // Set for EventKey
}

// KeyEvent builds a key-press event for the given action.
func KeyEvent(a Action) Event {
	return Event{Type: EventKey, Action: a}
}

// QuitEvent builds a quit-requested event.
func QuitEvent() Event {
	return Event{Type: EventQuit, Action: ActionQuit}
}

// InputSource yields every event that arrived since the previous call.
// Drain must not block.
type InputSource interface {
	Drain() []Event
}

// EventQueue is an InputSource that platforms push events into.
// Push may be called from any goroutine; Drain is called by the loop.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 8)}
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain returns and clears all pending events.
func (q *EventQueue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// InputFrame represents the set of actions triggered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameFromEvents folds drained events into a single frame.
// Quit events set ActionQuit regardless of their Action field.
func FrameFromEvents(events []Event) InputFrame {
	f := NewInputFrame()
	for _, e := range events {
		switch e.Type {
		case EventQuit:
			f.Set(ActionQuit)
		case EventKey:
			if e.Action != ActionNone {
				f.Set(e.Action)
			}
		}
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
