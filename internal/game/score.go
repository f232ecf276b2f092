package game

// Score counts obstacles passed. It only grows during a session and resets
// on restart.
type Score struct {
	value int
}

// Increment adds one and returns the new value.
func (s *Score) Increment() int {
	s.value++
	return s.value
}

// Value returns the current count.
func (s *Score) Value() int {
	return s.value
}

// Reset sets the count back to zero.
func (s *Score) Reset() {
	s.value = 0
}
