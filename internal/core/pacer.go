package core

import "time"

// Pacer throttles the loop to a target tick rate and reports the achieved rate.
type Pacer interface {
	SetTargetRate(fps int)
	Rate() float64
	// Wait blocks until the next tick boundary.
	Wait()
}

// rateSamples is the number of tick timestamps used to estimate the rate.
const rateSamples = 60

// Clock is a Pacer backed by the wall clock.
type Clock struct {
	interval time.Duration
	next     time.Time
	sleep    bool
	samples  []time.Time
	head     int
	count    int

	now     func() time.Time
	sleepFn func(time.Duration)
}

// NewClock returns a Pacer that sleeps until each tick boundary.
func NewClock(fps int) *Clock {
	return newClock(fps, true, time.Now, time.Sleep)
}

// NewMeter returns a Pacer that never sleeps and only measures the rate.
// Use it where the platform already schedules ticks (Bubble Tea, Ebiten).
func NewMeter(fps int) *Clock {
	return newClock(fps, false, time.Now, time.Sleep)
}

func newClock(fps int, sleep bool, now func() time.Time, sleepFn func(time.Duration)) *Clock {
	c := &Clock{
		sleep:   sleep,
		samples: make([]time.Time, rateSamples),
		now:     now,
		sleepFn: sleepFn,
	}
	c.SetTargetRate(fps)
	return c
}

// SetTargetRate changes the target tick rate. Non-positive values disable throttling.
func (c *Clock) SetTargetRate(fps int) {
	if fps <= 0 {
		c.interval = 0
		return
	}
	c.interval = time.Second / time.Duration(fps)
	c.next = time.Time{}
}

// Wait sleeps until the next tick boundary and records the tick.
// A loop that falls more than one interval behind resynchronizes instead of
// bursting to catch up.
func (c *Clock) Wait() {
	now := c.now()
	if c.sleep && c.interval > 0 {
		if c.next.IsZero() || now.Sub(c.next) > c.interval {
			c.next = now
		}
		c.next = c.next.Add(c.interval)
		if d := c.next.Sub(now); d > 0 {
			c.sleepFn(d)
			now = c.now()
		}
	}
	c.samples[c.head] = now
	c.head = (c.head + 1) % len(c.samples)
	if c.count < len(c.samples) {
		c.count++
	}
}

// Rate returns the measured ticks per second over the recent window.
func (c *Clock) Rate() float64 {
	if c.count < 2 {
		return 0
	}
	newest := c.samples[(c.head-1+len(c.samples))%len(c.samples)]
	oldest := c.samples[(c.head-c.count+len(c.samples))%len(c.samples)]
	span := newest.Sub(oldest)
	if span <= 0 {
		return 0
	}
	return float64(c.count-1) / span.Seconds()
}
