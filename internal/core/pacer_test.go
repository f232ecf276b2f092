package core

import (
	"math"
	"testing"
	"time"
)

type fakeTime struct {
	now   time.Time
	slept []time.Duration
}

func (f *fakeTime) Now() time.Time { return f.now }

func (f *fakeTime) Sleep(d time.Duration) {
	f.slept = append(f.slept, d)
	f.now = f.now.Add(d)
}

func TestClockSleepsToTickBoundary(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	c := newClock(50, true, ft.Now, ft.Sleep) // 20ms interval

	c.Wait()
	ft.now = ft.now.Add(5 * time.Millisecond) // work done during the tick
	c.Wait()

	if len(ft.slept) != 2 {
		t.Fatalf("expected 2 sleeps, got %d", len(ft.slept))
	}
	if ft.slept[0] != 20*time.Millisecond {
		t.Errorf("first sleep = %v, expected 20ms", ft.slept[0])
	}
	if ft.slept[1] != 15*time.Millisecond {
		t.Errorf("second sleep = %v, expected 15ms", ft.slept[1])
	}
}

func TestClockResyncsWhenBehind(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	c := newClock(50, true, ft.Now, ft.Sleep)

	c.Wait()
	ft.now = ft.now.Add(time.Second) // long stall
	c.Wait()

	if got := ft.slept[len(ft.slept)-1]; got != 20*time.Millisecond {
		t.Errorf("after a stall the clock should wait one interval, slept %v", got)
	}
}

func TestClockRate(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	c := newClock(60, false, ft.Now, ft.Sleep)

	if c.Rate() != 0 {
		t.Errorf("rate before two ticks should be 0, got %f", c.Rate())
	}

	for i := 0; i < 100; i++ {
		c.Wait()
		ft.now = ft.now.Add(25 * time.Millisecond)
	}

	if len(ft.slept) != 0 {
		t.Errorf("meter should never sleep, slept %d times", len(ft.slept))
	}
	if rate := c.Rate(); math.Abs(rate-40) > 0.001 {
		t.Errorf("Rate() = %f, expected 40", rate)
	}
}

func TestClockDisabled(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	c := newClock(0, true, ft.Now, ft.Sleep)
	c.Wait()
	c.Wait()
	if len(ft.slept) != 0 {
		t.Errorf("zero target rate should not sleep, slept %d times", len(ft.slept))
	}
}
