package core

import (
	"testing"
	"time"
)

func TestTickSchedulerAfter(t *testing.T) {
	s := NewTickScheduler()
	fired := 0
	s.After(100*time.Millisecond, func() { fired++ })

	s.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("timer fired early")
	}
	s.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, expected 1", fired)
	}
	s.Advance(time.Second)
	if fired != 1 {
		t.Errorf("one-shot timer fired again: %d", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestTickSchedulerEvery(t *testing.T) {
	s := NewTickScheduler()
	fired := 0
	s.Every(time.Second, func() { fired++ })

	s.Advance(3500 * time.Millisecond)
	if fired != 3 {
		t.Errorf("fired = %d, expected 3", fired)
	}
	if s.Now() != 3500*time.Millisecond {
		t.Errorf("Now() = %v", s.Now())
	}
}

func TestTickSchedulerOrder(t *testing.T) {
	s := NewTickScheduler()
	var order []string
	s.After(300*time.Millisecond, func() { order = append(order, "c") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(100*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(time.Second)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, expected %v", order, want)
			break
		}
	}
}

func TestTickSchedulerCancel(t *testing.T) {
	s := NewTickScheduler()
	fired := false
	id := s.After(time.Second, func() { fired = true })

	if !s.Cancel(id) {
		t.Error("Cancel() should report an armed timer")
	}
	if s.Cancel(id) {
		t.Error("second Cancel() should report false")
	}
	s.Advance(2 * time.Second)
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestTickSchedulerCallbackSchedules(t *testing.T) {
	s := NewTickScheduler()
	var at []time.Duration
	s.After(100*time.Millisecond, func() {
		at = append(at, s.Now())
		s.After(100*time.Millisecond, func() { at = append(at, s.Now()) })
	})

	s.Advance(time.Second)

	if len(at) != 2 || at[0] != 100*time.Millisecond || at[1] != 200*time.Millisecond {
		t.Errorf("fire times = %v", at)
	}
}

func TestTimersReplaceSamePurpose(t *testing.T) {
	s := NewTickScheduler()
	timers := NewTimers(s)
	first, second := 0, 0

	timers.Every("countdown", time.Second, func() { first++ })
	timers.Every("countdown", time.Second, func() { second++ })

	s.Advance(3 * time.Second)

	if first != 0 {
		t.Errorf("replaced countdown still fired %d times", first)
	}
	if second != 3 {
		t.Errorf("active countdown fired %d times, expected 3", second)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, expected exactly one armed timer", s.Pending())
	}
}

func TestTimersOneShotClearsActive(t *testing.T) {
	s := NewTickScheduler()
	timers := NewTimers(s)
	timers.After("freeze", 5*time.Second, func() {})

	if !timers.Active("freeze") {
		t.Fatal("freeze should be active")
	}
	s.Advance(5 * time.Second)
	if timers.Active("freeze") {
		t.Error("fired one-shot should no longer be active")
	}
}

func TestTimersStopAll(t *testing.T) {
	s := NewTickScheduler()
	timers := NewTimers(s)
	timers.After("a", time.Second, func() { t.Error("a fired") })
	timers.Every("b", time.Second, func() { t.Error("b fired") })

	timers.StopAll()
	s.Advance(5 * time.Second)

	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after StopAll", s.Pending())
	}
}
