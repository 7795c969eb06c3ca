package core

import "time"

// TimerID identifies a scheduled callback. The zero value is never issued.
type TimerID uint64

// Scheduler runs deferred callbacks on the caller's goroutine.
// Cancellation is synchronous: once Cancel returns, the callback will not run.
type Scheduler interface {
	After(d time.Duration, fn func()) TimerID
	Every(d time.Duration, fn func()) TimerID
	Cancel(id TimerID) bool
}

type timer struct {
	due    time.Duration
	period time.Duration // 0 for one-shot
	fn     func()
}

// TickScheduler is a virtual-time Scheduler driven by Advance.
// Games advance it by one tick interval per Step, which keeps every timer
// deterministic under a fixed tick rate.
type TickScheduler struct {
	now    time.Duration
	nextID TimerID
	timers map[TimerID]*timer
}

// NewTickScheduler creates a scheduler whose clock starts at zero.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{timers: make(map[TimerID]*timer)}
}

// Now returns the virtual time elapsed since creation.
func (s *TickScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of armed timers.
func (s *TickScheduler) Pending() int {
	return len(s.timers)
}

// After schedules fn to run once, d from now.
func (s *TickScheduler) After(d time.Duration, fn func()) TimerID {
	return s.add(d, 0, fn)
}

// Every schedules fn to run every d, first at now+d.
// Non-positive periods are clamped to one millisecond.
func (s *TickScheduler) Every(d time.Duration, fn func()) TimerID {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.add(d, d, fn)
}

func (s *TickScheduler) add(d, period time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	s.timers[s.nextID] = &timer{due: s.now + d, period: period, fn: fn}
	return s.nextID
}

// Cancel disarms a timer. It reports whether the timer was still armed.
func (s *TickScheduler) Cancel(id TimerID) bool {
	if _, ok := s.timers[id]; !ok {
		return false
	}
	delete(s.timers, id)
	return true
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way in due-time order. Callbacks may schedule or cancel timers;
// newly scheduled timers that fall inside the window also run.
func (s *TickScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		id, t := s.earliest(end)
		if t == nil {
			break
		}
		s.now = t.due
		if t.period > 0 {
			t.due += t.period
		} else {
			delete(s.timers, id)
		}
		t.fn()
	}
	s.now = end
}

// earliest returns the armed timer with the smallest due time not after end.
// Ties go to the timer scheduled first.
func (s *TickScheduler) earliest(end time.Duration) (TimerID, *timer) {
	var (
		bestID TimerID
		best   *timer
	)
	for id, t := range s.timers {
		if t.due > end {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && id < bestID) {
			bestID, best = id, t
		}
	}
	return bestID, best
}

// Timers keeps at most one armed timer per purpose on top of a Scheduler.
// Starting a timer for a purpose cancels the previous one first, so two
// countdowns for the same purpose can never overlap.
type Timers struct {
	sched  Scheduler
	active map[string]TimerID
}

// NewTimers wraps a scheduler.
func NewTimers(s Scheduler) *Timers {
	return &Timers{sched: s, active: make(map[string]TimerID)}
}

// After arms a one-shot timer for purpose, replacing any armed one.
func (t *Timers) After(purpose string, d time.Duration, fn func()) {
	t.Stop(purpose)
	var id TimerID
	id = t.sched.After(d, func() {
		if t.active[purpose] == id {
			delete(t.active, purpose)
		}
		fn()
	})
	t.active[purpose] = id
}

// Every arms a periodic timer for purpose, replacing any armed one.
func (t *Timers) Every(purpose string, d time.Duration, fn func()) {
	t.Stop(purpose)
	t.active[purpose] = t.sched.Every(d, fn)
}

// Stop cancels the timer for purpose. It reports whether one was armed.
func (t *Timers) Stop(purpose string) bool {
	id, ok := t.active[purpose]
	if !ok {
		return false
	}
	delete(t.active, purpose)
	return t.sched.Cancel(id)
}

// StopAll cancels every armed timer.
func (t *Timers) StopAll() {
	for purpose := range t.active {
		t.Stop(purpose)
	}
}

// Active reports whether a timer is armed for purpose.
func (t *Timers) Active(purpose string) bool {
	_, ok := t.active[purpose]
	return ok
}
