package timer

import (
	"context"
	"time"
)

// Scheduler runs delayed and periodic work for one room. All of its timers
// share one context, so disposing the room stops every outstanding timer at
// once and none of them can fire against a room that no longer exists.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a scheduler whose timers live until Stop is called or
// the parent context is cancelled.
func NewScheduler(parent context.Context) *Scheduler {
	ctx, cancel := context.WithCancel(parent)
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// Countdown blocks while firing tick once per interval, counting remaining
// down from ticks to 1, then sleeping one more interval before returning.
// It returns early with the context error when the scheduler is stopped, so
// a disposal during the countdown aborts whatever was going to follow it.
func (s *Scheduler) Countdown(ticks int, interval time.Duration, tick func(remaining int)) error {
	for remaining := ticks; remaining >= 1; remaining-- {
		if err := s.ctx.Err(); err != nil {
			return err
		}
		tick(remaining)

		timer := time.NewTimer(interval)
		select {
		case <-timer.C:
		case <-s.ctx.Done():
			timer.Stop()
			return s.ctx.Err()
		}
	}
	return nil
}

// AfterFunc runs fn on its own goroutine after d has elapsed, unless the
// scheduler is stopped first.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) {
	go func() {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			fn()
		case <-s.ctx.Done():
		}
	}()
}

// Stop cancels all outstanding timers. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.cancel()
}

// Stopped reports whether the scheduler has been stopped.
func (s *Scheduler) Stopped() bool {
	return s.ctx.Err() != nil
}
