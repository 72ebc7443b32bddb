// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock is the time surface the toolkit depends on. Real() satisfies
// it with the standard library; Fake() satisfies it with a manually
// advanced clock for tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time once d
	// has elapsed, like time.After. For d <= 0 the channel receives
	// immediately.
	After(d time.Duration) <-chan time.Time

	// AfterFunc calls f after d has elapsed and returns a Timer whose
	// Stop cancels the pending call. The Timer's C field is nil,
	// matching time.AfterFunc. For d <= 0, f runs immediately: in a
	// new goroutine on the real clock, synchronously on the fake.
	AfterFunc(d time.Duration, f func()) *Timer

	// NewTicker returns a Ticker delivering ticks on C every d, like
	// time.NewTicker. Panics if d <= 0.
	NewTicker(d time.Duration) *Ticker

	// Sleep blocks the calling goroutine for at least d, like
	// time.Sleep.
	Sleep(d time.Duration)
}

// Ticker delivers periodic ticks on C. Stop releases it. C is buffered
// with capacity 1, matching time.Ticker: a slow consumer drops ticks
// rather than queueing them.
type Ticker struct {
	C <-chan time.Time

	stopFunc  func()
	resetFunc func(time.Duration)
}

// Stop turns the ticker off. No tick is delivered after Stop returns.
// Stop does not close C.
func (t *Ticker) Stop() { t.stopFunc() }

// Reset changes the interval and restarts the cycle; the next tick
// arrives after the new duration.
func (t *Ticker) Reset(d time.Duration) { t.resetFunc(d) }

// Timer is one scheduled event. Timers returned by AfterFunc have a
// nil C; the event is the callback.
type Timer struct {
	C <-chan time.Time

	stopFunc  func() bool
	resetFunc func(time.Duration) bool
}

// Stop cancels the timer. It reports whether the call stopped it,
// false when it had already fired or been stopped.
func (t *Timer) Stop() bool { return t.stopFunc() }

// Reset reschedules the timer to fire after d. It reports whether the
// timer was still active.
func (t *Timer) Reset(d time.Duration) bool { return t.resetFunc(d) }
