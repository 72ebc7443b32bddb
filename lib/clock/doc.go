// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts time so that code driven by ticks and pauses
// can be tested deterministically.
//
// Production code takes a Clock value instead of calling time.Now,
// time.After, time.NewTicker, time.AfterFunc, or time.Sleep directly.
// Real() forwards to the standard library; Fake() stands still until a
// test advances it.
//
// # Wiring
//
// The console toolkit injects a Clock through its Options and sleeps
// on it between render frames and prompt retries:
//
//	c := console.New(console.Options{Clock: clock.Real()})
//
// A test replaces it and drives each frame explicitly:
//
//	clk := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	// ... operation running in another goroutine ...
//	clk.WaitForTimers(1)               // render loop is now sleeping
//	clk.Advance(50 * time.Millisecond) // release exactly one frame
//
// # Synchronizing with a fake
//
// Sleep, After, NewTicker, and AfterFunc on a FakeClock register a
// pending waiter. WaitForTimers blocks until a given number of waiters
// are registered, which removes the race between a goroutine reaching
// its sleep and the test advancing past it.
package clock
