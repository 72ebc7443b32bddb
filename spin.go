// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"sync/atomic"

	"github.com/console-foundation/console/lib/termio"
)

// Result carries the task's own outcome, kept separate from the
// operation's returned error so callers can tell "the task failed"
// from "drawing the indicator failed". The task outcome is populated
// even when the operation reports a rendering error.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok reports whether the task completed without error.
func (r Result[T]) Ok() bool { return r.Err == nil }

// renderHandle tracks one background render goroutine: the write-once
// cancellation flag it polls and the channel it reports its exit
// error on.
//
// The flag is the only signal between the two goroutines. The calling
// goroutine is its sole writer (one false-to-true store after the
// task finishes); the render goroutine is its sole reader, polling
// once per tick. The done channel is buffered so the render goroutine
// never blocks on exit.
type renderHandle struct {
	stop   atomic.Bool
	done   chan error
	err    error
	joined bool
}

// startRender runs render on its own goroutine. render must return
// promptly once the flag reads true.
func startRender(render func(stop *atomic.Bool) error) *renderHandle {
	h := &renderHandle{done: make(chan error, 1)}
	go func() {
		h.done <- render(&h.stop)
	}()
	return h
}

// join raises the cancellation flag and waits for the render
// goroutine to exit. Calling join again returns the first result.
func (h *renderHandle) join() error {
	if !h.joined {
		h.stop.Store(true)
		h.err = <-h.done
		h.joined = true
	}
	return h.err
}

// Spin runs task while animating a braille glyph next to text on the
// current line, redrawn every 50ms. When the task finishes the
// animation is replaced by a final line: a green check with the text
// on success, a red cross on failure, each ending in a newline.
//
// The returned error reports rendering problems only; the task's own
// outcome travels in the Result. A write failure stops the animation
// but never the task, and the final line is skipped. The render
// goroutine is joined before Spin returns on every path, including a
// panicking task.
func Spin[T any](c *Console, text string, task func() (T, error)) (Result[T], error) {
	return spin(c, func() string { return text }, false, task)
}

// SpinFunc is Spin with live text: text is re-evaluated on every
// frame, and each frame clears the line first so output shorter than
// the previous frame leaves no residue.
func SpinFunc[T any](c *Console, text func() string, task func() (T, error)) (Result[T], error) {
	return spin(c, text, true, task)
}

func spin[T any](c *Console, text func() string, clearEachFrame bool, task func() (T, error)) (Result[T], error) {
	prefix := ""
	if clearEachFrame {
		prefix = termio.ClearLine
	}

	handle := startRender(func(stop *atomic.Bool) error {
		frame := 0
		for !stop.Load() {
			glyph := spinnerFrames[frame%len(spinnerFrames)]
			if err := c.out.Print(prefix + "\r" + blue(glyph) + " " + text()); err != nil {
				return err
			}
			if err := c.out.Flush(); err != nil {
				return err
			}
			frame++
			c.clock.Sleep(tickInterval)
		}
		return nil
	})

	var result Result[T]
	func() {
		// The deferred join runs even when the task panics; the panic
		// continues once the render goroutine has exited.
		defer handle.join()
		result.Value, result.Err = task()
	}()

	if err := handle.join(); err != nil {
		return result, fmt.Errorf("rendering indicator: %w", err)
	}

	var final string
	if result.Ok() {
		final = prefix + "\r" + green(glyphCheck+"  "+text()) + "\n"
	} else {
		final = prefix + "\r" + red(glyphCross+" "+text()) + "\n"
	}
	if err := c.out.Print(final); err != nil {
		return result, fmt.Errorf("rendering indicator: %w", err)
	}
	if err := c.out.Flush(); err != nil {
		return result, fmt.Errorf("rendering indicator: %w", err)
	}
	return result, nil
}
