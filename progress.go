// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/x/ansi"

	"github.com/console-foundation/console/lib/termio"
)

// barGutter is the screen width of everything in the bar row that is
// not fill: "[", the ">" head, "| ", the three-digit percentage, "%",
// and "]".
const barGutter = 9

// ProgressBar runs task while redrawing a two-line frame every 50ms:
// the label line, then a bracketed percentage bar sized to the
// terminal's current width. progress is polled once per frame and
// clamped to [0, 100]; values of 100 or more draw the completed bar,
// after which the loop stops on its own even if the task is still
// running.
//
// The final frames replace the bar area. Success: a check mark and
// the label in green. Failure: a cross and the label in red, then a
// red bar showing where progress stopped (progress is queried once
// more for it). The Result and error contract matches Spin: the
// returned error reports rendering problems only, the task's outcome
// travels in the Result, and the render goroutine is joined before
// ProgressBar returns on every path.
func ProgressBar[T any](c *Console, label string, progress func() int, task func() (T, error)) (Result[T], error) {
	handle := startRender(func(stop *atomic.Bool) error {
		if err := c.out.Print("\r"); err != nil {
			return err
		}
		for !stop.Load() {
			p := progress()
			if err := c.out.Print(progressFrame(label, p, c.out.Columns())); err != nil {
				return err
			}
			if err := c.out.Flush(); err != nil {
				return err
			}
			if p >= 100 {
				return nil
			}
			c.clock.Sleep(tickInterval)
		}
		return nil
	})

	var result Result[T]
	func() {
		defer handle.join()
		result.Value, result.Err = task()
	}()

	if err := handle.join(); err != nil {
		return result, fmt.Errorf("rendering progress bar: %w", err)
	}

	head := termio.ClearLine + termio.CursorUp(1) + "\r" + termio.ClearLine + termio.CursorHide
	var final string
	if result.Ok() {
		final = head + glyphCheck + "  " + green(label) + "\n"
	} else {
		final = head + glyphCross + " " + red(label) + "\n" +
			failureBar(progress(), c.out.Columns()) + "\n"
	}
	if err := c.out.Print(final); err != nil {
		return result, fmt.Errorf("rendering progress bar: %w", err)
	}
	if err := c.out.Flush(); err != nil {
		return result, fmt.Errorf("rendering progress bar: %w", err)
	}
	return result, nil
}

// progressFrame renders one live frame: erase the bar line, move up
// and erase the label line, hide the cursor, then rewrite both lines.
// Progress of 100 or more draws exactly the completed bar.
func progressFrame(label string, p, columns int) string {
	barMax := max(columns-barGutter, 1)
	var bar string
	if p >= 100 {
		bar = "[" + strings.Repeat("=", barMax) + "=| 100%]"
	} else {
		clamped := clampPercent(p)
		filled := barMax * clamped / 100
		bar = fmt.Sprintf("[%s>%s| %03d%%]",
			strings.Repeat("=", filled), strings.Repeat(" ", barMax-filled), clamped)
	}
	return termio.ClearLine + termio.CursorUp(1) + "\r" + termio.ClearLine + termio.CursorHide +
		label + "\n" + blue(bar)
}

// failureBar draws the stopped bar under the failure label. The cross
// replaces the arrow head and renders two cells wide, so the gutter
// grows by the width difference.
func failureBar(p, columns int) string {
	gutter := barGutter - 1 + ansi.StringWidth(glyphCross)
	barMax := max(columns-gutter, 1)
	clamped := clampPercent(p)
	filled := barMax * clamped / 100
	return red(fmt.Sprintf("[%s%s%s| %03d%%]",
		strings.Repeat("=", filled), glyphCross, strings.Repeat(" ", barMax-filled), clamped))
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
