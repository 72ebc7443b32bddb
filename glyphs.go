// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"time"

	"github.com/muesli/termenv"
)

// spinnerFrames is the braille animation cycle for the live indicator,
// advanced one glyph per tick.
var spinnerFrames = [...]string{"⠹", "⢸", "⣰", "⣤", "⣆", "⡇", "⠏", "⠛"}

const (
	// glyphCheck marks success. U+2714 plus the emoji variation
	// selector, followed by two spaces because most terminals render
	// it double-width.
	glyphCheck = "✔️"

	// glyphCross marks failure. Renders double-width, which the
	// progress bar accounts for when the cross replaces the arrow
	// head inside the bar.
	glyphCross = "❌"

	// tickInterval is the cadence of the indicator and progress
	// render loops, and the cancellation flag's polling interval.
	tickInterval = 50 * time.Millisecond

	// retryPause separates rejected ValidatedInput attempts so the
	// red prompt is visible before the next attempt overwrites it.
	retryPause = 500 * time.Millisecond
)

// paint styles s with one of the fixed 16-color ANSI foregrounds. The
// ANSI profile pins the emitted bytes to exactly ESC[3Nm ... ESC[0m
// regardless of the host terminal's capabilities.
func paint(color termenv.Color, s string) string {
	return termenv.ANSI.String(s).Foreground(color).String()
}

func blue(s string) string    { return paint(termenv.ANSIBlue, s) }
func green(s string) string   { return paint(termenv.ANSIGreen, s) }
func red(s string) string     { return paint(termenv.ANSIRed, s) }
func magenta(s string) string { return paint(termenv.ANSIMagenta, s) }
func white(s string) string   { return paint(termenv.ANSIWhite, s) }
