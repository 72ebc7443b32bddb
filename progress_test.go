// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/console-foundation/console/lib/clock"
	"github.com/console-foundation/console/lib/termio"
	"github.com/console-foundation/console/lib/testutil"
)

// frameHead erases the two-line frame area and hides the cursor, the
// prelude of every live frame and of the final frames.
var frameHead = termio.ClearLine + termio.CursorUp(1) + "\r" + termio.ClearLine + termio.CursorHide

func TestProgressFrameBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		p       int
		columns int
		bar     string
	}{
		{"zero", 0, 29, "[>" + strings.Repeat(" ", 20) + "| 000%]"},
		{"padded single digit", 7, 109, "[" + strings.Repeat("=", 7) + ">" + strings.Repeat(" ", 93) + "| 007%]"},
		{"floor of partial cell", 42, 29, "[" + strings.Repeat("=", 8) + ">" + strings.Repeat(" ", 12) + "| 042%]"},
		{"just below full", 99, 29, "[" + strings.Repeat("=", 19) + ">" + " " + "| 099%]"},
		{"complete", 100, 29, "[" + strings.Repeat("=", 20) + "=| 100%]"},
		{"clamped above", 150, 29, "[" + strings.Repeat("=", 20) + "=| 100%]"},
		{"clamped below", -5, 29, "[>" + strings.Repeat(" ", 20) + "| 000%]"},
		{"narrow terminal keeps one cell", 50, 5, "[>" + " " + "| 050%]"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			want := frameHead + "job\n" + blue(tc.bar)
			if got := progressFrame("job", tc.p, tc.columns); got != want {
				t.Errorf("progressFrame(%d, %d) = %q, want %q", tc.p, tc.columns, got, want)
			}
		})
	}
}

func TestFailureBar(t *testing.T) {
	t.Parallel()

	// The cross head is two cells wide, so the fill area is one cell
	// narrower than in the live frames.
	tests := []struct {
		name    string
		p       int
		columns int
		bar     string
	}{
		{"stopped early", 0, 29, "[" + glyphCross + strings.Repeat(" ", 19) + "| 000%]"},
		{"stopped midway", 73, 29, "[" + strings.Repeat("=", 13) + glyphCross + strings.Repeat(" ", 6) + "| 073%]"},
		{"stopped at full", 100, 29, "[" + strings.Repeat("=", 19) + glyphCross + "| 100%]"},
		{"clamped above", 130, 29, "[" + strings.Repeat("=", 19) + glyphCross + "| 100%]"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			want := red(tc.bar)
			if got := failureBar(tc.p, tc.columns); got != want {
				t.Errorf("failureBar(%d, %d) = %q, want %q", tc.p, tc.columns, got, want)
			}
		})
	}
}

func TestProgressBarsSpanTerminalWidth(t *testing.T) {
	t.Parallel()

	// Every bar row, live or failed, fills the full terminal width.
	// Styling does not count; the cross glyph counts two cells. Widths
	// below 11 clamp the fill area to one cell and overflow instead.
	for _, columns := range []int{11, 29, 80, 137} {
		for _, p := range []int{0, 33, 67, 99, 100} {
			frame := progressFrame("job", p, columns)
			bar := frame[strings.LastIndex(frame, "\n")+1:]
			if got := ansi.StringWidth(bar); got != columns {
				t.Errorf("progressFrame(%d, %d) bar width = %d, want %d", p, columns, got, columns)
			}
			if got := ansi.StringWidth(failureBar(p, columns)); got != columns {
				t.Errorf("failureBar(%d, %d) width = %d, want %d", p, columns, got, columns)
			}
		}
	}
}

func TestProgressBarFrameBytes(t *testing.T) {
	t.Parallel()

	clk := clock.Fake(epoch)
	c, out := testConsole("", clk, 29)

	values := make(chan int)
	release := make(chan struct{})
	type outcome struct {
		result Result[int]
		err    error
	}
	outcomes := make(chan outcome, 1)
	go func() {
		result, err := ProgressBar(c, "job", func() int { return <-values }, func() (int, error) {
			<-release
			return 3, nil
		})
		outcomes <- outcome{result, err}
	}()

	testutil.RequireSend(t, values, 10, 5*time.Second, "first live frame")
	clk.WaitForTimers(1)
	clk.Advance(tickInterval)
	// The completed frame stops the loop on its own; if the loop kept
	// polling, the extra unserved receive would time the send out.
	testutil.RequireSend(t, values, 150, 5*time.Second, "completing frame")
	close(release)

	got := testutil.RequireReceive(t, outcomes, 5*time.Second, "progress outcome")
	if got.err != nil {
		t.Fatalf("ProgressBar() error = %v", got.err)
	}
	if !got.result.Ok() || got.result.Value != 3 {
		t.Errorf("result = {%v %v}, want {3 <nil>}", got.result.Value, got.result.Err)
	}

	frame10 := frameHead + "job\n" + blue("[==>"+strings.Repeat(" ", 18)+"| 010%]")
	frameDone := frameHead + "job\n" + blue("["+strings.Repeat("=", 20)+"=| 100%]")
	final := frameHead + glyphCheck + "  " + green("job") + "\n"
	if gotBytes, want := out.String(), "\r"+frame10+frameDone+final; gotBytes != want {
		t.Errorf("output = %q, want %q", gotBytes, want)
	}
}

func TestProgressBarFailureFrames(t *testing.T) {
	t.Parallel()

	clk := clock.Fake(epoch)
	c, out := testConsole("", clk, 29)
	taskErr := errors.New("upload failed")

	values := make(chan int)
	release := make(chan struct{})
	type outcome struct {
		result Result[int]
		err    error
	}
	outcomes := make(chan outcome, 1)
	go func() {
		result, err := ProgressBar(c, "job", func() int { return <-values }, func() (int, error) {
			<-release
			return 0, taskErr
		})
		outcomes <- outcome{result, err}
	}()

	testutil.RequireSend(t, values, 42, 5*time.Second, "first live frame")
	clk.WaitForTimers(1)
	clk.Advance(tickInterval)
	testutil.RequireSend(t, values, 150, 5*time.Second, "completing frame")
	close(release)
	// The failure bar re-queries progress exactly once.
	testutil.RequireSend(t, values, 73, 5*time.Second, "failure bar progress")

	got := testutil.RequireReceive(t, outcomes, 5*time.Second, "progress outcome")
	if got.err != nil {
		t.Fatalf("ProgressBar() error = %v", got.err)
	}
	if got.result.Ok() || !errors.Is(got.result.Err, taskErr) {
		t.Errorf("result.Err = %v, want %v", got.result.Err, taskErr)
	}

	frame42 := frameHead + "job\n" + blue("["+strings.Repeat("=", 8)+">"+strings.Repeat(" ", 12)+"| 042%]")
	frameDone := frameHead + "job\n" + blue("["+strings.Repeat("=", 20)+"=| 100%]")
	final := frameHead + glyphCross + " " + red("job") + "\n" +
		red("["+strings.Repeat("=", 13)+glyphCross+strings.Repeat(" ", 6)+"| 073%]") + "\n"
	if gotBytes, want := out.String(), "\r"+frame42+frameDone+final; gotBytes != want {
		t.Errorf("output = %q, want %q", gotBytes, want)
	}
}

func TestProgressBarRenderErrorPreservesResult(t *testing.T) {
	t.Parallel()

	clk := clock.Fake(epoch)
	w := newRefusingWriter(2) // the initial "\r" is write 1
	c := New(Options{Input: strings.NewReader(""), Output: w, Clock: clk, Columns: 29})

	values := make(chan int)
	release := make(chan struct{})
	type outcome struct {
		result Result[int]
		err    error
	}
	outcomes := make(chan outcome, 1)
	go func() {
		result, err := ProgressBar(c, "job", func() int { return <-values }, func() (int, error) {
			<-release
			return 9, nil
		})
		outcomes <- outcome{result, err}
	}()

	testutil.RequireSend(t, values, 10, 5*time.Second, "first live frame")
	testutil.RequireClosed(t, w.refused, 5*time.Second, "first frame refused")
	close(release)

	got := testutil.RequireReceive(t, outcomes, 5*time.Second, "progress outcome")
	if !errors.Is(got.err, errWriteRefused) {
		t.Fatalf("ProgressBar() error = %v, want wrapped %v", got.err, errWriteRefused)
	}
	if !got.result.Ok() || got.result.Value != 9 {
		t.Errorf("result = {%v %v}, want {9 <nil>}", got.result.Value, got.result.Err)
	}
	// The failing frame and the finals never reached the terminal.
	if gotBytes := w.buf.String(); gotBytes != "\r" {
		t.Errorf("output = %q, want %q", gotBytes, "\r")
	}
}

func TestProgressBarQuiescentAfterReturn(t *testing.T) {
	t.Parallel()

	clk := clock.Fake(epoch)
	c, out := testConsole("", clk, 29)

	outcomes := make(chan error, 1)
	go func() {
		_, err := ProgressBar(c, "job", func() int { return 100 }, func() (int, error) { return 1, nil })
		outcomes <- err
	}()

	if err := pumpUntil(t, clk, outcomes); err != nil {
		t.Fatalf("ProgressBar() error = %v", err)
	}
	if n := clk.PendingCount(); n != 0 {
		t.Fatalf("PendingCount() = %d after return, want 0", n)
	}

	snapshot := out.String()
	clk.Advance(10 * tickInterval)
	if got := out.String(); got != snapshot {
		t.Errorf("output grew after return: %q, want %q", got, snapshot)
	}
}
