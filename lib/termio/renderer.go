// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package termio

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Control sequences emitted by the toolkit. These are the exact bytes
// the wire contract documents; downstream consumers assert on them.
const (
	// ClearLine erases the entire line under the cursor without
	// moving the cursor.
	ClearLine = "\x1b[2K"

	// CursorHide makes the cursor invisible until CursorShow.
	CursorHide = "\x1b[?25l"

	// CursorShow makes the cursor visible again.
	CursorShow = "\x1b[?25h"
)

// CursorUp returns the sequence that moves the cursor up n lines. The
// count is always written explicitly, so CursorUp(1) is "\x1b[1A".
func CursorUp(n int) string {
	return "\x1b[" + strconv.Itoa(n) + "A"
}

// Renderer writes text and control sequences to an output sink and
// answers terminal-geometry queries. It is a thin wrapper: it never
// buffers, reorders, or interprets what it writes.
type Renderer struct {
	w io.Writer

	// file is set when w is a real terminal, enabling size queries.
	file *os.File

	// fallbackColumns is reported by Columns when the output is not a
	// terminal or the size query fails.
	fallbackColumns int
}

// NewRenderer wraps w. fallbackColumns is the width reported when w is
// not a terminal; callers pass their configured default.
func NewRenderer(w io.Writer, fallbackColumns int) *Renderer {
	r := &Renderer{w: w, fallbackColumns: fallbackColumns}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.file = f
	}
	return r
}

// Writer returns the underlying output sink.
func (r *Renderer) Writer() io.Writer { return r.w }

// Print writes s verbatim.
func (r *Renderer) Print(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

// Printf formats and writes like fmt.Printf.
func (r *Renderer) Printf(format string, args ...any) error {
	return r.Print(fmt.Sprintf(format, args...))
}

// Flush forwards to the underlying writer's Flush when it has one
// (a bufio.Writer, for example) and is a no-op otherwise.
func (r *Renderer) Flush() error {
	if f, ok := r.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Columns returns the terminal's current column count, re-queried on
// every call so that live resizes are picked up between frames. For
// non-terminal outputs it returns the fallback width.
func (r *Renderer) Columns() int {
	if r.file != nil {
		if width, _, err := term.GetSize(int(r.file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return r.fallbackColumns
}
