// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/console-foundation/console/lib/clock"
	"github.com/console-foundation/console/lib/termio"
)

// defaultColumns is the assumed terminal width when the output is not
// a terminal and no explicit width was configured.
const defaultColumns = 80

// Options configures a Console. The zero value binds standard input
// and output, the real clock, and an 80-column fallback width.
type Options struct {
	// Input is the stream user input is read from. Defaults to
	// os.Stdin. When it is a terminal file, the menu operations
	// switch it to raw mode for their duration.
	Input io.Reader

	// Output is the sink frames and prompts are written to. Defaults
	// to os.Stdout. When it is a terminal file, the progress bar
	// sizes itself to the live terminal width.
	Output io.Writer

	// Clock drives the render loops and retry pauses. Defaults to
	// clock.Real(). Tests inject a fake to step frames
	// deterministically.
	Clock clock.Clock

	// Columns is the width reported when Output is not a terminal.
	// Defaults to 80.
	Columns int
}

// Console binds one input and one output stream for its lifetime and
// provides the interactive operations: prompts, live indicators,
// progress bars, and menus.
//
// A Console is not safe for concurrent use: run one operation at a
// time, and do not write to the output stream while an operation is
// in flight.
type Console struct {
	in io.Reader

	// reader buffers in. All line reads and key reads go through this
	// single reader so bytes buffered by one operation are not lost
	// to the next.
	reader *bufio.Reader

	out   *termio.Renderer
	clock clock.Clock

	closed bool
}

// New returns a Console bound per opts.
func New(opts Options) *Console {
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real()
	}
	columns := opts.Columns
	if columns <= 0 {
		columns = defaultColumns
	}
	return &Console{
		in:     in,
		reader: bufio.NewReader(in),
		out:    termio.NewRenderer(out, columns),
		clock:  clk,
	}
}

// Close returns the cursor to the start of the line and makes it
// visible again, so an interrupted operation never leaves the
// terminal with a hidden cursor. Calling Close more than once is
// safe; only the first call writes.
func (c *Console) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.out.Print("\r" + termio.CursorShow); err != nil {
		return fmt.Errorf("restoring cursor: %w", err)
	}
	if err := c.out.Flush(); err != nil {
		return fmt.Errorf("restoring cursor: %w", err)
	}
	return nil
}

// Input returns the stream the Console reads from.
func (c *Console) Input() io.Reader { return c.in }

// Output returns the sink the Console writes to.
func (c *Console) Output() io.Writer { return c.out.Writer() }
