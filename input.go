// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/console-foundation/console/lib/termio"
)

// Parser converts one trimmed line of user input into a T. A non-nil
// error marks the line as unparseable; what the prompt does with that
// depends on the operation (ParsedInput surfaces it, ValidatedInput
// retries).
type Parser[T any] func(string) (T, error)

// Ready-made parsers for the common prompt types.

// ParseString accepts the line as-is.
func ParseString(s string) (string, error) { return s, nil }

// ParseInt parses a base-10 integer.
func ParseInt(s string) (int, error) { return strconv.Atoi(s) }

// ParseFloat parses a 64-bit float.
func ParseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

// ParseBool parses the forms strconv.ParseBool accepts ("true", "t",
// "1", "false", "f", "0", ...).
func ParseBool(s string) (bool, error) { return strconv.ParseBool(s) }

// readLine reads one line from the console's input without its
// terminator. A final unterminated line is returned as data; io.EOF
// with no data propagates unwrapped so callers can tell an exhausted
// stream from an empty line.
func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ParsedInput writes "prompt => " in blue, reads one line, and parses
// it. An empty line or an already-exhausted input stream yields
// ErrInputRequired. A line the parser rejects is surfaced once as a
// *ParseError carrying the trimmed text; there is no retry.
func ParsedInput[T any](c *Console, prompt string, parse Parser[T]) (T, error) {
	var zero T
	if err := c.out.Print(blue(prompt + " => ")); err != nil {
		return zero, fmt.Errorf("writing prompt: %w", err)
	}
	if err := c.out.Flush(); err != nil {
		return zero, fmt.Errorf("writing prompt: %w", err)
	}

	line, err := c.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return zero, ErrInputRequired
		}
		return zero, fmt.Errorf("reading input: %w", err)
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return zero, ErrInputRequired
	}
	value, perr := parse(trimmed)
	if perr != nil {
		return zero, &ParseError{Input: trimmed, Err: perr}
	}
	return value, nil
}

// ParsedInputDefault is ParsedInput with a fallback: the prompt shows
// the default in magenta, and an empty line or exhausted input returns
// def instead of an error. Parse failures still surface as
// *ParseError.
func ParsedInputDefault[T any](c *Console, prompt string, parse Parser[T], def T) (T, error) {
	var zero T
	header := blue(prompt) + magenta(fmt.Sprintf("(default: %v)", def)) + blue(" => ")
	if err := c.out.Print(header); err != nil {
		return zero, fmt.Errorf("writing prompt: %w", err)
	}
	if err := c.out.Flush(); err != nil {
		return zero, fmt.Errorf("writing prompt: %w", err)
	}

	line, err := c.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return def, nil
		}
		return zero, fmt.Errorf("reading input: %w", err)
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return def, nil
	}
	value, perr := parse(trimmed)
	if perr != nil {
		return zero, &ParseError{Input: trimmed, Err: perr}
	}
	return value, nil
}

// requirementsPrompt builds one ValidatedInput prompt line: the prompt
// text and the arrow take the attempt tint (blue first, red on retry),
// the requirements note is always magenta.
func requirementsPrompt(tint func(string) string, prompt, requirements string) string {
	return tint(prompt) + " " + magenta("(requirements: "+requirements+")") + " " + tint("=>") + " "
}

// ValidatedInput prompts until it reads a line that both parses and
// satisfies valid. Empty lines, parse failures, and predicate
// failures redraw the prompt in red, pause 500ms on the injected
// clock, and try again; failed attempts echo the rejected line in
// white. The returned value always satisfies valid.
//
// An exhausted input stream returns an error wrapping io.EOF rather
// than retrying forever.
func ValidatedInput[T any](c *Console, prompt, requirements string, parse Parser[T], valid func(T) bool) (T, error) {
	var zero T
	for {
		attempt := termio.ClearLine + "\r" + requirementsPrompt(blue, prompt, requirements)
		if err := c.out.Print(attempt); err != nil {
			return zero, fmt.Errorf("writing prompt: %w", err)
		}
		if err := c.out.Flush(); err != nil {
			return zero, fmt.Errorf("writing prompt: %w", err)
		}

		line, err := c.readLine()
		if err != nil {
			return zero, fmt.Errorf("reading input: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			retry := termio.CursorUp(1) + termio.ClearLine + "\r" +
				requirementsPrompt(red, prompt, requirements)
			if err := c.out.Print(retry); err != nil {
				return zero, fmt.Errorf("writing prompt: %w", err)
			}
			if err := c.out.Flush(); err != nil {
				return zero, fmt.Errorf("writing prompt: %w", err)
			}
			c.clock.Sleep(retryPause)
			continue
		}

		value, perr := parse(trimmed)
		if perr == nil && valid(value) {
			return value, nil
		}

		// Parse and predicate failures retry identically: the prompt
		// row is re-tinted red with the rejected line echoed in white.
		retry := "\r" + termio.CursorUp(1) +
			requirementsPrompt(red, prompt, requirements) + white(line)
		if err := c.out.Print(retry); err != nil {
			return zero, fmt.Errorf("writing prompt: %w", err)
		}
		if err := c.out.Flush(); err != nil {
			return zero, fmt.Errorf("writing prompt: %w", err)
		}
		c.clock.Sleep(retryPause)
	}
}
