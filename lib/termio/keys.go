// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package termio

import (
	"bufio"
	"unicode"
	"unicode/utf8"
)

// KeyKind classifies a decoded key event.
type KeyKind int

const (
	// KeyRune is a printable character; the Rune field carries it.
	KeyRune KeyKind = iota

	// KeyUp is the up-arrow key.
	KeyUp

	// KeyDown is the down-arrow key.
	KeyDown

	// KeyEnter is carriage return or line feed. Raw-mode terminals
	// send CR for the Enter key; cooked streams send LF. Both decode
	// to KeyEnter.
	KeyEnter

	// KeySpace is the space bar.
	KeySpace

	// KeyBackspace is DEL (0x7f) or BS (0x08).
	KeyBackspace

	// KeyOther is any key the decoder consumed but does not map:
	// unrecognized escape sequences, control bytes, invalid UTF-8.
	// Callers treat it as "no state change".
	KeyOther
)

// Key is one decoded key event.
type Key struct {
	Kind KeyKind

	// Rune is set for KeyRune events.
	Rune rune
}

// KeyReader decodes discrete key events from a byte stream. It reads
// exactly as many bytes as each event needs, so it can share a
// bufio.Reader with line-oriented readers on the same stream.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader decodes keys from r.
func NewKeyReader(r *bufio.Reader) *KeyReader {
	return &KeyReader{r: r}
}

// ReadKey blocks until one key event is available and returns it.
// Errors from the underlying reader, including io.EOF when the stream
// is exhausted, pass through unwrapped.
func (k *KeyReader) ReadKey() (Key, error) {
	r, size, err := k.r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	switch r {
	case '\r', '\n':
		return Key{Kind: KeyEnter}, nil
	case ' ':
		return Key{Kind: KeySpace}, nil
	case 0x7f, '\b':
		return Key{Kind: KeyBackspace}, nil
	case 0x1b:
		return k.readEscape()
	}
	if r == utf8.RuneError && size == 1 {
		return Key{Kind: KeyOther}, nil
	}
	if unicode.IsPrint(r) {
		return Key{Kind: KeyRune, Rune: r}, nil
	}
	return Key{Kind: KeyOther}, nil
}

// readEscape consumes the remainder of an escape sequence. Arrow keys
// arrive as CSI sequences ("\x1b[A") or SS3 sequences ("\x1bOA")
// depending on the terminal's cursor-key mode; both are handled.
// Unrecognized sequences are consumed through their final byte and
// reported as KeyOther.
func (k *KeyReader) readEscape() (Key, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	switch b {
	case 'O':
		final, err := k.r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		return arrowKey(final), nil
	case '[':
		for {
			c, err := k.r.ReadByte()
			if err != nil {
				return Key{}, err
			}
			// Parameter (0x30-0x3f) and intermediate (0x20-0x2f)
			// bytes precede the final byte (0x40-0x7e).
			if c >= 0x40 && c <= 0x7e {
				return arrowKey(c), nil
			}
		}
	}
	// Bare ESC chord (alt-modified key); consumed, not mapped.
	return Key{Kind: KeyOther}, nil
}

func arrowKey(final byte) Key {
	switch final {
	case 'A':
		return Key{Kind: KeyUp}
	case 'B':
		return Key{Kind: KeyDown}
	}
	return Key{Kind: KeyOther}
}
