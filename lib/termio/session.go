// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package termio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Session is a scoped acquisition of raw terminal input: keystrokes
// are delivered individually, unbuffered and unechoed, until Close
// restores the mode that was in effect at open.
//
// Callers must Close the session on every exit path; the key-driven
// menu operations do so with defer so the terminal is restored on
// success, on error, and on panic alike.
type Session struct {
	keys *KeyReader

	// fd and prior are set only when the input was switched to raw
	// mode; Close restores prior and nils it, making Close idempotent.
	fd    int
	prior *term.State
}

// OpenSession switches the input's file descriptor to raw mode when it
// is a real terminal, and returns a session reading key events from
// keys. Non-terminal inputs (pipes, in-memory readers) are passed
// through unchanged, so scripted byte streams drive the key-driven
// operations without a tty.
//
// The keys reader is shared with the session rather than created from
// input so that bytes already buffered by line-oriented reads on the
// same stream are not lost.
func OpenSession(input io.Reader, keys *bufio.Reader) (*Session, error) {
	s := &Session{keys: NewKeyReader(keys), fd: -1}
	f, ok := input.(*os.File)
	if !ok {
		return s, nil
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return s, nil
	}
	prior, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	s.fd = fd
	s.prior = prior
	return s, nil
}

// Keys returns the session's key event decoder.
func (s *Session) Keys() *KeyReader { return s.keys }

// Close restores the terminal state captured at open. Calling Close
// more than once is safe; only the first call restores.
func (s *Session) Close() error {
	if s.prior == nil {
		return nil
	}
	prior := s.prior
	s.prior = nil
	if err := term.Restore(s.fd, prior); err != nil {
		return fmt.Errorf("restoring terminal state: %w", err)
	}
	return nil
}
