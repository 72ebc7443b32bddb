// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by prompt and menu operations. Test with
// errors.Is.
var (
	// ErrInputRequired reports that a prompt without a default value
	// received no input: the user entered an empty line or the input
	// stream was already exhausted.
	ErrInputRequired = errors.New("console: input required but none given")

	// ErrNoOptions reports that a menu operation was given an empty
	// option list. It is returned before anything is written to the
	// terminal.
	ErrNoOptions = errors.New("console: menu requires at least one option")
)

// ParseError reports a line of input that could not be converted by a
// [Parser]. Input carries the trimmed text that failed; Err is the
// parser's own error, reachable through errors.As / errors.Is.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("console: parsing %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
