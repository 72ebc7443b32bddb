// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()

	err := &ParseError{Input: "forty", Err: strconv.ErrSyntax}
	want := `console: parsing "forty": invalid syntax`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseErrorUnwrapsParserError(t *testing.T) {
	t.Parallel()

	parseErr := &ParseError{Input: "forty", Err: strconv.ErrSyntax}
	if !errors.Is(parseErr, strconv.ErrSyntax) {
		t.Error("errors.Is(parseErr, strconv.ErrSyntax) = false, want true")
	}

	// The chain survives an outer wrapping layer.
	wrapped := fmt.Errorf("reading config: %w", parseErr)
	var got *ParseError
	if !errors.As(wrapped, &got) {
		t.Fatal("errors.As(wrapped, *ParseError) = false, want true")
	}
	if got.Input != "forty" {
		t.Errorf("got.Input = %q, want %q", got.Input, "forty")
	}
}
