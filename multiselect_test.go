// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/console-foundation/console/lib/clock"
	"github.com/console-foundation/console/lib/termio"
)

// checklistRow renders one checklist line the way MultiSelect draws it.
func checklistRow(option string, selected, highlighted bool) string {
	marker := "[ ] "
	if selected {
		marker = "[X] "
	}
	if highlighted {
		return "\r" + blue(marker+option) + "\n"
	}
	return "\r" + marker + option + "\n"
}

func TestMultiSelectToggleAndConfirm(t *testing.T) {
	t.Parallel()

	input := " " + keyDown + keyDown + " " + keyEnter
	c, _ := testConsole(input, clock.Fake(epoch), 0)
	choices, err := MultiSelect(c, []string{"cats", "dogs", "rabbits"})
	if err != nil {
		t.Fatalf("MultiSelect() error = %v", err)
	}
	if want := []string{"cats", "rabbits"}; !slices.Equal(choices, want) {
		t.Errorf("MultiSelect() = %v, want %v", choices, want)
	}
}

func TestMultiSelectKeepsListOrder(t *testing.T) {
	t.Parallel()

	// Toggle rabbits first, then cats; the result still follows the
	// option list, not the toggle sequence.
	input := keyDown + keyDown + " " + keyUp + keyUp + " " + keyEnter
	c, _ := testConsole(input, clock.Fake(epoch), 0)
	choices, err := MultiSelect(c, []string{"cats", "dogs", "rabbits"})
	if err != nil {
		t.Fatalf("MultiSelect() error = %v", err)
	}
	if want := []string{"cats", "rabbits"}; !slices.Equal(choices, want) {
		t.Errorf("MultiSelect() = %v, want %v", choices, want)
	}
}

func TestMultiSelectDoubleToggleDeselects(t *testing.T) {
	t.Parallel()

	c, _ := testConsole("  "+keyEnter, clock.Fake(epoch), 0)
	choices, err := MultiSelect(c, []string{"cats", "dogs"})
	if err != nil {
		t.Fatalf("MultiSelect() error = %v", err)
	}
	if choices == nil {
		t.Fatal("MultiSelect() = nil, want empty non-nil slice")
	}
	if len(choices) != 0 {
		t.Errorf("MultiSelect() = %v, want empty", choices)
	}
}

func TestMultiSelectConfirmWithoutToggles(t *testing.T) {
	t.Parallel()

	c, _ := testConsole(keyEnter, clock.Fake(epoch), 0)
	choices, err := MultiSelect(c, []string{"cats", "dogs"})
	if err != nil {
		t.Fatalf("MultiSelect() error = %v", err)
	}
	if choices == nil {
		t.Fatal("MultiSelect() = nil, want empty non-nil slice")
	}
	if len(choices) != 0 {
		t.Errorf("MultiSelect() = %v, want empty", choices)
	}
}

func TestMultiSelectTranscript(t *testing.T) {
	t.Parallel()

	c, out := testConsole(" "+keyEnter, clock.Fake(epoch), 0)
	choices, err := MultiSelect(c, []string{"tea", "coffee"})
	if err != nil {
		t.Fatalf("MultiSelect() error = %v", err)
	}
	if len(choices) != 1 || choices[0] != "tea" {
		t.Errorf("MultiSelect() = %v, want [tea]", choices)
	}

	rows := checklistRow("tea", false, true) + checklistRow("coffee", false, false)
	rowsToggled := checklistRow("tea", true, true) + checklistRow("coffee", false, false)
	erase := strings.Repeat(termio.CursorUp(1)+termio.ClearLine, 2)
	want := termio.CursorHide + rows +
		erase + "\r" + rowsToggled +
		erase + "\r" + green("\r[X] tea\r") + "\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestMultiSelectEmptyOptions(t *testing.T) {
	t.Parallel()

	c, out := testConsole("", clock.Fake(epoch), 0)
	_, err := MultiSelect(c, nil)
	if !errors.Is(err, ErrNoOptions) {
		t.Fatalf("MultiSelect() error = %v, want ErrNoOptions", err)
	}
	if out.Len() != 0 {
		t.Errorf("MultiSelect() wrote %q before failing, want nothing", out.String())
	}
}

func TestMultiSelectExhaustedKeys(t *testing.T) {
	t.Parallel()

	c, _ := testConsole(" ", clock.Fake(epoch), 0)
	_, err := MultiSelect(c, []string{"cats", "dogs"})
	if !errors.Is(err, io.EOF) {
		t.Fatalf("MultiSelect() error = %v, want wrapped io.EOF", err)
	}
}
