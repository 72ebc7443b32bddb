// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"strings"

	"github.com/console-foundation/console/lib/termio"
)

// checklistRows renders the option list with selection markers. The
// highlighted row is tinted whole, marker included; the leading
// carriage return stays outside the styled run.
func checklistRows(options []string, selected []bool, highlighted int) string {
	var b strings.Builder
	for i, option := range options {
		marker := "[ ] "
		if selected[i] {
			marker = "[X] "
		}
		if i == highlighted {
			b.WriteString("\r" + blue(marker+option) + "\n")
		} else {
			b.WriteString("\r" + marker + option + "\n")
		}
	}
	return b.String()
}

// MultiSelect presents options in a raw-mode checklist: arrows move
// the highlight, Space toggles the highlighted option in and out of
// the selection, Enter confirms. The menu collapses to one green
// "[X] choice" line per chosen option.
//
// Choices come back in their original list order regardless of the
// order they were toggled in. Confirming with nothing selected
// returns an empty, non-nil slice. An empty option list returns
// ErrNoOptions before anything touches the terminal.
func MultiSelect(c *Console, options []string) (choices []string, err error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	session, err := termio.OpenSession(c.in, c.reader)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	highlighted := 0
	selected := make([]bool, len(options))

	if err := c.out.Print(termio.CursorHide + checklistRows(options, selected, highlighted)); err != nil {
		return nil, fmt.Errorf("drawing menu: %w", err)
	}
	for {
		key, err := session.Keys().ReadKey()
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}
		switch key.Kind {
		case termio.KeyUp:
			highlighted = (highlighted + len(options) - 1) % len(options)
		case termio.KeyDown:
			highlighted = (highlighted + 1) % len(options)
		case termio.KeySpace:
			selected[highlighted] = !selected[highlighted]
		case termio.KeyEnter:
			chosen := make([]string, 0)
			for i, option := range options {
				if selected[i] {
					chosen = append(chosen, option)
				}
			}
			var conclusion strings.Builder
			conclusion.WriteString(eraseLines(len(options)) + "\r")
			for _, option := range chosen {
				conclusion.WriteString(green("\r[X] "+option+"\r") + "\n")
			}
			if err := c.out.Print(conclusion.String()); err != nil {
				return nil, fmt.Errorf("drawing menu: %w", err)
			}
			return chosen, nil
		}
		if err := c.out.Print(eraseLines(len(options)) + "\r" + checklistRows(options, selected, highlighted)); err != nil {
			return nil, fmt.Errorf("drawing menu: %w", err)
		}
	}
}
