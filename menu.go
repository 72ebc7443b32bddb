// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"strings"

	"github.com/console-foundation/console/lib/termio"
)

// eraseLines backs the cursor up over n previously drawn lines,
// clearing each one.
func eraseLines(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(termio.CursorUp(1))
		b.WriteString(termio.ClearLine)
	}
	return b.String()
}

// menuRows renders the full option list with an arrow on the
// highlighted row. Every row re-hides the cursor.
func menuRows(options []string, highlighted int) string {
	var b strings.Builder
	for i, option := range options {
		if i == highlighted {
			b.WriteString(blue("=> " + option))
		} else {
			b.WriteString("   " + option)
		}
		b.WriteString(termio.CursorHide)
		b.WriteString("\r\n")
	}
	return b.String()
}

// Select presents options in a raw-mode menu: up and down arrows move
// the highlight, wrapping at both ends, and Enter confirms. Every
// other key leaves the highlight where it is. The menu collapses to a
// single green "=> choice" line on confirmation, and the chosen
// option text is returned.
//
// The terminal is restored on every exit path. An empty option list
// returns ErrNoOptions before anything touches the terminal.
func Select(c *Console, options []string) (choice string, err error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}
	session, err := termio.OpenSession(c.in, c.reader)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	highlighted := 0
	if err := c.out.Print(menuRows(options, highlighted)); err != nil {
		return "", fmt.Errorf("drawing menu: %w", err)
	}
	for {
		key, err := session.Keys().ReadKey()
		if err != nil {
			return "", fmt.Errorf("reading key: %w", err)
		}
		switch key.Kind {
		case termio.KeyUp:
			highlighted = (highlighted + len(options) - 1) % len(options)
		case termio.KeyDown:
			highlighted = (highlighted + 1) % len(options)
		case termio.KeyEnter:
			chosen := options[highlighted]
			conclusion := eraseLines(len(options)) + green("\r=> "+chosen+"\r") + "\n"
			if err := c.out.Print(conclusion); err != nil {
				return "", fmt.Errorf("drawing menu: %w", err)
			}
			return chosen, nil
		}
		if err := c.out.Print(eraseLines(len(options)) + "\r" + menuRows(options, highlighted)); err != nil {
			return "", fmt.Errorf("drawing menu: %w", err)
		}
	}
}
