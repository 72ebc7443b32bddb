// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"github.com/console-foundation/console/lib/termio"
)

// Slab dimensions match fzf's own allocation for reusable match
// scratch space.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

// maxVisibleMatches caps the match rows drawn under the query line.
const maxVisibleMatches = 8

func init() {
	algo.Init("default")
}

// filterState holds the menu's state between keystrokes.
type filterState struct {
	options []string
	chars   []util.Chars
	slab    *util.Slab

	query   []rune
	matches []int // option indexes, best score first
	cursor  int   // highlighted position within matches
	drawn   int   // lines the previous frame drew
}

func newFilterState(options []string) *filterState {
	s := &filterState{
		options: options,
		chars:   make([]util.Chars, len(options)),
		slab:    util.MakeSlab(slab16Size, slab32Size),
	}
	for i, option := range options {
		s.chars[i] = util.ToChars([]byte(option))
	}
	s.rank()
	return s
}

// rank rebuilds the match list for the current query and resets the
// highlight. An empty query lists every option in original order;
// otherwise options are scored case-insensitively and sorted best
// first, with original order breaking ties.
func (s *filterState) rank() {
	s.cursor = 0
	s.matches = s.matches[:0]
	if len(s.query) == 0 {
		for i := range s.options {
			s.matches = append(s.matches, i)
		}
		return
	}
	pattern := []rune(strings.ToLower(string(s.query)))
	type hit struct{ index, score int }
	var hits []hit
	for i := range s.chars {
		result, _ := algo.FuzzyMatchV2(false, true, true, &s.chars[i], pattern, false, s.slab)
		if result.Score > 0 {
			hits = append(hits, hit{index: i, score: result.Score})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })
	for _, h := range hits {
		s.matches = append(s.matches, h.index)
	}
}

// frame renders the query line and the visible window of matches,
// recording how many lines it drew for the next erase. The window
// slides so the highlighted match stays on screen.
func (s *filterState) frame(columns int) string {
	var b strings.Builder
	b.WriteString(blue("=> ") + s.visibleQuery(columns) + "\r\n")

	start := 0
	if s.cursor >= maxVisibleMatches {
		start = s.cursor - maxVisibleMatches + 1
	}
	end := min(start+maxVisibleMatches, len(s.matches))
	for i := start; i < end; i++ {
		option := s.options[s.matches[i]]
		if i == s.cursor {
			b.WriteString(blue("=> " + option))
		} else {
			b.WriteString("   " + option)
		}
		b.WriteString(termio.CursorHide)
		b.WriteString("\r\n")
	}
	s.drawn = 1 + end - start
	return b.String()
}

// visibleQuery trims the head of the query until the query line fits
// the terminal, so a long query cannot wrap and break the redraw
// arithmetic.
func (s *filterState) visibleQuery(columns int) string {
	visible := s.query
	for len(visible) > 0 && ansi.StringWidth("=> "+string(visible)) >= columns {
		visible = visible[1:]
	}
	return string(visible)
}

// FilterSelect presents options behind a fuzzy filter, for lists too
// long to arrow through. Typing narrows and re-ranks the options with
// fzf's matching algorithm, Backspace widens, arrows move the
// highlight through the matches (wrapping), and Enter confirms the
// highlighted match. Enter with no matches is ignored. At most eight
// matches are visible below the query line; the window follows the
// highlight.
//
// The terminal is restored on every exit path. An empty option list
// returns ErrNoOptions before anything touches the terminal.
func FilterSelect(c *Console, options []string) (choice string, err error) {
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

	state := newFilterState(options)
	if err := c.out.Print(state.frame(c.out.Columns())); err != nil {
		return "", fmt.Errorf("drawing menu: %w", err)
	}
	for {
		key, err := session.Keys().ReadKey()
		if err != nil {
			return "", fmt.Errorf("reading key: %w", err)
		}
		switch key.Kind {
		case termio.KeyUp:
			if len(state.matches) > 0 {
				state.cursor = (state.cursor + len(state.matches) - 1) % len(state.matches)
			}
		case termio.KeyDown:
			if len(state.matches) > 0 {
				state.cursor = (state.cursor + 1) % len(state.matches)
			}
		case termio.KeyRune:
			state.query = append(state.query, key.Rune)
			state.rank()
		case termio.KeySpace:
			state.query = append(state.query, ' ')
			state.rank()
		case termio.KeyBackspace:
			if len(state.query) > 0 {
				state.query = state.query[:len(state.query)-1]
				state.rank()
			}
		case termio.KeyEnter:
			if len(state.matches) == 0 {
				break
			}
			chosen := state.options[state.matches[state.cursor]]
			conclusion := eraseLines(state.drawn) + green("\r=> "+chosen+"\r") + "\n"
			if err := c.out.Print(conclusion); err != nil {
				return "", fmt.Errorf("drawing menu: %w", err)
			}
			return chosen, nil
		}
		erase := eraseLines(state.drawn)
		if err := c.out.Print(erase + "\r" + state.frame(c.out.Columns())); err != nil {
			return "", fmt.Errorf("drawing menu: %w", err)
		}
	}
}
