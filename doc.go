// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package console provides small interactive building blocks for
// command-line programs: parsed and validated line prompts, a braille
// live indicator, a percentage progress bar, and raw-mode selection
// menus (single, multi, and fuzzy-filtered).
//
// A Console binds one input and one output stream for its lifetime:
//
//	cli := console.New(console.Options{})
//	defer cli.Close()
//
//	name, err := console.ParsedInput(cli, "Project name", console.ParseString)
//
// The operations are package functions rather than methods so they
// can be generic over the value they produce.
//
// Long-running work renders through Spin or ProgressBar while the
// task itself runs on the calling goroutine:
//
//	result, err := console.Spin(cli, "Fetching", func() (int, error) {
//		return fetchCount()
//	})
//
// Menus take the input stream into raw mode until a choice is made:
//
//	animal, err := console.Select(cli, []string{"cats", "dogs", "both"})
//
// All rendering uses a fixed 16-color ANSI palette and a small set of
// cursor-control sequences, documented in lib/termio. Outputs that
// are not terminals receive the same byte stream, so transcripts are
// stable and testable.
package console
