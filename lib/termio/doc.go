// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package termio provides the low-level terminal plumbing for the
// console toolkit: a renderer that writes control sequences and
// queries the terminal width, a raw-mode session with guaranteed
// restoration of the prior terminal state, and a decoder that turns
// the raw input byte stream into discrete key events.
//
// Everything in this package degrades gracefully when the streams are
// not real terminals. A renderer over a plain io.Writer reports the
// configured fallback width, and a session over a non-terminal reader
// skips the mode switch entirely. This keeps the higher-level
// operations fully drivable by in-memory buffers in tests.
package termio
