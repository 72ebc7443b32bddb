// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for Console packages.
//
// [RequireReceive], [RequireSend], and [RequireClosed] encapsulate the
// timeout safety valve pattern (select with time.After fallback) so
// that individual tests do not need direct time.After calls. These are
// the only place in the test suite where real wall-clock timeouts are
// used; everything else drives time through lib/clock fakes.
//
// [RequireNoReceive] asserts the opposite: that a channel stays silent
// for a settle window. Render-loop tests use it to prove no further
// frames arrive after an indicator has been joined.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since a failed wait leaves nothing for the test to recover.
//
// This package has no Console-internal dependencies.
package testutil
