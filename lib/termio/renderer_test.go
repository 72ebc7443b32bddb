// Copyright 2026 The Console Authors
// SPDX-License-Identifier: Apache-2.0

package termio

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
)

func TestRendererPrintWritesVerbatim(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, 80)
	if err := r.Print("\r" + ClearLine + "hello"); err != nil {
		t.Fatalf("Print: %v", err)
	}
	want := "\r\x1b[2Khello"
	if got := buf.String(); got != want {
		t.Errorf("Print wrote %q, want %q", got, want)
	}
}

func TestRendererPrintf(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, 80)
	if err := r.Printf("[%03d%%]", 7); err != nil {
		t.Fatalf("Printf: %v", err)
	}
	if got, want := buf.String(), "[007%]"; got != want {
		t.Errorf("Printf wrote %q, want %q", got, want)
	}
}

func TestRendererColumnsFallback(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, 120)
	if got := r.Columns(); got != 120 {
		t.Errorf("Columns() = %d, want fallback 120", got)
	}
}

func TestRendererFlushNoopForPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, 80)
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush on plain writer: %v", err)
	}
}

func TestRendererFlushForwardsToBufferedWriter(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	r := NewRenderer(bw, 80)

	if err := r.Print("pending"); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("buffered writer leaked %q before Flush", buf.String())
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := buf.String(), "pending"; got != want {
		t.Errorf("after Flush buffer = %q, want %q", got, want)
	}
}

func TestCursorUpSequence(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "\x1b[1A"},
		{3, "\x1b[3A"},
		{12, "\x1b[12A"},
	}
	for _, test := range tests {
		if got := CursorUp(test.n); got != test.want {
			t.Errorf("CursorUp(%d) = %q, want %q", test.n, got, test.want)
		}
	}
}

func TestRendererWriterReturnsSink(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, 80)
	if r.Writer() != &buf {
		t.Error("Writer() did not return the wrapped sink")
	}
}

func TestRendererPrintPropagatesWriteError(t *testing.T) {
	r := NewRenderer(failWriter{}, 80)
	if err := r.Print("x"); err == nil {
		t.Fatal("Print on failing writer returned nil error")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("write refused")
}
