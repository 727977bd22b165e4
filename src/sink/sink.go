// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sink

import (
	"io"
	"os"
)

// FileIO is the dispatch surface: implementations supply Write, and the
// shared helpers below build on it without knowing the concrete type.
type FileIO interface {
	Write(p []byte) (n int, err error)
}

// WriteString writes s through the interface. The dispatch happens at the
// Write call, not here; this helper is deliberately not part of FileIO so
// implementations cannot override it.
func WriteString(w FileIO, s string) (int, error) {
	return w.Write([]byte(s))
}

// StdioFile writes to standard output, or to an injected writer in tests.
type StdioFile struct {
	out io.Writer
}

// Compile-time check that StdioFile satisfies FileIO.
var _ FileIO = (*StdioFile)(nil)

// NewStdioFile creates a StdioFile. With out nil it writes to os.Stdout.
func NewStdioFile(out io.Writer) *StdioFile {
	if out == nil {
		out = os.Stdout
	}
	return &StdioFile{out: out}
}

// Write writes p to the configured output.
func (f *StdioFile) Write(p []byte) (int, error) {
	return f.out.Write(p)
}
