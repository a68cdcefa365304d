package io

import (
	"bytes"
	"io"
	"os"
)

// Streams provides the standard names for iostreams. Commands write results to
// Out and diagnostics to ErrOut so both can be captured in tests.
type Streams struct {
	// In think, os.Stdin
	In io.Reader
	// Out think, os.Stdout
	Out io.Writer
	// ErrOut think, os.Stderr
	ErrOut io.Writer
}

// NewStdStreams returns Streams bound to the process standard streams.
func NewStdStreams() Streams {
	return Streams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

// NewTestStreams returns a valid Streams and in, out, errout buffers for unit
// tests
func NewTestStreams() (Streams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	return Streams{
		In:     in,
		Out:    out,
		ErrOut: errOut,
	}, in, out, errOut
}

// NewTestStreamsDiscard returns a valid Streams that just discards
func NewTestStreamsDiscard() Streams {
	in := &bytes.Buffer{}
	return Streams{
		In:     in,
		Out:    io.Discard,
		ErrOut: io.Discard,
	}
}
