// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sink_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/move-only-buffer/src/sink"
)

// countingSink records how often Write was dispatched to it.
type countingSink struct {
	buf    bytes.Buffer
	writes int
}

func (c *countingSink) Write(p []byte) (int, error) {
	c.writes++
	return c.buf.Write(p)
}

func TestWriteString(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Dispatches Through The Interface",
			testFunc: func(t *testing.T) {
				c := &countingSink{}

				n, err := sink.WriteString(c, "hello")
				require.NoError(t, err, "WriteString() error")

				assert.Equal(t, 5, n, "expected 5 bytes written")
				assert.Equal(t, "hello", c.buf.String(), "written bytes must equal the input")
				assert.Equal(t, 1, c.writes, "expected a single dispatched Write")
			},
		},
		{
			name: "StdioFile Writes To Injected Output",
			testFunc: func(t *testing.T) {
				var out bytes.Buffer
				f := sink.NewStdioFile(&out)

				n, err := sink.WriteString(f, "hello")
				require.NoError(t, err, "WriteString() error")

				assert.Equal(t, 5, n, "expected 5 bytes written")
				assert.Equal(t, "hello", out.String(), "expected the text on the output")
			},
		},
		{
			name: "Propagates Write Errors",
			testFunc: func(t *testing.T) {
				wantErr := errors.New("sink: closed")
				_, err := sink.WriteString(failingSink{err: wantErr}, "hello")

				assert.ErrorIs(t, err, wantErr, "expected the implementation error to surface")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

type failingSink struct{ err error }

func (f failingSink) Write([]byte) (int, error) { return 0, f.err }
