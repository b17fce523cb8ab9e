package limitread

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
)

// discardLogger returns a Logger that swallows everything; test assertions
// never depend on log output.
func discardLogger() Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestReader builds a Reader over data with the given window size, so
// tests can force records to span multiple chunks.
func newTestReader(t *testing.T, data []byte, bufferSize int) *Reader {
	t.Helper()
	r, err := NewReader(bytes.NewReader(data), Config{BufferSize: bufferSize, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	return r
}

// scenarioBytes returns ten bytes of value 1 with delim placed at the given
// indices.
func scenarioBytes(delim byte, at ...int) []byte {
	data := bytes.Repeat([]byte{1}, 10)
	for _, i := range at {
		data[i] = delim
	}
	return data
}
