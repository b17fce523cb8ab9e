//go:generate go tool mockgen -source=./source.go -destination=./source_mock.go -package=limitread Source

package limitread

import (
	"bufio"
	"io"
)

// Source is a buffered byte source: a no-copy peek of the bytes currently
// buffered plus an explicit cursor advance. A Source is borrowed exclusively
// by one Reader for the duration of each read; no concurrent access is
// supported or guarded against.
type Source interface {
	// Fill returns the currently buffered bytes without consuming them,
	// reading from the underlying stream only when the buffer is empty.
	// An empty window with a nil error means the stream is exhausted.
	// Errors satisfying IsInterrupted are transient and retried by the
	// caller; any other error is propagated verbatim.
	Fill() ([]byte, error)

	// Consume advances the read cursor by n bytes. n must not exceed the
	// length of the window returned by the preceding Fill.
	Consume(n int)
}

// maxConsecutiveEmptyReads bounds misbehaving io.Readers that keep returning
// (0, nil) before the stream produces data or an error.
const maxConsecutiveEmptyReads = 100

// streamSource buffers an io.Reader behind a window/advance cursor.
type streamSource struct {
	r          io.Reader
	buf        []byte
	start, end int
	err        error
	eof        bool
}

// NewSource wraps r in a Source backed by a window of cfg.BufferSize bytes.
func NewSource(r io.Reader, config ...Config) (Source, error) {
	cfg := mergeWithDefault(config...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &streamSource{r: r, buf: make([]byte, cfg.BufferSize)}, nil
}

func (s *streamSource) window() []byte {
	return s.buf[s.start:s.end]
}

func (s *streamSource) Fill() ([]byte, error) {
	if s.start != s.end {
		return s.window(), nil
	}

	// Surface a read error only once the bytes read alongside it have
	// been consumed.
	if s.err != nil {
		err := s.err
		s.err = nil
		return nil, err
	}
	if s.eof {
		return nil, nil
	}

	s.start, s.end = 0, 0
	for i := 0; ; i++ {
		n, err := s.r.Read(s.buf)
		if n > 0 {
			s.end = n
		}
		switch {
		case err == io.EOF:
			s.eof = true
		case err != nil && n > 0:
			s.err = err
		case err != nil:
			return nil, err
		case n == 0:
			if i+1 >= maxConsecutiveEmptyReads {
				return nil, io.ErrNoProgress
			}
			continue
		}
		return s.window(), nil
	}
}

func (s *streamSource) Consume(n int) {
	if n <= 0 {
		return
	}
	s.start += n
	if s.start >= s.end {
		s.start, s.end = 0, 0
	}
}

// bufioSource adapts a *bufio.Reader, reusing its buffer via Peek/Discard.
type bufioSource struct {
	br *bufio.Reader
}

// NewBufioSource wraps an existing bufio.Reader without additional buffering.
// The bufio.Reader keeps ownership of any bytes still buffered after the
// Reader built on top of it is abandoned.
func NewBufioSource(br *bufio.Reader) Source {
	return &bufioSource{br: br}
}

func (s *bufioSource) Fill() ([]byte, error) {
	if n := s.br.Buffered(); n > 0 {
		return s.br.Peek(n)
	}
	if _, err := s.br.Peek(1); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	return s.br.Peek(s.br.Buffered())
}

func (s *bufioSource) Consume(n int) {
	_, _ = s.br.Discard(n)
}
