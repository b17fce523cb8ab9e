// Package limitread reads delimiter-terminated records from a buffered byte
// source while bounding how large a single record may grow. It is meant for
// streams whose producer is untrusted or unbounded, where an ordinary
// read-until-delimiter call could be fed into unbounded memory.
package limitread

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
)

// Reader exposes bounded, delimiter-terminated reads over a buffered byte
// source. It is the sole entry point to the scanning primitives.
//
// A Reader exclusively owns its Source: all operations are synchronous and
// blocking, and no concurrent use is supported. Abandoning a Reader or one of
// its iterators mid-sequence leaves the source at whatever cursor position
// the last completed read reached.
type Reader struct {
	src Source
	log Logger
}

// New builds a Reader over an existing Source.
func New(src Source, config ...Config) (*Reader, error) {
	cfg := mergeWithDefault(config...)

	var errs *multierror.Error
	if src == nil {
		errs = multierror.Append(errs, fmt.Errorf("%w: source must not be nil", ErrInvalidConfig))
	}
	if err := cfg.validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &Reader{src: src, log: cfg.Logger}, nil
}

// NewReader builds a Reader over a plain io.Reader, buffering it with a
// window of cfg.BufferSize bytes.
func NewReader(r io.Reader, config ...Config) (*Reader, error) {
	src, err := NewSource(r, config...)
	if err != nil {
		return nil, err
	}
	return New(src, config...)
}

// ReadUntil appends bytes from the source to out until delim is found or the
// source is exhausted, returning the number of bytes consumed including the
// delimiter.
//
// If the delimiter is located at a cumulative offset that would make the
// record, delimiter included, longer than max bytes, ReadUntil returns
// ErrSizeExceeded without appending or consuming anything from the matching
// chunk. Bytes appended by earlier chunks of the same call stay in out; they
// are never rolled back at this layer. When no delimiter ever appears, the
// source drains successfully regardless of max. When an error is returned,
// the count still reports the bytes consumed from the source before the
// failure.
func (r *Reader) ReadUntil(delim byte, out *bytes.Buffer, max int) (int, error) {
	return scanUntil(r.src, r.log, delim, out, max)
}

// ReadLine appends one newline-terminated line to out, returning the number
// of bytes consumed including the newline. The max bound behaves exactly as
// in ReadUntil.
//
// Appended bytes are validated as UTF-8 before out exposes them. If the scan
// succeeded but the new bytes are invalid, out rolls back to its pre-call
// content and ReadLine returns ErrInvalidUTF8. If the scan itself failed, its
// error is returned unchanged and the partial bytes stay, whether or not they
// are valid.
func (r *Reader) ReadLine(out *TextBuffer, max int) (int, error) {
	return appendGuarded(out, max, func(buf *bytes.Buffer, max int) (int, error) {
		return scanUntil(r.src, r.log, '\n', buf, max)
	})
}

// Split returns an iterator over delim-separated byte records, each bounded
// by max. The iterator consumes the Reader's source.
func (r *Reader) Split(delim byte, max int) *Split {
	return &Split{src: r.src, log: r.log, delim: delim, max: max}
}

// Lines returns an iterator over newline-terminated text lines, each bounded
// by max. The iterator consumes the Reader's source.
func (r *Reader) Lines(max int) *Lines {
	return &Lines{src: r.src, log: r.log, max: max}
}
