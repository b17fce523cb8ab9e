package limitread

import (
	"bytes"
	"iter"
	"strings"
)

// Lines iterates over newline-terminated text lines. Each step reads one line
// through the UTF-8 guard into a fresh buffer, then strips the trailing
// newline and, when present, the carriage return before it. Like Split, the
// sequence is finite, not restartable, and exhausted for good after an error.
type Lines struct {
	src Source
	log Logger
	max int

	cur      string
	err      error
	done     bool
	reported bool
}

// Next advances to the next line. It returns false when the source is
// exhausted or a read failed; use Err to distinguish.
func (l *Lines) Next() bool {
	if l.done {
		return false
	}

	var buf TextBuffer
	n, err := appendGuarded(&buf, l.max, func(out *bytes.Buffer, max int) (int, error) {
		return scanUntil(l.src, l.log, '\n', out, max)
	})
	if err != nil {
		l.log.Debug("line iteration stopped", "error", err)
		l.err = err
		l.done = true
		return false
	}
	if n == 0 {
		l.done = true
		return false
	}

	l.cur = trimLineEnding(buf.String())
	return true
}

// Text returns the current line without its line ending.
func (l *Lines) Text() string {
	return l.cur
}

// Err returns the error that terminated the iteration, if any.
func (l *Lines) Err() error {
	return l.err
}

// All returns the remaining lines as a single-use iterator. A failed read
// yields exactly one ("", err) pair, after which the sequence ends.
func (l *Lines) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for l.Next() {
			if !yield(l.cur, nil) {
				return
			}
		}
		if l.err != nil && !l.reported {
			l.reported = true
			yield("", l.err)
		}
	}
}

// trimLineEnding strips one trailing newline and, only when the newline was
// present, one carriage return before it. A line ending in a bare CR keeps it.
func trimLineEnding(line string) string {
	if strings.HasSuffix(line, "\n") {
		line = line[:len(line)-1]
		line = strings.TrimSuffix(line, "\r")
	}
	return line
}
