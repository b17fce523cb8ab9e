package limitread

import (
	"bytes"
	"iter"
)

// Split iterates over delimiter-separated byte records. Each step reads one
// record with the bounded scan into a fresh buffer and strips the trailing
// delimiter. The sequence is finite and not restartable: it consumes the
// underlying source. After an error the iterator is exhausted for good; Next
// never yields another record.
type Split struct {
	src   Source
	log   Logger
	delim byte
	max   int

	cur      []byte
	err      error
	done     bool
	reported bool
}

// Next advances to the next record. It returns false when the source is
// exhausted or a read failed; use Err to distinguish.
func (s *Split) Next() bool {
	if s.done {
		return false
	}

	var buf bytes.Buffer
	n, err := scanUntil(s.src, s.log, s.delim, &buf, s.max)
	if err != nil {
		s.log.Debug("record iteration stopped", "error", err)
		s.err = err
		s.done = true
		return false
	}
	if n == 0 {
		s.done = true
		return false
	}

	s.cur = trimDelim(buf.Bytes(), s.delim)
	return true
}

// Bytes returns the current record without its trailing delimiter. The slice
// is not reused by later Next calls.
func (s *Split) Bytes() []byte {
	return s.cur
}

// Err returns the error that terminated the iteration, if any.
func (s *Split) Err() error {
	return s.err
}

// All returns the remaining records as a single-use iterator. A failed read
// yields exactly one (nil, err) pair, after which the sequence ends.
func (s *Split) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for s.Next() {
			if !yield(s.cur, nil) {
				return
			}
		}
		if s.err != nil && !s.reported {
			s.reported = true
			yield(nil, s.err)
		}
	}
}

func trimDelim(b []byte, delim byte) []byte {
	if len(b) > 0 && b[len(b)-1] == delim {
		b = b[:len(b)-1]
	}
	return b
}
