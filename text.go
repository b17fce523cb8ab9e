package limitread

import (
	"bytes"
	"unicode/utf8"
)

// TextBuffer accumulates text that is guaranteed to be valid UTF-8 at every
// point it is observable. Line reads append to it; when a read appends bytes
// that are not valid UTF-8, the buffer rolls back to its pre-call content.
// The zero value is empty and ready to use.
type TextBuffer struct {
	b bytes.Buffer
}

// String returns the accumulated text.
func (t *TextBuffer) String() string {
	return t.b.String()
}

// Len returns the length of the accumulated text in bytes.
func (t *TextBuffer) Len() int {
	return t.b.Len()
}

// Reset empties the buffer.
func (t *TextBuffer) Reset() {
	t.b.Reset()
}

// utf8Guard restores its buffer to the recorded length unless the length was
// advanced by commit. Armed with defer, restore runs on every exit path,
// including a panic inside the wrapped scan.
type utf8Guard struct {
	buf *bytes.Buffer
	len int
}

func (g *utf8Guard) restore() {
	if g.buf.Len() > g.len {
		g.buf.Truncate(g.len)
	}
}

func (g *utf8Guard) commit() {
	g.len = g.buf.Len()
}

// appendGuarded runs scan against t's backing bytes and keeps t's observable
// content valid UTF-8. Only the newly appended range is validated, never the
// previously committed content.
//
// The branching is deliberately asymmetric: a successful scan whose appended
// bytes fail validation rolls back and reports ErrInvalidUTF8, while a failed
// scan keeps whatever it appended, valid or not, and its own error wins.
func appendGuarded(t *TextBuffer, max int, scan func(out *bytes.Buffer, max int) (int, error)) (n int, err error) {
	g := &utf8Guard{buf: &t.b, len: t.b.Len()}
	defer g.restore()

	n, err = scan(&t.b, max)
	if utf8.Valid(t.b.Bytes()[g.len:]) {
		g.commit()
		return n, err
	}
	if err != nil {
		// The scan already failed; its partial bytes stay in place and
		// its error is returned untouched.
		g.commit()
		return n, err
	}
	return n, ErrInvalidUTF8
}
