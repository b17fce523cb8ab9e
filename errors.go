package limitread

import (
	"errors"
	"syscall"
)

// Sentinel errors for bounded reads.
var (
	// ErrSizeExceeded indicates a delimiter was located but the record,
	// including the delimiter itself, is longer than the configured max.
	// The bound is checked only at the moment the delimiter is found; a
	// delimiter-free stream never triggers it.
	ErrSizeExceeded = errors.New("limitread: record exceeds max length")

	// ErrInvalidUTF8 indicates a text read appended bytes that are not
	// valid UTF-8. The text buffer has been rolled back to its pre-call
	// content.
	ErrInvalidUTF8 = errors.New("limitread: stream did not contain valid UTF-8")

	// ErrInterrupted marks a transient source interruption. Sources may
	// return it (or an error wrapping syscall.EINTR) to have the read
	// retried transparently.
	ErrInterrupted = errors.New("limitread: read interrupted")

	// ErrInvalidConfig indicates the reader configuration is invalid.
	ErrInvalidConfig = errors.New("limitread: invalid configuration")
)

// IsSizeExceeded checks if the error indicates a record outgrew its max.
func IsSizeExceeded(err error) bool {
	return errors.Is(err, ErrSizeExceeded)
}

// IsInvalidUTF8 checks if the error indicates non-UTF-8 input on a text read.
func IsInvalidUTF8(err error) bool {
	return errors.Is(err, ErrInvalidUTF8)
}

// IsInterrupted checks if the error is a transient interruption that reads
// retry transparently. Both ErrInterrupted and OS-level syscall.EINTR match.
func IsInterrupted(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrInterrupted) || errors.Is(err, syscall.EINTR)
}
