package limitread

import (
	"bytes"

	"github.com/avast/retry-go/v4"
)

// fill requests the next window from src, transparently retrying transient
// interruptions with no delay and no attempt limit. Any other error is
// returned verbatim.
func fill(src Source, log Logger) ([]byte, error) {
	var window []byte
	err := retry.Do(
		func() error {
			var err error
			window, err = src.Fill()
			return err
		},
		retry.RetryIf(IsInterrupted),
		retry.Attempts(0),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Debug("retrying interrupted read", "attempt", n, "error", err)
		}),
	)
	if err != nil {
		return nil, err
	}
	return window, nil
}

// scanUntil appends bytes from src to out until delim is found or the source
// is exhausted, returning the number of bytes consumed from src.
//
// The max bound is checked only at the moment the delimiter is located,
// against the cumulative count including the delimiter itself. On
// ErrSizeExceeded nothing from the matching chunk is appended or consumed;
// bytes appended by earlier iterations stay in out and remain consumed. A
// delimiter-free source drains successfully no matter how far past max it
// grows.
func scanUntil(src Source, log Logger, delim byte, out *bytes.Buffer, max int) (int, error) {
	read := 0
	for {
		window, err := fill(src, log)
		if err != nil {
			return read, err
		}

		if i := bytes.IndexByte(window, delim); i >= 0 {
			if read+i+1 > max {
				return read, ErrSizeExceeded
			}
			out.Write(window[:i+1])
			src.Consume(i + 1)
			return read + i + 1, nil
		}

		if len(window) == 0 {
			return read, nil
		}

		out.Write(window)
		src.Consume(len(window))
		read += len(window)
	}
}
