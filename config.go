package limitread

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
)

// Logger interface compatible with slog.Logger
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

const (
	defaultBufferSize = 32 * 1024
	maxBufferSize     = 8 * 1024 * 1024
)

type Config struct {
	// Logger receives debug events: retried interrupted reads and
	// iterator-terminating errors. Defaults to slog.Default().
	Logger Logger

	// BufferSize is the window size, in bytes, of sources built from a
	// plain io.Reader. It has no effect on caller-provided Sources.
	BufferSize int
}

var configDefault = Config{
	BufferSize: defaultBufferSize,
}

func mergeWithDefault(config ...Config) Config {
	cfg := configDefault
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.BufferSize == 0 {
		cfg.BufferSize = configDefault.BufferSize
	}

	return cfg
}

func (c Config) validate() error {
	var errs *multierror.Error

	if c.BufferSize < 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: buffer size must be positive, got %d", ErrInvalidConfig, c.BufferSize))
	}

	if c.BufferSize > maxBufferSize {
		errs = multierror.Append(errs, fmt.Errorf("%w: buffer size exceeds %d bytes", ErrInvalidConfig, maxBufferSize))
	}

	return errs.ErrorOrNil()
}
