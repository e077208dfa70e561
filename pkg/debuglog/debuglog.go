package debuglog

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/crimson-sun/debuglog/internal/engine"
	"github.com/crimson-sun/debuglog/internal/engine/normalizer"
	"github.com/crimson-sun/debuglog/internal/model"
	"github.com/crimson-sun/debuglog/internal/output/stream"
)

// Logger writes one line per call to its sink.
type Logger struct {
	engine *engine.Engine
	sink   Sink
}

// New creates a Logger. Without WithWriter or WithSink it writes to stderr.
func New(opts ...Option) (*Logger, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n, err := normalizer.Parse(o.normalization)
	if err != nil {
		return nil, fmt.Errorf("debuglog: %w", err)
	}

	sink := o.sink
	if sink == nil {
		if o.writer != nil {
			sink = stream.New(o.writer, "writer")
		} else {
			sink = stream.Stderr()
		}
	}

	return &Logger{engine: engine.New(n), sink: sink}, nil
}

// Debug writes the concatenated fragments followed by a newline.
// Sink failures are dropped; use Emit to observe them.
func (l *Logger) Debug(fragments ...any) {
	_ = l.Emit(context.Background(), fragments...)
}

// Debugf writes a formatted line. A trailing newline in format is not
// doubled.
func (l *Logger) Debugf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		msg = msg[:n-1]
	}
	_ = l.Emit(context.Background(), msg)
}

// Emit writes the concatenated fragments followed by a newline and
// reports any sink failure.
func (l *Logger) Emit(ctx context.Context, fragments ...any) error {
	line := l.engine.Render(model.Message{Fragments: fragments})
	if err := l.sink.Write(ctx, line); err != nil {
		return fmt.Errorf("debuglog: %w", err)
	}
	return nil
}

// Close releases the sink.
func (l *Logger) Close() error {
	return l.sink.Close()
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(&Logger{engine: engine.New(nil), sink: stream.Stderr()})
}

// Default returns the process-wide Logger used by the package-level
// functions. Unless replaced with SetDefault it writes to stderr.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide Logger. A nil l is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// Debug writes a line through the default Logger.
func Debug(fragments ...any) {
	Default().Debug(fragments...)
}

// Debugf writes a formatted line through the default Logger.
func Debugf(format string, args ...any) {
	Default().Debugf(format, args...)
}
