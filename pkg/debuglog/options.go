package debuglog

import (
	"context"
	"io"
)

// Sink receives rendered lines. Each line already ends in a newline.
type Sink interface {
	Write(ctx context.Context, line string) error
	Close() error
}

type options struct {
	writer        io.Writer
	sink          Sink
	normalization string
}

// Option configures a Logger.
type Option func(*options)

// WithWriter sends lines to w. Ignored when WithSink is also given.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// WithSink sends lines to s. The Logger closes s on Close.
func WithSink(s Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithNormalization applies a Unicode normalization form to every line:
// "none" (default), "nfc", "nfd", "nfkc" or "nfkd".
func WithNormalization(form string) Option {
	return func(o *options) {
		o.normalization = form
	}
}

func defaultOptions() options {
	return options{normalization: "none"}
}
