package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/crimson-sun/debuglog/internal/output"
)

func init() {
	output.Register("file", func(s output.Settings) (output.Output, error) {
		return New(s.FilePath, WithMaxSize(s.FileMaxSize))
	})
}

const (
	bufSize    = 64 * 1024 // 64KB
	maxRotated = 10
)

// Option configures a file Output.
type Option func(*Output)

// WithMaxSize sets the on-disk file size (bytes) at which rotation
// triggers. 0 (default) disables rotation. For .gz paths the compressed
// bytes are counted.
func WithMaxSize(bytes int64) Option {
	return func(o *Output) { o.maxSize = bytes }
}

// Output appends lines to a file. Every Write is flushed through to the
// file before returning. Paths ending in ".gz" are written as a gzip stream
// with a sync flush after each line.
type Output struct {
	mu      sync.Mutex
	f       *os.File // nil after a failed reopen
	cw      *countingWriter
	gz      *gzip.Writer // nil unless compressing
	w       *bufio.Writer
	path    string
	maxSize int64 // 0 = no rotation
}

// countingWriter counts bytes that reach the file.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// New creates a file output that appends to the given path.
func New(path string, opts ...Option) (*Output, error) {
	o := &Output{path: path}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.openFile(); err != nil {
		return nil, err
	}
	return o, nil
}

// Compressed reports whether the output writes gzip.
func (o *Output) Compressed() bool {
	return strings.HasSuffix(o.path, ".gz")
}

// Write appends line to the file and flushes it. When rotation fails the
// line is still appended to the reopened file and the rotation error is
// returned.
func (o *Output) Write(_ context.Context, line string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.f == nil {
		if err := o.openFile(); err != nil {
			return err
		}
	}

	var rotErr error
	if o.needsRotate(line) {
		if err := o.rotate(); err != nil {
			rotErr = fmt.Errorf("file output: rotate: %w", err)
			if o.f == nil {
				return rotErr
			}
		}
	}

	if _, err := o.w.WriteString(line); err != nil {
		return errors.Join(rotErr, fmt.Errorf("file output: write: %w", err))
	}
	if err := o.flush(); err != nil {
		return errors.Join(rotErr, fmt.Errorf("file output: flush: %w", err))
	}
	return rotErr
}

// Close flushes pending data, terminates the gzip stream if any, and
// closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.f == nil {
		return nil
	}
	if err := o.closeFile(); err != nil {
		return fmt.Errorf("file output: close: %w", err)
	}
	return nil
}

func (o *Output) written() int64 {
	return o.cw.n
}

// needsRotate reports whether line should start a new file. Plain files
// rotate before a line would cross maxSize. The compressed size of a line
// is unknown until it is flushed, so gzip files rotate once they have
// reached maxSize.
func (o *Output) needsRotate(line string) bool {
	if o.maxSize <= 0 || o.written() == 0 {
		return false
	}
	if o.gz != nil {
		return o.written() >= o.maxSize
	}
	return o.written()+int64(len(line)) > o.maxSize
}

func (o *Output) flush() error {
	if err := o.w.Flush(); err != nil {
		return err
	}
	if o.gz != nil {
		return o.gz.Flush()
	}
	return nil
}

// openFile opens (or creates) the output file and wraps it in a
// bufio.Writer, inserting a gzip writer for compressed paths. A new gzip
// member is started on every open; concatenated members decode as one
// stream.
func (o *Output) openFile() error {
	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("file output: open %s: %w", o.path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("file output: stat %s: %w", o.path, err)
	}

	o.cw = &countingWriter{w: f, n: info.Size()}
	var dst io.Writer = o.cw
	o.gz = nil
	if o.Compressed() {
		o.gz = gzip.NewWriter(o.cw)
		dst = o.gz
	}
	o.f = f
	o.w = bufio.NewWriterSize(dst, bufSize)
	return nil
}

func (o *Output) closeFile() error {
	f := o.f
	o.f = nil
	if err := o.w.Flush(); err != nil {
		f.Close()
		return err
	}
	if o.gz != nil {
		if err := o.gz.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

// rotate closes the current file, renames it to {path}.1 (shifting existing
// rotated files up to {path}.10), and opens a new file. The file is
// reopened even when closing or renaming fails, so later writes still land
// at path; o.f stays nil only if that reopen fails too.
func (o *Output) rotate() error {
	closeErr := o.closeFile()
	var renameErr error
	if closeErr == nil {
		for i := maxRotated - 1; i >= 1; i-- {
			from := fmt.Sprintf("%s.%d", o.path, i)
			to := fmt.Sprintf("%s.%d", o.path, i+1)
			os.Rename(from, to) // missing files are fine
		}
		renameErr = os.Rename(o.path, o.path+".1")
	}
	return errors.Join(closeErr, renameErr, o.openFile())
}
