package stream

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/crimson-sun/debuglog/internal/output"
)

func init() {
	output.Register("stderr", func(output.Settings) (output.Output, error) { return Stderr(), nil })
	output.Register("stdout", func(output.Settings) (output.Output, error) { return Stdout(), nil })
}

// Output writes each line to an io.Writer in a single Write call.
// Writes are serialized so lines from concurrent callers never interleave.
type Output struct {
	mu   sync.Mutex
	w    io.Writer
	name string
}

// New creates an Output over w. name is used in error messages.
func New(w io.Writer, name string) *Output {
	return &Output{w: w, name: name}
}

// Stderr returns an Output bound to the process's standard error.
// os.Stderr is looked up on every write, so reassigning it redirects
// subsequent lines.
func Stderr() *Output {
	return New(fileFunc(func() *os.File { return os.Stderr }), "stderr")
}

// Stdout returns an Output bound to the process's standard output,
// looked up on every write like Stderr.
func Stdout() *Output {
	return New(fileFunc(func() *os.File { return os.Stdout }), "stdout")
}

type fileFunc func() *os.File

func (f fileFunc) Write(p []byte) (int, error) {
	return f().Write(p)
}

func (o *Output) Write(_ context.Context, line string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := io.WriteString(o.w, line); err != nil {
		return fmt.Errorf("%s output: %w", o.name, err)
	}
	return nil
}

// Close is a no-op; the underlying writer is owned by the caller.
func (o *Output) Close() error {
	return nil
}
