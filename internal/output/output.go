package output

import "context"

// Output defines the interface for rendered debug line destinations.
// A line handed to Write already carries its trailing newline and must be
// visible at the destination before Write returns.
type Output interface {
	Write(ctx context.Context, line string) error
	Close() error
}
