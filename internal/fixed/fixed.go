// Package fixed provides a fixed-length array container whose element
// accessors check bounds and report violations as errors instead of
// panicking.
package fixed

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every RangeError.
var ErrOutOfRange = errors.New("index out of range")

// RangeError describes an access outside [0, Len).
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("array::at: index %d out of range [0, %d)", e.Index, e.Len)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Array is a container whose length is fixed when it is created.
type Array[T any] struct {
	items []T
}

// New returns an Array holding a copy of values.
func New[T any](values ...T) *Array[T] {
	items := make([]T, len(values))
	copy(items, values)
	return &Array[T]{items: items}
}

// Make returns an Array of n zero values. A negative n is treated as 0.
func Make[T any](n int) *Array[T] {
	if n < 0 {
		n = 0
	}
	return &Array[T]{items: make([]T, n)}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// At returns the element at index i.
// Returns a *RangeError if i is outside [0, Len).
func (a *Array[T]) At(i int) (T, error) {
	if err := a.check(i); err != nil {
		var zero T
		return zero, err
	}
	return a.items[i], nil
}

// Set stores v at index i.
// Returns a *RangeError and leaves the array untouched if i is outside [0, Len).
func (a *Array[T]) Set(i int, v T) error {
	if err := a.check(i); err != nil {
		return err
	}
	a.items[i] = v
	return nil
}

// Values returns a copy of the elements.
func (a *Array[T]) Values() []T {
	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

func (a *Array[T]) check(i int) error {
	if i < 0 || i >= len(a.items) {
		return &RangeError{Index: i, Len: len(a.items)}
	}
	return nil
}
