package fixed

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestAtInRange(t *testing.T) {
	a := New(0.2, 33.33)

	if a.Len() != 2 {
		t.Fatalf("Len = %d, want 2", a.Len())
	}
	v, err := a.At(1)
	if err != nil {
		t.Fatalf("At(1) error: %v", err)
	}
	if v != 33.33 {
		t.Fatalf("At(1) = %v, want 33.33", v)
	}
}

func TestAtOutOfRange(t *testing.T) {
	a := New(0.2, 33.33)

	for _, i := range []int{-5, -1, 2, 100} {
		v, err := a.At(i)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("At(%d): expected ErrOutOfRange, got %v", i, err)
		}
		if v != 0 {
			t.Fatalf("At(%d) returned %v, want zero value", i, v)
		}

		var re *RangeError
		if !errors.As(err, &re) {
			t.Fatalf("At(%d): expected *RangeError, got %T", i, err)
		}
		if re.Index != i || re.Len != 2 {
			t.Fatalf("At(%d): RangeError = %+v", i, re)
		}
	}
}

func TestRangeErrorText(t *testing.T) {
	_, err := New('A', 'b', 'c').At(-5)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "-5") || !strings.Contains(msg, "out of range") {
		t.Fatalf("error text not descriptive: %q", msg)
	}
}

func TestSetOutOfRangeLeavesArrayUntouched(t *testing.T) {
	a := New(0.2, 33.33)

	if err := a.Set(-5, 0.1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Set(-5): expected ErrOutOfRange, got %v", err)
	}
	if got := a.Values(); !reflect.DeepEqual(got, []float64{0.2, 33.33}) {
		t.Fatalf("values changed: %v", got)
	}

	if err := a.Set(0, 0.1); err != nil {
		t.Fatalf("Set(0) error: %v", err)
	}
	if v, _ := a.At(0); v != 0.1 {
		t.Fatalf("At(0) = %v after Set, want 0.1", v)
	}
}

func TestNewCopiesValues(t *testing.T) {
	src := []string{"A", "b", "c"}
	a := New(src...)
	src[0] = "Z"

	if v, _ := a.At(0); v != "A" {
		t.Fatalf("array aliases caller slice: At(0) = %q", v)
	}

	out := a.Values()
	out[1] = "Z"
	if v, _ := a.At(1); v != "b" {
		t.Fatalf("Values aliases storage: At(1) = %q", v)
	}
}

func TestMake(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{3, 3},
		{0, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := Make[int](tt.n).Len(); got != tt.want {
			t.Errorf("Make(%d).Len() = %d, want %d", tt.n, got, tt.want)
		}
	}

	_, err := Make[int](0).At(0)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("At(0) on empty array: expected ErrOutOfRange, got %v", err)
	}
}
